package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tank-pusher/audio"
	"github.com/lixenwraith/tank-pusher/camera"
	"github.com/lixenwraith/tank-pusher/config"
	"github.com/lixenwraith/tank-pusher/engine"
	"github.com/lixenwraith/tank-pusher/input"
	"github.com/lixenwraith/tank-pusher/network"
	"github.com/lixenwraith/tank-pusher/parameter"
	"github.com/lixenwraith/tank-pusher/render"
	"github.com/lixenwraith/tank-pusher/replay"
	"github.com/lixenwraith/tank-pusher/status"
)

var (
	sceneFlag  = flag.String("scene", "", "scene YAML file (default: built-in yard)")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/tank-pusher.log")
	recordFlag = flag.String("record", "", "record frames to a .jsonl.zst file")
	listenFlag = flag.String("listen", "", "serve spectators on this address, e.g. 127.0.0.1:7777")
	remoteFlag = flag.Bool("remote-input", false, "accept key input from spectators (requires -listen)")
	muteFlag   = flag.Bool("mute", false, "start with sound cues muted")
	viewFlag   = flag.String("view", "third", "initial camera: third or first")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	err := run()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tank-pusher: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	mode, ok := camera.ParseMode(*viewFlag)
	if !ok {
		return fmt.Errorf("unknown view %q", *viewFlag)
	}
	if *remoteFlag && *listenFlag == "" {
		return errors.New("-remote-input requires -listen")
	}

	sc, err := config.Load(*sceneFlag)
	if err != nil {
		return err
	}
	log.Printf("scene %q: %d walls, %d boxes", sc.Name, len(sc.Walls), len(sc.Boxes))

	reg := status.NewRegistry()
	session, err := engine.NewSession(sc, reg)
	if err != nil {
		return err
	}
	session.SetView(mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	held := input.NewHeldKeys()

	var rec *replay.Recorder
	if *recordFlag != "" {
		rec, err = replay.Create(*recordFlag, sc)
		if err != nil {
			return fmt.Errorf("record: %w", err)
		}
		session.AddObserver(rec)
		log.Printf("recording session %s to %s", rec.SessionID(), *recordFlag)
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio initialization failed: %v", err)
	}
	defer sm.Cleanup()
	cues := audio.NewCueObserver(sm)
	cues.SetMuted(*muteFlag)
	session.AddObserver(cues)

	hubDone := make(chan struct{})
	if *listenFlag != "" {
		cfg := network.DefaultConfig()
		cfg.Address = *listenFlag
		cfg.RemoteInput = *remoteFlag
		hub := network.NewHub(cfg, sc, reg, held, log.Default())
		session.AddObserver(hub)
		go func() {
			defer close(hubDone)
			if err := hub.ListenAndServe(ctx); err != nil {
				log.Printf("spectator server: %v", err)
			}
		}()
	} else {
		close(hubDone)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTANK-PUSHER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	renderer := render.NewRenderer(screen, session)
	session.AddObserver(renderer)

	recorded := reg.Ints.Get(status.MetricRecorded)
	var last engine.Frame
	session.AddObserver(engine.FrameObserverFunc(func(f engine.Frame) {
		last = f
		if rec != nil {
			recorded.Store(rec.Frames())
		}
	}))

	loop := engine.NewLoop(session, held, input.DefaultBindings(), engine.NewMonotonicTimeProvider(),
		parameter.FrameUpdateInterval, parameter.MaxFrameDelta)
	loop.OnPausedTick = func() { renderer.Draw(last, true) }

	go pollEvents(screen, loop, held, cues)

	err = loop.Run(ctx)
	stop()
	screen.Fini()

	select {
	case <-hubDone:
	case <-time.After(2 * time.Second):
		log.Printf("spectator server did not stop in time")
	}

	if rec != nil {
		if cerr := rec.Close(); cerr != nil {
			log.Printf("close recording: %v", cerr)
			if err == nil {
				err = fmt.Errorf("record: %w", cerr)
			}
		} else {
			fmt.Printf("recorded %d frames to %s (session %s)\n", rec.Frames(), *recordFlag, rec.SessionID())
		}
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents feeds terminal keys to the held set and commands to the loop
// Returns when the screen is finalized
func pollEvents(screen tcell.Screen, loop *engine.Loop, held *input.HeldKeys, cues *audio.CueObserver) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			k := translateKey(ev)
			switch {
			case k.Command != engine.CommandNone:
				loop.Send(k.Command)
			case k.Mute:
				log.Printf("sound cues muted: %v", cues.ToggleMute())
			default:
				pressKey(held, k, time.Now())
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

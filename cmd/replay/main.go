package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/tank-pusher/replay"
)

func main() {
	var (
		inPath = flag.String("in", "", "path to a .jsonl.zst recording")
		quiet  = flag.Bool("q", false, "print only the verdict")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "missing -in")
		os.Exit(2)
	}

	res, err := replay.Run(*inPath)
	if err != nil {
		if errors.Is(err, replay.ErrDivergence) {
			fmt.Fprintf(os.Stderr, "session %s diverged after %d frames: %v\n", res.SessionID, res.Frames, err)
			os.Exit(3)
		}
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}

	if *quiet {
		fmt.Println("ok")
		return
	}

	fmt.Printf("session=%s frames=%d elapsed=%s pushes=%d blocked=%d\n",
		res.SessionID, res.Frames, res.Elapsed, res.Pushes, res.Blocked)
	fmt.Printf("character position=(%.3f, %.3f, %.3f) yaw=%.4f\n",
		res.Position.X(), res.Position.Y(), res.Position.Z(), res.Yaw)
	for _, b := range res.Boxes {
		fmt.Printf("box %d %s position=(%.3f, %.3f, %.3f)\n",
			b.ID, b.Name, b.Position.X(), b.Position.Y(), b.Position.Z())
	}
	fmt.Println("ok")
}

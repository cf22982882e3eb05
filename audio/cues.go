package audio

import (
	"sync/atomic"

	"github.com/lixenwraith/tank-pusher/engine"
)

// CueObserver turns frames into sound cues
// Bump fires on the first blocked frame of a blocked run; scrape plays while pushes continue
type CueObserver struct {
	player Player
	muted  atomic.Bool

	// Frame loop only
	wasBlocked bool
	scraping   bool
}

// NewCueObserver creates an observer driving player
func NewCueObserver(player Player) *CueObserver {
	return &CueObserver{player: player}
}

// SetMuted silences cues from any goroutine; an active scrape stops on the next frame
func (c *CueObserver) SetMuted(muted bool) {
	c.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (c *CueObserver) ToggleMute() bool {
	for {
		old := c.muted.Load()
		if c.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cues are silenced
func (c *CueObserver) Muted() bool {
	return c.muted.Load()
}

func (c *CueObserver) OnFrame(f engine.Frame) {
	if c.muted.Load() {
		if c.scraping {
			c.player.StopScrape()
			c.scraping = false
		}
		c.wasBlocked = false
		return
	}

	blocked := f.Blocked()
	if blocked && !c.wasBlocked {
		c.player.PlayBump()
	}
	c.wasBlocked = blocked

	pushing := f.Pushed()
	switch {
	case pushing && !c.scraping:
		c.player.StartScrape()
	case !pushing && c.scraping:
		c.player.StopScrape()
	}
	c.scraping = pushing
}

package parameter

// Animation blending
const (
	// CrossFadeSeconds is the idle/run blend duration
	CrossFadeSeconds = 0.2

	// IdleClipSeconds and RunClipSeconds are the reference clip lengths, used for warping
	IdleClipSeconds = 2.4
	RunClipSeconds  = 0.8
)

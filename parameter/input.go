package parameter

import "time"

// Input handling
const (
	// KeyHoldWindow keeps a terminal key held after each auto-repeat press; terminals
	// report no key release, only auto-repeat
	KeyHoldWindow = 150 * time.Millisecond

	// KeyInitialHoldWindow holds a freshly pressed terminal key across the OS
	// auto-repeat delay, which runs 250-660ms on common desktops
	KeyInitialHoldWindow = 700 * time.Millisecond

	// RemoteKeyHoldWindow bounds how long a remote key-down stays held without a key-up
	RemoteKeyHoldWindow = 2 * time.Second
)

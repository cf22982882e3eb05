package parameter

// Camera follow offsets in world units
const (
	// ThirdPersonTargetHeight lifts the orbit target from the feet to the torso
	ThirdPersonTargetHeight = 1.0

	// ThirdPersonOrbitHeight and ThirdPersonOrbitDistance place the orbit camera on +Z of the target
	ThirdPersonOrbitHeight   = 3.0
	ThirdPersonOrbitDistance = 9.0

	// FirstPersonEyeHeight and FirstPersonEyeAhead are the eye offset in character space
	FirstPersonEyeHeight = 1.3
	FirstPersonEyeAhead  = 0.6
)

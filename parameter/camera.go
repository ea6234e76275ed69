package parameter

// Default view: standing just above the north pole, looking toward the horizon
var (
	CameraEye    = [3]float32{0, 0.55, 0}
	CameraCenter = [3]float32{0, 0.6, 0.3}
	CameraUp     = [3]float32{0, 1, 0}
)

const (
	// CameraRotateStep is radians per rotate action
	CameraRotateStep = 0.1

	// CameraFOV is vertical field of view in degrees
	CameraFOV = 45.0

	// CameraNear and CameraFar clip the projection
	CameraNear = 0.1
	CameraFar  = 50.0

	// AimRange is the distance ahead of the eye used as the firing target
	AimRange = 10.0

	// HighlightScale enlarges the selected station marker
	HighlightScale = 1.2

	// BlendModeCount is the number of cycleable blend modes
	BlendModeCount = 4
)

package render

// Canvas sizes
const (
	WelcomeWidth  = 1000
	WelcomeHeight = 400

	PoseWidth  = 300
	PoseHeight = 460

	// PoseScale is the pixel multiplier applied to skin texels
	PoseScale = 10
)

// Skin service paths
const (
	PathBody = "/body/"
	PathSkin = "/skin/"
)

// Metric labels
const (
	ServiceSkin = "skin"

	KindWelcome = "welcome"
	KindPose    = "pose"
)

// Fallback background colour when no background image loads
const fallbackBackground = 0x1E1F22

// Text colours
const (
	colorText  = 0xFFFFFF
	colorMuted = 0xAAAAAA
	colorDark  = 0x111111
)

// Font sizes in points
const (
	sizeTitle = 56
	sizeBadge = 30
	sizeBody  = 32
	sizeSmall = 24
)

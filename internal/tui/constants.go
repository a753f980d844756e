package tui

// Layout and palette constants for the preview.
const (
	defaultWidth   = 80
	contentMaxWide = 100
	imageListLines = 6
	progressWidth  = 40
	timerBoxWidth  = 6
	marqueeGap     = "  ·  "

	// Color constants.
	grayColor      = "241" // gray
	gray240Color   = "240" // gray variant
	redColor       = "196" // red
	greenColor     = "46"  // green
	blueColor      = "69"  // blue
	orange208Color = "208" // orange variant
)

package render

// Viewport translates between frame coordinates and screen coordinates.
// The frame is centred on the screen; a screen smaller than the frame crops
// it from the top-left.
type Viewport struct {
	OffsetX      int
	OffsetY      int
	ScreenWidth  int // in terminal columns
	ScreenHeight int // in terminal rows
}

// Fit recentres a frameW × frameH frame on a screenW × screenH screen.
func (v *Viewport) Fit(frameW, frameH, screenW, screenH int) {
	v.ScreenWidth = screenW
	v.ScreenHeight = screenH
	v.OffsetX = max((screenW-frameW)/2, 0)
	v.OffsetY = max((screenH-frameH)/2, 0)
}

// FrameToScreen converts frame (fx, fy) to screen (sx, sy).
// visible is false when the result falls outside the screen.
func (v *Viewport) FrameToScreen(fx, fy int) (sx, sy int, visible bool) {
	sx = fx + v.OffsetX
	sy = fy + v.OffsetY
	visible = sx >= 0 && sx < v.ScreenWidth && sy >= 0 && sy < v.ScreenHeight
	return
}

// ScreenToFrame converts screen (sx, sy) to frame coordinates.
func (v *Viewport) ScreenToFrame(sx, sy int) (int, int) {
	return sx - v.OffsetX, sy - v.OffsetY
}

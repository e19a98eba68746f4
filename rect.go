package sdl

import "image"

// Point is an integer point. Layout matches SDL_Point.
type Point struct {
	X, Y int32
}

// FPoint is a floating point point. Layout matches SDL_FPoint.
type FPoint struct {
	X, Y float32
}

// Rect is an integer rectangle with the origin at the top left.
// Layout matches SDL_Rect.
type Rect struct {
	X, Y, W, H int32
}

// FRect is a floating point rectangle with the origin at the top left.
// Layout matches SDL_FRect.
type FRect struct {
	X, Y, W, H float32
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

// FRect converts r to floating point.
func (r Rect) FRect() FRect {
	return FRect{X: float32(r.X), Y: float32(r.Y), W: float32(r.W), H: float32(r.H)}
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

// Empty reports whether the rectangle has no area.
func (r FRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

package render

import (
	"image"
	"image/color"
)

// Blend selects how source pixels combine with the destination.
type Blend int

const (
	BlendAlpha Blend = iota
	BlendAdditive
)

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. This allows swapping rendering backends without changing
// effect logic.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image
	NewImageFromImage(src image.Image) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, w, h float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x1, y1, x2, y2 float32, strokeWidth float32, clr color.Color)

	// Text operations
	LoadFont(ttf []byte, size float64) (Font, error)
	DrawText(dst Image, str string, fnt Font, x, y float64, clr color.Color)
	MeasureText(str string, fnt Font) (width, height float64)

	// DebugText draws text with the built-in fixed-size font. Used when no
	// TTF face could be loaded.
	DebugText(dst Image, str string, x, y int)
}

// Font is an opaque handle to a rasterisable typeface at a fixed size.
type Font interface {
	Size() float64
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Sub-image extraction
	SubImage(r image.Rectangle) Image

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Drawing operations
	DrawImage(src Image, opts *DrawImageOptions)
	DrawTriangles(vertices []Vertex, indices []uint16, img Image, opts *DrawTrianglesOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM  GeoM
	Blend Blend
	// Alpha scales the whole image's opacity, 0..1. Values outside the
	// range are treated as fully transparent / opaque.
	Alpha float32
	// FlipX mirrors the source horizontally about its own centre before
	// the GeoM transform is applied.
	FlipX bool
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Rotate rotates the image by the given angle in radians.
	Rotate(angle float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
	Blend     Blend
}

// Vertex represents a vertex for triangle rendering.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager reports user input. Effects only care about "anything was
// pressed" plus the cursor position for motion detection.
type InputManager interface {
	AnyKeyJustPressed() bool
	AnyMouseButtonJustPressed() bool
	CursorPosition() (x, y int)
}

// Game represents the per-frame callbacks the engine drives.
type Game interface {
	// Update updates the logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the engine that manages the frame loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetFullscreen switches between fullscreen and windowed mode.
	SetFullscreen(fullscreen bool)

	// SetCursorVisible shows or hides the pointer cursor over the window.
	SetCursorVisible(visible bool)

	// DisplaySize returns the size of the primary display in pixels.
	DisplaySize() (width, height int)

	// RunGame runs the frame loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}

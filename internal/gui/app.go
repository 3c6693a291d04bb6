// Package gui renders the simulation with raylib: one additive-blended
// triangle per body, straight from the kernel's vertex stream.
package gui

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/galaxia/internal/body"
	"github.com/san-kum/galaxia/internal/engine"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	// worldScale maps world units to pixels; the populated disk spans
	// roughly [-1.5, 1.5].
	worldScale = 300
)

var bgColor = rl.NewColor(5, 5, 10, 255)

// Run owns the raylib frame loop until the window closes. A left click or
// the space key triggers a reset; a failed reset leaves the old
// population on screen.
func Run(eng *engine.Engine) {
	rl.InitWindow(screenWidth, screenHeight, "galaxia")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyQ)

	var resetErr error
	for !rl.WindowShouldClose() {
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) || rl.IsKeyPressed(rl.KeySpace) {
			resetErr = eng.Reset()
		}

		verts := eng.Advance(time.Now())

		rl.BeginDrawing()
		rl.ClearBackground(bgColor)

		rl.BeginBlendMode(rl.BlendAdditive)
		for i := 0; i < len(verts); i += 3 {
			rl.DrawTriangle(
				toScreen(verts[i]),
				toScreen(verts[i+1]),
				toScreen(verts[i+2]),
				toColor(verts[i]),
			)
		}
		rl.EndBlendMode()

		rl.DrawText(eng.Morphology().String(), 12, 12, 20, rl.Gray)
		if resetErr != nil {
			rl.DrawText(resetErr.Error(), 12, 36, 16, rl.Red)
		}
		rl.DrawFPS(screenWidth-90, 12)
		rl.EndDrawing()
	}
}

func toScreen(v body.Vertex) rl.Vector2 {
	return rl.NewVector2(
		screenWidth/2+v.X*worldScale,
		screenHeight/2-v.Y*worldScale,
	)
}

func toColor(v body.Vertex) rl.Color {
	return rl.NewColor(channel(v.R), channel(v.G), channel(v.B), 255)
}

func channel(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c * 255)
}

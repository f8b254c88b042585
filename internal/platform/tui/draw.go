package tui

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/games/dino"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoEye    = 'x'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	GroundChar = '═'
)

// Viewport maps world units onto the cell grid. The ground line (the
// bottom of a standing body) lands on the second to last row.
type Viewport struct {
	SX, SY    float64
	GroundRow int
}

// NewViewport fits the world to a screen of w×h cells.
func NewViewport(w, h int, cfg config.DinoConfig) Viewport {
	groundLine := cfg.World.GroundY + cfg.Player.Height
	rows := core.Max(h-2, 1)

	vp := Viewport{
		SX: float64(w) / cfg.World.Width,
		SY: float64(rows) / groundLine,
	}
	vp.GroundRow = rows
	return vp
}

// DrawIntents draws the frame described by intents into dst.
// Sound and ambience intents are ignored here.
func DrawIntents(dst *core.Screen, intents dino.Intents, vp Viewport) {
	dst.DrawHLine(0, vp.GroundRow, dst.Width(), GroundChar, core.ColorGray)

	var title, hint string
	for _, in := range intents {
		switch v := in.(type) {
		case dino.DrawSprite:
			r := v.Box.Scale(vp.SX, vp.SY)
			switch v.Kind {
			case dino.SpriteBody:
				drawBody(dst, r, v.Pose)
			case dino.SpriteObstacle:
				dst.FillRect(r, CactusChar, core.ColorGreen)
			}
		case dino.DrawText:
			switch v.Kind {
			case dino.TextScore:
				dst.DrawTextColored(2, 0, " "+v.Text+" ", core.ColorBrightWhite)
			case dino.TextTitle:
				title = v.Text
			case dino.TextHint:
				hint = v.Text
			}
		}
	}

	// Overlay goes last so sprites never cover it
	if title != "" {
		drawCenteredMessage(dst, title, hint, core.ColorBrightRed)
	}
}

// drawBody renders the player. The bottom row holds the legs.
//
//	 ◆█
//	███
//	╱ ╲
func drawBody(dst *core.Screen, r core.Rect, pose dino.Pose) {
	color := core.ColorBrightWhite
	if pose == dino.PoseCrashed {
		color = core.ColorBrightRed
	}

	dst.FillRect(core.NewRect(r.X, r.Y, r.W, core.Max(r.H-1, 1)), DinoBody, color)
	head := DinoHead
	if pose == dino.PoseCrashed {
		head = DinoEye
	}
	dst.SetColored(r.Right()-1, r.Y, head, color)

	if r.H < 2 {
		return
	}
	legY := r.Bottom() - 1
	dst.DrawHLine(r.X, legY, r.W, ' ', color)

	switch pose {
	case dino.PoseRunA:
		dst.SetColored(r.X, legY, DinoLeg1, color)
		dst.SetColored(r.Right()-1, legY, DinoLeg2, color)
	case dino.PoseRunB:
		dst.SetColored(r.X+r.W/2, legY, DinoLeg1, color)
		dst.SetColored(r.Right()-1, legY, DinoLeg2, color)
	case dino.PoseAirborne:
		dst.SetColored(r.X, legY, DinoLeg1, color)
		dst.SetColored(r.X+1, legY, DinoLeg2, color)
	case dino.PoseCrashed:
		dst.SetColored(r.X, legY, DinoLeg2, color)
		dst.SetColored(r.Right()-1, legY, DinoLeg1, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, titleColor core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	titleX := box.X + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, box.Y+1, title, titleColor)

	subtitleX := box.X + (boxW-len([]rune(subtitle)))/2
	dst.DrawTextColored(subtitleX, box.Y+3, subtitle, core.ColorDefault)
}

package hud

import (
	"image"

	"eggs/internal/domain"
)

const (
	buttonHeight = 72
	buttonGap    = 8
)

// Button is one upgrade button in screen space.
type Button struct {
	Kind domain.UpgradeKind
	Rect image.Rectangle
}

// Panel is the upgrade column docked to the right 30% of the screen.
type Panel struct {
	Rect    image.Rectangle
	Buttons []Button
}

// LayoutPanel places one button per upgrade kind, top to bottom.
func LayoutPanel(screenW, screenH int) Panel {
	left := screenW * 70 / 100
	pad := screenW / 100
	p := Panel{Rect: image.Rect(left, 0, screenW, screenH)}

	y := pad
	for _, kind := range domain.UpgradeKinds {
		r := image.Rect(left+pad, y, screenW-pad, y+buttonHeight)
		p.Buttons = append(p.Buttons, Button{Kind: kind, Rect: r})
		y += buttonHeight + buttonGap
	}
	return p
}

// ButtonAt returns the button under screen point (x, y).
func (p Panel) ButtonAt(x, y int) (Button, bool) {
	pt := image.Pt(x, y)
	for _, b := range p.Buttons {
		if pt.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

// Covers reports whether (x, y) falls on the panel, where clicks must not
// reach the target.
func (p Panel) Covers(x, y int) bool {
	return image.Pt(x, y).In(p.Rect)
}

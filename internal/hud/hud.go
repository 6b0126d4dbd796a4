// Package hud holds presentation-side state that has no place in the game
// core: hit testing against the click target and the floating payout labels.
package hud

import (
	"image/color"
	"time"

	"eggs/internal/clock"
	"eggs/internal/config"
	"eggs/internal/domain"
	"eggs/internal/events"
)

var (
	ClickColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ClickColorCrit = color.RGBA{R: 77, G: 204, B: 204, A: 255}
	ClearColor     = color.RGBA{R: 153, G: 153, B: 204, A: 255}
)

const (
	// LabelFontSize is the base size of a payout label.
	LabelFontSize = 20.0
	// labelDrop offsets a new label below the cursor.
	labelDrop = 15.0
)

// Box is an axis-aligned rectangle centered on (X, Y) in world units.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether (x, y) lies strictly inside the box.
func (b Box) Contains(x, y float64) bool {
	dx, dy := x-b.X, y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx < b.Width/2 && dy < b.Height/2
}

// TargetBox returns the click target box from cfg, centered on the origin.
func TargetBox(cfg config.Config) Box {
	return Box{Width: cfg.TargetWidth, Height: cfg.TargetHeight}
}

// Click builds the click event for a press at world (x, y).
func (b Box) Click(x, y float64) domain.ClickEvent {
	return domain.ClickEvent{WorldX: x, WorldY: y, Hit: b.Contains(x, y)}
}

// ScreenToWorld converts a screen pixel to world coordinates for a camera
// centered on the origin with y pointing up.
func ScreenToWorld(sx, sy, screenW, screenH int) (float64, float64) {
	return float64(sx) - float64(screenW)/2, float64(screenH)/2 - float64(sy)
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(wx, wy float64, screenW, screenH int) (float64, float64) {
	return wx + float64(screenW)/2, float64(screenH)/2 - wy
}

// Label is a floating "+N" payout.
type Label struct {
	Text      string
	X, Y      float64
	Color     color.RGBA
	Size      float64
	SpawnedAt time.Time
}

// Labels tracks live payout labels.
type Labels struct {
	clk      clock.Clock
	lifetime time.Duration
	speed    float64
	critSize float64
	items    []Label
}

func NewLabels(cfg config.Config, clk clock.Clock) *Labels {
	return &Labels{
		clk:      clk,
		lifetime: cfg.ClickLabelDuration,
		speed:    cfg.ClickLabelSpeed,
		critSize: cfg.CritSizeMultiplier,
	}
}

// Spawn adds a label for a resolved click.
func (l *Labels) Spawn(data events.ClickResolvedData) Label {
	lbl := Label{
		Text:      data.PayoutText(),
		X:         data.WorldX,
		Y:         data.WorldY - labelDrop,
		Color:     ClickColor,
		Size:      LabelFontSize,
		SpawnedAt: l.clk.Now(),
	}
	if data.Crit {
		lbl.Color = ClickColorCrit
		lbl.Size *= l.critSize
	}
	l.items = append(l.items, lbl)
	return lbl
}

// Update advances one frame: expired labels are dropped, the rest rise.
func (l *Labels) Update() {
	now := l.clk.Now()
	kept := l.items[:0]
	for _, lbl := range l.items {
		if now.Sub(lbl.SpawnedAt) > l.lifetime {
			continue
		}
		lbl.Y += l.speed
		kept = append(kept, lbl)
	}
	clear(l.items[len(kept):])
	l.items = kept
}

// Items returns the live labels.
func (l *Labels) Items() []Label {
	return l.items
}

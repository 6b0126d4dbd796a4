package main

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"eggs/internal/clock"
	"eggs/internal/commands"
	"eggs/internal/config"
	"eggs/internal/domain"
	"eggs/internal/events"
	"eggs/internal/hud"
	"eggs/internal/service"
	"eggs/internal/upgrades"
)

var (
	eggColor    = color.RGBA{R: 245, G: 236, B: 214, A: 255}
	panelColor  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	buttonColor = color.RGBA{R: 38, G: 38, B: 38, A: 255}
)

// scoreY is the world height of the balance readout.
const scoreY = 250

type game struct {
	cfg    config.Config
	svc    *service.GameService
	target hud.Box
	labels *hud.Labels
	snap   domain.State
	w, h   int
}

func newGame(cfg config.Config, clk clock.Clock, svc *service.GameService) *game {
	return &game{
		cfg:    cfg,
		svc:    svc,
		target: hud.TargetBox(cfg),
		labels: hud.NewLabels(cfg, clk),
		snap:   svc.GetState(),
		w:      cfg.WindowWidth,
		h:      cfg.WindowHeight,
	}
}

func (g *game) Update() error {
	g.execute(&commands.Settle{ID: uuid.NewString()})
	g.labels.Update()
	g.handleInput()
	g.execute(commands.SyncState{ID: uuid.NewString()})
	return nil
}

func (g *game) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	sx, sy := ebiten.CursorPosition()

	panel := hud.LayoutPanel(g.w, g.h)
	if panel.Covers(sx, sy) {
		if b, ok := panel.ButtonAt(sx, sy); ok {
			g.execute(&commands.Purchase{ID: uuid.NewString(), Kind: b.Kind})
		}
		return
	}

	wx, wy := hud.ScreenToWorld(sx, sy, g.w, g.h)
	g.execute(commands.Click{ID: uuid.NewString(), Event: g.target.Click(wx, wy)})
}

func (g *game) execute(cmd commands.Command) {
	evs, err := g.svc.Execute(cmd)
	if err != nil {
		if !errors.Is(err, service.ErrInsufficientFunds) {
			slog.Error("command failed", "command", cmd.Name(), "id", cmd.CommandID(), "err", err)
		}
		return
	}
	for _, ev := range evs {
		switch data := ev.Data.(type) {
		case events.ClickResolvedData:
			g.labels.Spawn(data)
		case events.StateSyncedData:
			g.snap = data.State
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(hud.ClearColor)

	ex, ey := hud.WorldToScreen(g.target.X-g.target.Width/2, g.target.Y+g.target.Height/2, g.w, g.h)
	vector.DrawFilledRect(screen, float32(ex), float32(ey), float32(g.target.Width), float32(g.target.Height), eggColor, false)

	balance := g.snap.Balance.String()
	if g.cfg.GroupDigits {
		balance = g.svc.GroupedBalance()
	}
	bx, by := hud.WorldToScreen(0, scoreY, g.w, g.h)
	text.Draw(screen, balance, basicfont.Face7x13, int(bx)-len(balance)*7/2, int(by), color.White)

	for _, lbl := range g.labels.Items() {
		lx, ly := hud.WorldToScreen(lbl.X, lbl.Y, g.w, g.h)
		scale := lbl.Size / hud.LabelFontSize
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(lx-float64(len(lbl.Text))*7*scale/2, ly)
		op.ColorScale.ScaleWithColor(lbl.Color)
		text.DrawWithOptions(screen, lbl.Text, basicfont.Face7x13, op)
	}

	g.drawPanel(screen)
}

func (g *game) drawPanel(screen *ebiten.Image) {
	panel := hud.LayoutPanel(g.w, g.h)
	r := panel.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelColor, false)

	for _, b := range panel.Buttons {
		br := b.Rect
		vector.DrawFilledRect(screen, float32(br.Min.X), float32(br.Min.Y), float32(br.Dx()), float32(br.Dy()), buttonColor, false)

		caption := upgrades.Describe(b.Kind, ownedCount(g.snap, b.Kind))
		if cost, err := g.svc.NextCost(b.Kind); err == nil {
			caption += "\nCost: " + cost.String()
		}
		text.Draw(screen, caption, basicfont.Face7x13, br.Min.X+8, br.Min.Y+16, color.White)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func ownedCount(st domain.State, kind domain.UpgradeKind) uint32 {
	for _, o := range st.Owned {
		if o.Kind == kind {
			return o.Count
		}
	}
	return 0
}

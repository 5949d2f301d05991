package ui

import (
	"github.com/FabianRolfMatthiasNoll/GameBoyEmulator/internal/emu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// App is the ebiten host shell: it owns the window, reads keyboard input
// into emu.Buttons, steps the Machine one frame per Update, and blits the
// resulting framebuffer to the screen in Draw.
type App struct {
	cfg Config
	m   *emu.Machine
	tex *ebiten.Image

	paused bool
}

func NewApp(cfg Config, m *emu.Machine) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(160*cfg.Scale, 144*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return &App{cfg: cfg, m: m}
}

func (a *App) Run() error { return ebiten.RunGame(a) }

// Update reads keyboard state into joypad buttons and advances the machine
// by one frame. Pause (P) and fullscreen (F11) are the only host-level
// controls kept from the full shell; save states, turbo, and the ROM/menu
// overlay are out of scope here.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	var btn emu.Buttons
	if !a.paused {
		btn.Right = ebiten.IsKeyPressed(ebiten.KeyRight)
		btn.Left = ebiten.IsKeyPressed(ebiten.KeyLeft)
		btn.Up = ebiten.IsKeyPressed(ebiten.KeyUp)
		btn.Down = ebiten.IsKeyPressed(ebiten.KeyDown)
		btn.A = ebiten.IsKeyPressed(ebiten.KeyZ)
		btn.B = ebiten.IsKeyPressed(ebiten.KeyX)
		btn.Start = ebiten.IsKeyPressed(ebiten.KeyEnter)
		btn.Select = ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	}
	a.m.SetButtons(btn)

	if a.paused {
		return nil
	}
	a.m.StepFrame()
	if err := a.m.CPUFault(); err != nil {
		a.paused = true
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.tex == nil {
		a.tex = ebiten.NewImage(160, 144)
	}
	a.tex.WritePixels(a.m.Framebuffer())
	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	sx := float64(sw) / 160
	sy := float64(sh) / 144
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(a.tex, op)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

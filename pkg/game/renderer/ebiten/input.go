package ebiten

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "darkmaze/pkg/engine/input"
)

// keyCodes maps binding codes to Ebiten keys
var keyCodes = map[string]ebiten.Key{
	"w":           ebiten.KeyW,
	"a":           ebiten.KeyA,
	"s":           ebiten.KeyS,
	"d":           ebiten.KeyD,
	"f":           ebiten.KeyF,
	"m":           ebiten.KeyM,
	"q":           ebiten.KeyQ,
	"r":           ebiten.KeyR,
	"shift":       ebiten.KeyShift,
	"escape":      ebiten.KeyEscape,
	"arrow_up":    ebiten.KeyArrowUp,
	"arrow_down":  ebiten.KeyArrowDown,
	"arrow_left":  ebiten.KeyArrowLeft,
	"arrow_right": ebiten.KeyArrowRight,
}

// Update samples the keyboard and advances the session by one frame (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.ctx.Err() != nil || e.justPressed(engineinput.ActionQuit) {
		return ebiten.Termination
	}
	if e.justPressed(engineinput.ActionMute) {
		e.session.ToggleMute()
	}
	if e.session.State().Terminal() && e.justPressed(engineinput.ActionRestart) {
		e.session.Restart()
	}

	e.session.Update(e.checkInput())
	e.RenderFrame(e.session.Snapshot())
	return nil
}

// checkInput builds the frame's input snapshot from the held keys
func (e *EbitenRenderer) checkInput() engineinput.Snapshot {
	var codes []string
	for code, key := range keyCodes {
		if ebiten.IsKeyPressed(key) {
			codes = append(codes, code)
		}
	}
	return engineinput.FromHeld(engineinput.HeldFromCodes(codes))
}

// justPressed reports whether any key bound to action went down this tick
func (e *EbitenRenderer) justPressed(action engineinput.Action) bool {
	for _, code := range engineinput.BoundCodes(action) {
		if key, ok := keyCodes[code]; ok && inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}

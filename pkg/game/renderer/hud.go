// Package renderer defines the frontend interface and the HUD text shared by all frontends.
package renderer

import (
	"fmt"
	"strings"

	"darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/i18n"
	"darkmaze/pkg/game/state"
)

// Severity says how loudly a HUD line should be drawn
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityDanger
)

// HUDLine is one line of text with its severity
type HUDLine struct {
	Text     string
	Severity Severity
}

// StatusLine returns the player stats line
func StatusLine(snap *state.Snapshot) string {
	p := snap.Player
	return fmt.Sprintf(i18n.Get("HUD_STATS"), p.Health, p.Sanity, p.Luck, p.HeartRate, snap.Battery)
}

// SceneLine returns the level, scene name and collected item count
func SceneLine(snap *state.Snapshot) string {
	return fmt.Sprintf(i18n.Get("HUD_SCENE"), snap.Scene.Level, snap.SceneName, snap.Scene.ItemsCollected)
}

// Indicators returns the short flags shown next to the stats
func Indicators(snap *state.Snapshot) []HUDLine {
	var lines []HUDLine

	if snap.Flashlight.IsOn {
		lines = append(lines, HUDLine{Text: i18n.Get("HUD_LIGHT_ON")})
	} else {
		lines = append(lines, HUDLine{Text: i18n.Get("HUD_LIGHT_OFF"), Severity: SeverityWarning})
	}
	if snap.Debuffed {
		lines = append(lines, HUDLine{Text: i18n.Get("HUD_CURSED"), Severity: SeverityDanger})
	}

	sanity := snap.Player.Sanity
	sc := snap.SanityLevels
	switch {
	case sanity < sc.Critical:
		lines = append(lines, HUDLine{Text: i18n.Get("HUD_SANITY_CRITICAL"), Severity: SeverityDanger})
	case sanity < sc.Low:
		lines = append(lines, HUDLine{Text: i18n.Get("HUD_SANITY_LOW"), Severity: SeverityWarning})
	}
	return lines
}

// EndScreen returns the title and hint of a finished game, or ok=false while playing
func EndScreen(snap *state.Snapshot) (title, hint string, ok bool) {
	switch snap.State {
	case state.GameOver:
		return i18n.Get("GAME_OVER"), fmt.Sprintf(i18n.Get("GAME_OVER_HINT"), snap.Scene.Level), true
	case state.Victory:
		return i18n.Get("VICTORY"), fmt.Sprintf(i18n.Get("VICTORY_HINT"), snap.Scene.Level), true
	default:
		return "", "", false
	}
}

// helpActions are listed after the movement keys, in this order
var helpActions = []input.Action{
	input.ActionSprint,
	input.ActionFlashlight,
	input.ActionMute,
	input.ActionRestart,
	input.ActionQuit,
}

// Controls returns the key help line, built from the current key bindings
func Controls() string {
	parts := []string{i18n.Get("CONTROLS_MOVE")}
	for _, a := range helpActions {
		codes := input.BoundCodes(a)
		for i, c := range codes {
			codes[i] = strings.ToUpper(c[:1]) + c[1:]
		}
		parts = append(parts, strings.Join(codes, "/")+" "+input.ActionName(a))
	}
	return strings.Join(parts, "  ")
}

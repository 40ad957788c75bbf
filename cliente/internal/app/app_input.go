package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa o teclado. Cima/baixo fazem o papel do controle deslizante.
func (a *App) updateInput() {
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyRight) {
		a.setCount(a.count + 1)
		a.dirty = true
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyLeft) {
		a.setCount(a.count - 1)
		a.dirty = true
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		a.setCount(a.Config.MaxBlocks)
		a.dirty = true
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		a.setCount(0)
		a.dirty = true
	}

	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
		a.dirty = true
	}

	if rl.IsKeyPressed(rl.KeyF5) {
		a.dumpState()
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
		a.dirty = true
	}
}

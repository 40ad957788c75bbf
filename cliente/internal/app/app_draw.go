package app

import (
	"fmt"

	"IsoEngine/cliente/internal/render"
	"IsoEngine/cliente/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw apresenta um frame quando há animação pendente ou algo pediu redesenho.
// Sem nada para mostrar, só processa eventos e espera o próximo refresh.
func (a *App) draw() {
	if a.sched.Pending() == 0 && !a.dirty {
		rl.PollInputEvents()
		rl.WaitTime(1.0 / float64(a.Config.TargetFPS))
		return
	}

	rl.BeginDrawing()
	if a.sched.Dispatch() == 0 {
		a.animator.Render(a.state)
	}
	a.drawHUD()
	rl.EndDrawing()

	a.dirty = false
	a.frameCount++
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(300)
	height := int32(150)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	status := "Parado"
	statusColor := rl.Gray
	if a.state.Animating() {
		status = "Animando"
		statusColor = rl.Green
	}
	rl.DrawText(status, x+10, y+10, 20, statusColor)

	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	blocks, draws := a.renderer.Stats()
	rl.DrawText(fmt.Sprintf("Blocos: %d / %d", a.count, scene.DemoCount(a.Config.MaxBlocks, a.Config.MaxBlocks)), x+10, y+45, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Instâncias: %d | Visíveis: %d | Draws: %d", a.state.Len(), blocks, draws), x+10, y+65, 14, rl.LightGray)

	counts := a.resources.TextureCounts()
	texColor := rl.LightGray
	if counts[render.TextureFailed] > 0 {
		texColor = rl.Orange
	}
	rl.DrawText(fmt.Sprintf("Texturas: %d prontas, %d pendentes, %d falhas",
		counts[render.TextureReady], counts[render.TexturePending], counts[render.TextureFailed]),
		x+10, y+85, 14, texColor)

	rl.DrawLine(x+10, y+105, x+width-10, y+105, rl.NewColor(100, 100, 100, 100))
	rl.DrawText("Cima/Baixo: Blocos | F5: Dump | F3: HUD", x+10, y+115, 14, rl.SkyBlue)

	title := "IsoEngine"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

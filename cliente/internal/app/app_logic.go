package app

import (
	"IsoEngine/cliente/internal/scene"

	"github.com/kr/pretty"
)

// setCount muda a quantidade de blocos e reconcilia a cena.
func (a *App) setCount(n int) {
	n = scene.DemoCount(n, a.Config.MaxBlocks)
	if n == a.count {
		return
	}
	a.count = n
	a.applyLayout()
}

// applyLayout envia o conjunto desejado para o Animator.
func (a *App) applyLayout() {
	blocks := scene.DemoLayout(a.count)
	a.animator.Update(a.state, blocks)
	a.log.Debugf("[App] Blocos: %d (%d instâncias vivas)", a.count, a.state.Len())
}

// dumpState escreve o estado das animações no log.
func (a *App) dumpState() {
	a.log.Infof("[App] Estado da cena:\n%s", pretty.Sprint(a.state.Snapshot()))
}

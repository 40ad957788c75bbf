package scene

import (
	"time"

	"IsoEngine/cliente/internal/assets"
	"IsoEngine/cliente/internal/frame"
	"IsoEngine/shared/util"

	"github.com/sirupsen/logrus"
)

// Painter recebe os blocos visíveis de um frame.
type Painter interface {
	BeginFrame()
	DrawBlock(pos util.GridCoord, typ assets.TypeID, scale float32)
	EndFrame()
}

// Options controla as animações de entrada e saída.
type Options struct {
	Duration        time.Duration
	Epsilon         float32 // Abaixo disso o bloco não é desenhado (e é removido se estiver saindo)
	SettleThreshold float32 // Variação mínima por frame para continuar animando
}

// DefaultOptions retorna 250ms, 0.001 e 1e-4.
func DefaultOptions() Options {
	return Options{
		Duration:        250 * time.Millisecond,
		Epsilon:         0.001,
		SettleThreshold: 1e-4,
	}
}

// Animator reconcilia o conjunto desejado com o State e anima a transição.
type Animator struct {
	reg     *assets.Registry
	sched   frame.Scheduler
	clock   frame.Clock
	painter Painter
	opts    Options
	log     logrus.FieldLogger
}

// NewAnimator cria um Animator. Valores não positivos em opts usam os padrões.
func NewAnimator(reg *assets.Registry, sched frame.Scheduler, clock frame.Clock, painter Painter, opts Options, log logrus.FieldLogger) *Animator {
	def := DefaultOptions()
	if opts.Duration <= 0 {
		opts.Duration = def.Duration
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = def.Epsilon
	}
	if opts.SettleThreshold <= 0 {
		opts.SettleThreshold = def.SettleThreshold
	}
	return &Animator{
		reg:     reg,
		sched:   sched,
		clock:   clock,
		painter: painter,
		opts:    opts,
		log:     log,
	}
}

// Update aplica o conjunto desejado de blocos e agenda a animação.
// Blocos novos crescem a partir de 0, blocos ausentes encolhem até sumir,
// e um bloco que volta no meio da saída reverte a partir da escala atual.
func (a *Animator) Update(st *State, desired []BlockSpec) {
	now := a.clock.Now()

	want := make(map[Key]struct{}, len(desired))
	for _, b := range desired {
		k := Key{Pos: util.NewGridCoord(b.X, b.Y, b.Z), Type: a.reg.Resolve(b.Type)}
		want[k] = struct{}{}
	}

	added, revived, removed := 0, 0, 0
	for k := range want {
		inst, ok := st.instances[k]
		if !ok {
			st.instances[k] = &Instance{Key: k, Scale: 0, Target: 1, Start: now}
			added++
			continue
		}
		if inst.Target != 1 {
			inst.Target = 1
			inst.Start = now
			revived++
		}
	}

	for k, inst := range st.instances {
		if _, ok := want[k]; ok {
			continue
		}
		if inst.Target > 0 {
			inst.Target = 0
			inst.Start = now
			removed++
		}
	}

	if added+revived+removed > 0 {
		a.log.Debugf("[Scene] Update: +%d ~%d -%d (total %d)", added, revived, removed, st.Len())
	}

	a.schedule(st)
}

// Frame avança todas as instâncias até o instante atual, desenha as visíveis
// e se reagenda enquanto houver animação em andamento.
func (a *Animator) Frame(st *State) {
	st.scheduled = false
	now := a.clock.Now()

	needMore := false
	a.painter.BeginFrame()
	for _, inst := range st.sorted() {
		progress := float32(now.Sub(inst.Start)) / float32(a.opts.Duration)
		progress = util.Clamp(progress, 0, 1)
		eased := easeOutCubic(progress)

		newScale := util.Lerp(inst.Scale, inst.Target, eased)
		if util.Abs(newScale-inst.Scale) > a.opts.SettleThreshold || progress < 1 {
			needMore = true
		}
		inst.Scale = newScale

		if inst.Target == 0 && newScale < a.opts.Epsilon {
			delete(st.instances, inst.Key)
			continue
		}
		if newScale < a.opts.Epsilon {
			continue
		}
		a.painter.DrawBlock(inst.Pos, inst.Type, inst.Scale)
	}
	a.painter.EndFrame()

	if needMore {
		a.schedule(st)
	}
}

// Render redesenha o estado atual sem avançar as animações.
func (a *Animator) Render(st *State) {
	a.painter.BeginFrame()
	for _, inst := range st.sorted() {
		if inst.Scale < a.opts.Epsilon {
			continue
		}
		a.painter.DrawBlock(inst.Pos, inst.Type, inst.Scale)
	}
	a.painter.EndFrame()
}

// schedule troca o frame pendente por um novo. Nunca há mais de um por State.
func (a *Animator) schedule(st *State) {
	if st.scheduled {
		a.sched.Cancel(st.frame)
	}
	var h frame.Handle
	h = a.sched.Schedule(func() {
		if !st.scheduled || st.frame != h {
			return
		}
		a.Frame(st)
	})
	st.frame = h
	st.scheduled = true
}

func easeOutCubic(p float32) float32 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

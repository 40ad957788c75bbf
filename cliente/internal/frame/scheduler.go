package frame

// Handle identifica um callback agendado. O valor zero nunca é emitido.
type Handle uint64

// Scheduler agenda callbacks para o próximo refresh da tela.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

type pending struct {
	h  Handle
	fn func()
}

// Queue é um Scheduler síncrono: o loop principal chama Dispatch uma vez por frame.
// Não é seguro para uso concorrente; tudo roda na thread de renderização.
type Queue struct {
	next     Handle
	pending  []pending
	inFlight map[Handle]struct{} // lote do Dispatch em andamento
}

// NewQueue cria uma fila vazia.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule registra fn para o próximo Dispatch.
func (q *Queue) Schedule(fn func()) Handle {
	q.next++
	q.pending = append(q.pending, pending{h: q.next, fn: fn})
	return q.next
}

// Cancel remove um callback ainda não executado, inclusive um que espera
// no lote do Dispatch atual. Handles desconhecidos são ignorados.
func (q *Queue) Cancel(h Handle) {
	for i, p := range q.pending {
		if p.h == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	delete(q.inFlight, h)
}

// Pending retorna quantos callbacks esperam o próximo Dispatch.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Dispatch executa os callbacks agendados até agora e retorna quantos rodaram.
// Callbacks agendados durante o Dispatch ficam para o próximo.
func (q *Queue) Dispatch() int {
	batch := q.pending
	q.pending = nil

	q.inFlight = make(map[Handle]struct{}, len(batch))
	for _, p := range batch {
		q.inFlight[p.h] = struct{}{}
	}
	defer func() { q.inFlight = nil }()

	ran := 0
	for _, p := range batch {
		if _, ok := q.inFlight[p.h]; !ok {
			continue
		}
		delete(q.inFlight, p.h)
		p.fn()
		ran++
	}
	return ran
}

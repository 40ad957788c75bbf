package scene

import (
	"sort"
	"time"

	"IsoEngine/cliente/internal/assets"
	"IsoEngine/cliente/internal/frame"
	"IsoEngine/shared/util"
)

// BlockSpec é um bloco desejado pelo chamador. Type vazio significa "default".
type BlockSpec struct {
	X, Y, Z int32
	Type    string
}

// Key identifica uma instância: posição + tipo.
type Key struct {
	Pos  util.GridCoord
	Type assets.TypeID
}

// Less ordena por posição e depois por tipo.
func (k Key) Less(other Key) bool {
	if !k.Pos.Equals(other.Pos) {
		return k.Pos.Less(other.Pos)
	}
	return k.Type < other.Type
}

// Instance é o estado de animação de um bloco.
type Instance struct {
	Key
	Scale  float32   // Escala atual em [0, 1]
	Target float32   // 0 (saindo) ou 1 (presente)
	Start  time.Time // Início da animação atual
}

// State guarda as instâncias animadas de uma superfície.
// Pertence ao chamador e só deve ser usado na thread de renderização.
type State struct {
	instances map[Key]*Instance

	frame     frame.Handle
	scheduled bool
}

// NewState cria um estado vazio.
func NewState() *State {
	return &State{instances: make(map[Key]*Instance)}
}

// Len retorna o número de instâncias vivas (incluindo as que estão saindo).
func (s *State) Len() int {
	return len(s.instances)
}

// Instance retorna uma cópia da instância de k.
func (s *State) Instance(k Key) (Instance, bool) {
	inst, ok := s.instances[k]
	if !ok {
		return Instance{}, false
	}
	return *inst, true
}

// Snapshot retorna cópias de todas as instâncias em ordem de desenho.
func (s *State) Snapshot() []Instance {
	out := make([]Instance, 0, len(s.instances))
	for _, inst := range s.instances {
		out = append(out, *inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// Animating indica se existe um frame agendado.
func (s *State) Animating() bool {
	return s.scheduled
}

// sorted retorna as instâncias em ordem de desenho.
func (s *State) sorted() []*Instance {
	out := make([]*Instance, 0, len(s.instances))
	for _, inst := range s.instances {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

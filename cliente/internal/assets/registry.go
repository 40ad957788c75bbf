package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTypeName é o tipo usado quando o nome pedido é vazio ou desconhecido.
const DefaultTypeName = "default"

// TypeID é o índice denso de um tipo de bloco na tabela do Registry.
type TypeID uint16

// DefaultType é sempre o primeiro tipo da tabela.
const DefaultType TypeID = 0

//go:embed block_types.yaml
var builtinBlockTypes []byte

// ErrInvalidRegistry indica um arquivo de tipos de bloco inválido.
var ErrInvalidRegistry = errors.New("registro de blocos inválido")

// --- Estruturas YAML ---

// TextureSet agrupa as texturas de um tipo de bloco por grupo de faces
type TextureSet struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
	Sides  string `yaml:"sides"`
}

// TypeEntry é uma entrada do block_types.yaml
type TypeEntry struct {
	Name     string     `yaml:"name"`
	Height   float32    `yaml:"height"`
	Tokens   []string   `yaml:"tokens,omitempty"`
	Textures TextureSet `yaml:"textures"`
}

// RegistryConfig é o root do block_types.yaml
type RegistryConfig struct {
	BlockTypes []TypeEntry `yaml:"block_types"`
}

// BlockType é um tipo de bloco resolvido. Imutável depois da construção do Registry.
type BlockType struct {
	ID       TypeID
	Name     string
	Height   float32 // 1.0 = bloco cheio, 0.75 = 3/4 de altura
	Tokens   []string
	Textures TextureSet
}

// --- Registry ---

// Registry é a tabela estática de tipos de bloco, indexada por TypeID.
type Registry struct {
	types []BlockType
	index map[string]TypeID
}

// NewRegistry monta a tabela a partir das entradas. O tipo "default" vira o TypeID 0.
func NewRegistry(entries []TypeEntry) (*Registry, error) {
	r := &Registry{index: make(map[string]TypeID)}

	defIdx := -1
	for i, e := range entries {
		if e.Name == DefaultTypeName {
			defIdx = i
			break
		}
	}
	if defIdx < 0 {
		return nil, fmt.Errorf("%w: tipo %q ausente", ErrInvalidRegistry, DefaultTypeName)
	}

	ordered := make([]TypeEntry, 0, len(entries))
	ordered = append(ordered, entries[defIdx])
	ordered = append(ordered, entries[:defIdx]...)
	ordered = append(ordered, entries[defIdx+1:]...)

	for _, e := range ordered {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: tipo sem nome", ErrInvalidRegistry)
		}
		if _, dup := r.index[e.Name]; dup {
			return nil, fmt.Errorf("%w: tipo %q duplicado", ErrInvalidRegistry, e.Name)
		}
		if e.Height <= 0 || e.Height > 1 {
			return nil, fmt.Errorf("%w: altura %v do tipo %q fora de (0, 1]", ErrInvalidRegistry, e.Height, e.Name)
		}
		if e.Textures.Top == "" || e.Textures.Bottom == "" || e.Textures.Sides == "" {
			return nil, fmt.Errorf("%w: tipo %q sem textura", ErrInvalidRegistry, e.Name)
		}

		id := TypeID(len(r.types))
		r.types = append(r.types, BlockType{
			ID:       id,
			Name:     e.Name,
			Height:   e.Height,
			Tokens:   append([]string(nil), e.Tokens...),
			Textures: e.Textures,
		})
		r.index[e.Name] = id
	}

	return r, nil
}

// ParseRegistry valida e carrega um block_types.yaml.
func ParseRegistry(data []byte) (*Registry, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistry, err)
	}

	var conf RegistryConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("falha ao parsear block_types: %w", err)
	}
	return NewRegistry(conf.BlockTypes)
}

// LoadRegistry carrega os tipos de bloco de um arquivo.
// Caminho vazio usa os tipos embutidos.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}
	return ParseRegistry(data)
}

// DefaultRegistry retorna os tipos de bloco embutidos no binário.
func DefaultRegistry() (*Registry, error) {
	return ParseRegistry(builtinBlockTypes)
}

// --- Consultas ---

// Resolve converte um nome de tipo em TypeID. Nunca falha:
// nome exato, depois o token mais específico, e por fim o tipo default.
func (r *Registry) Resolve(name string) TypeID {
	if name == "" {
		return DefaultType
	}
	if id, ok := r.index[name]; ok {
		return id
	}

	best := DefaultType
	bestScore := -1
	for _, t := range r.types {
		for _, pat := range t.Tokens {
			if matchToken(pat, name) {
				score := specificityScore(pat)
				if score > bestScore {
					bestScore = score
					best = t.ID
				}
			}
		}
	}
	return best
}

// Type retorna o tipo de um TypeID. IDs fora da tabela caem no default.
func (r *Registry) Type(id TypeID) BlockType {
	if int(id) >= len(r.types) {
		return r.types[DefaultType]
	}
	return r.types[id]
}

// Types retorna a tabela completa, na ordem dos TypeIDs.
func (r *Registry) Types() []BlockType {
	return r.types
}

// Len retorna o número de tipos registrados.
func (r *Registry) Len() int {
	return len(r.types)
}

// TextureRefs retorna as referências de textura distintas, na ordem de primeira aparição.
func (r *Registry) TextureRefs() []string {
	seen := make(map[string]bool)
	var refs []string
	for _, t := range r.types {
		for _, ref := range []string{t.Textures.Top, t.Textures.Bottom, t.Textures.Sides} {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
		}
	}
	return refs
}

// --- Wildcard Matching ---

// matchToken compara um nome de consulta contra um padrão com suporte a wildcards (*)
// Formato do token: "NAMESPACE:NOME"
// O wildcard '*' em qualquer segmento aceita qualquer valor
func matchToken(pattern, query string) bool {
	if pattern == "*" {
		return true
	}

	patParts := strings.Split(pattern, ":")
	queryParts := strings.Split(query, ":")
	if len(patParts) != len(queryParts) {
		return false
	}

	for i := range patParts {
		if patParts[i] == "*" {
			continue
		}
		if patParts[i] != queryParts[i] {
			return false
		}
	}
	return true
}

// specificityScore calcula a "especificidade" de um padrão
// Quanto mais segmentos NÃO são wildcard, mais específico é
func specificityScore(pattern string) int {
	if pattern == "*" {
		return 0
	}
	score := 0
	for _, p := range strings.Split(pattern, ":") {
		if p != "*" {
			score++
		}
	}
	return score
}

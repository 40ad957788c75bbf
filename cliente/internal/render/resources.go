package render

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"IsoEngine/cliente/internal/assets"
	"IsoEngine/cliente/internal/meshing"
	"IsoEngine/shared/util"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// ErrRendererUnavailable indica que a superfície não tem contexto gráfico
// ou que o programa de blocos não compilou. Não há renderer parcial.
var ErrRendererUnavailable = errors.New("renderer indisponível")

// Options configura a geometria e as texturas.
type Options struct {
	CellSize    float32    // Distância entre células da grade
	BlockSize   float32    // Meia aresta do bloco
	TextureSize int        // Lado das texturas (placeholder e imagem decodificada)
	Clear       color.RGBA // Cor de fundo
	Placeholder color.RGBA // Cor das texturas enquanto a imagem não chega
}

// DefaultOptions retorna célula 32, bloco 16, texturas 16x16.
func DefaultOptions() Options {
	return Options{
		CellSize:    32,
		BlockSize:   16,
		TextureSize: 16,
		Clear:       color.RGBA{R: 26, G: 26, B: 38, A: 255}, // (0.1, 0.1, 0.15)
		Placeholder: color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}
}

// TypeBuffers são os buffers de geometria de um tipo de bloco.
type TypeBuffers struct {
	Positions BufferID
	TexCoords BufferID
}

// Resources são os recursos de GPU de uma superfície. Criados uma vez por Acquire.
type Resources struct {
	dev     Device
	opts    Options
	log     logrus.FieldLogger
	program ProgramID
	indices BufferID
	types   []TypeBuffers

	slots     []*textureSlot
	faceSlots [][meshing.GroupCount]int // TypeID -> grupo de faces -> slot

	pending *atomic.Int32
	done    *util.ThreadSafeQueue[decodeResult]
}

// Program retorna o programa de blocos.
func (r *Resources) Program() ProgramID { return r.program }

// Indices retorna o buffer de índices compartilhado por todos os tipos.
func (r *Resources) Indices() BufferID { return r.indices }

// Buffers retorna os buffers de um tipo. IDs desconhecidos usam o tipo default.
func (r *Resources) Buffers(id assets.TypeID) TypeBuffers {
	if int(id) >= len(r.types) {
		return r.types[assets.DefaultType]
	}
	return r.types[id]
}

// Texture retorna a textura ligada a um grupo de faces de um tipo.
func (r *Resources) Texture(id assets.TypeID, g meshing.FaceGroup) TextureID {
	if int(id) >= len(r.faceSlots) {
		id = assets.DefaultType
	}
	return r.slots[r.faceSlots[id][g]].id
}

// Device retorna o contexto de rasterização.
func (r *Resources) Device() Device { return r.dev }

// Options retorna as opções usadas na criação.
func (r *Resources) Options() Options { return r.opts }

// ResourceManager cria e guarda os Resources de cada superfície.
type ResourceManager struct {
	reg  *assets.Registry
	src  assets.Source
	opts Options
	log  logrus.FieldLogger

	mu    sync.Mutex
	cache map[Device]*Resources

	spawn func(func()) // Executor das decodificações
}

// NewResourceManager cria o gerenciador. Valores zerados em opts usam os padrões.
func NewResourceManager(reg *assets.Registry, src assets.Source, opts Options, log logrus.FieldLogger) *ResourceManager {
	def := DefaultOptions()
	if opts.CellSize <= 0 {
		opts.CellSize = def.CellSize
	}
	if opts.BlockSize <= 0 {
		opts.BlockSize = def.BlockSize
	}
	if opts.TextureSize <= 0 {
		opts.TextureSize = def.TextureSize
	}
	if opts.Clear == (color.RGBA{}) {
		opts.Clear = def.Clear
	}
	if opts.Placeholder == (color.RGBA{}) {
		opts.Placeholder = def.Placeholder
	}
	return &ResourceManager{
		reg:   reg,
		src:   src,
		opts:  opts,
		log:   log,
		cache: make(map[Device]*Resources),
		spawn: func(f func()) { go f() },
	}
}

// Acquire inicializa os recursos da superfície. Chamadas repetidas com o mesmo
// Device retornam os mesmos Resources. Falhas retornam ErrRendererUnavailable.
func (m *ResourceManager) Acquire(dev Device) (*Resources, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if res, ok := m.cache[dev]; ok {
		return res, nil
	}

	if !dev.Ready() {
		return nil, fmt.Errorf("%w: superfície sem contexto gráfico", ErrRendererUnavailable)
	}

	program, err := dev.CompileProgram(blockVertexShader, blockFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("%w: falha ao compilar shaders: %v", ErrRendererUnavailable, err)
	}

	res := &Resources{
		dev:     dev,
		opts:    m.opts,
		log:     m.log,
		program: program,
		pending: atomic.NewInt32(0),
		done:    util.NewThreadSafeQueue[decodeResult](),
	}
	if err := m.build(res); err != nil {
		res.release()
		return nil, fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
	}

	m.cache[dev] = res
	m.log.Infof("[Render] Recursos criados: %d tipos, %d texturas", len(res.types), len(res.slots))
	return res, nil
}

// build cria buffers e texturas. Em caso de erro, o que já foi criado fica em res
// para o release.
func (m *ResourceManager) build(res *Resources) error {
	dev := res.dev

	// Índices só dependem do layout das faces: um buffer para todos os tipos.
	base := meshing.GenerateMesh(m.opts.BlockSize, 1)
	indices, err := dev.CreateIndexBuffer(base.Indices)
	if err != nil {
		return fmt.Errorf("falha ao criar buffer de índices: %w", err)
	}
	res.indices = indices

	for _, t := range m.reg.Types() {
		geo := meshing.BlockGeometry(m.opts.BlockSize, t.Height)
		pos, err := dev.CreateVertexBuffer(geo.Vertices, 3)
		if err != nil {
			return fmt.Errorf("falha ao criar buffer de posições (%s): %w", t.Name, err)
		}
		uv, err := dev.CreateVertexBuffer(geo.UVs, 2)
		if err != nil {
			dev.DeleteBuffer(pos)
			return fmt.Errorf("falha ao criar buffer de UVs (%s): %w", t.Name, err)
		}
		res.types = append(res.types, TypeBuffers{Positions: pos, TexCoords: uv})
	}

	return m.createTextures(res)
}

// release devolve ao Device tudo o que um Acquire incompleto criou.
func (r *Resources) release() {
	for _, slot := range r.slots {
		r.dev.DeleteTexture(slot.id)
	}
	for _, b := range r.types {
		r.dev.DeleteBuffer(b.Positions)
		r.dev.DeleteBuffer(b.TexCoords)
	}
	if r.indices != 0 {
		r.dev.DeleteBuffer(r.indices)
	}
	r.dev.DeleteProgram(r.program)
	r.slots, r.types, r.indices = nil, nil, 0
}

package render

import (
	"image"
	"image/color"

	"IsoEngine/cliente/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Handles opacos emitidos pelo Device. Zero nunca é um handle válido.
type (
	ProgramID uint32
	BufferID  uint32
	TextureID uint32
)

// DrawCall é um desenho indexado de uma fatia do buffer de índices compartilhado.
type DrawCall struct {
	Program    ProgramID
	Positions  BufferID
	TexCoords  BufferID
	Indices    BufferID
	Texture    TextureID
	ModelView  mgl32.Mat4
	Projection mgl32.Mat4
	Scale      float32
	Range      meshing.IndexRange
}

// Device é o contexto de rasterização de uma superfície.
// Todas as chamadas acontecem na thread de renderização.
type Device interface {
	// Ready indica se a superfície tem um contexto gráfico utilizável.
	Ready() bool

	CompileProgram(vertex, fragment string) (ProgramID, error)
	CreateVertexBuffer(data []float32, components int) (BufferID, error)
	CreateIndexBuffer(data []uint16) (BufferID, error)

	// CreateTexture cria uma textura width x height preenchida com fill.
	CreateTexture(width, height int, fill color.RGBA) (TextureID, error)
	// UpdateTexture troca os pixels de uma textura existente (mesmo tamanho).
	UpdateTexture(id TextureID, img *image.RGBA) error

	// Delete* liberam recursos criados. IDs desconhecidos são ignorados.
	DeleteProgram(id ProgramID)
	DeleteBuffer(id BufferID)
	DeleteTexture(id TextureID)

	// Size retorna o tamanho da superfície em pixels.
	Size() (width, height int)

	BeginFrame(clear color.RGBA)
	Draw(call DrawCall)
	EndFrame()
}

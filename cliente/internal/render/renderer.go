package render

import (
	"IsoEngine/cliente/internal/assets"
	"IsoEngine/cliente/internal/camera"
	"IsoEngine/cliente/internal/meshing"
	"IsoEngine/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer desenha blocos com a câmera isométrica. Implementa scene.Painter.
type Renderer struct {
	res *Resources

	proj mgl32.Mat4
	view mgl32.Mat4

	// Estatísticas do último frame (HUD)
	blocks int
	draws  int
}

// NewRenderer cria um Renderer sobre recursos já adquiridos.
func NewRenderer(res *Resources) *Renderer {
	return &Renderer{res: res}
}

// BeginFrame limpa a superfície e recalcula as matrizes da câmera.
func (r *Renderer) BeginFrame() {
	dev := r.res.dev
	r.proj = camera.Projection(camera.Aspect(dev.Size()))
	r.view = camera.View()
	r.blocks, r.draws = 0, 0
	dev.BeginFrame(r.res.opts.Clear)
}

// DrawBlock desenha um bloco na célula pos com a escala da animação.
// Um desenho por fatia de índices de cada grupo de faces.
func (r *Renderer) DrawBlock(pos util.GridCoord, typ assets.TypeID, scale float32) {
	if int(typ) >= len(r.res.types) {
		typ = assets.DefaultType
	}
	world := pos.WorldPos(r.res.opts.CellSize)
	modelView := r.view.Mul4(mgl32.Translate3D(world.X(), world.Y(), world.Z()))
	bufs := r.res.types[typ]

	for g := meshing.FaceGroup(0); g < meshing.GroupCount; g++ {
		tex := r.res.Texture(typ, g)
		for _, rng := range g.Ranges() {
			r.res.dev.Draw(DrawCall{
				Program:    r.res.program,
				Positions:  bufs.Positions,
				TexCoords:  bufs.TexCoords,
				Indices:    r.res.indices,
				Texture:    tex,
				ModelView:  modelView,
				Projection: r.proj,
				Scale:      scale,
				Range:      rng,
			})
			r.draws++
		}
	}
	r.blocks++
}

// EndFrame fecha o frame no Device.
func (r *Renderer) EndFrame() {
	r.res.dev.EndFrame()
}

// Stats retorna blocos e chamadas de desenho do último frame.
func (r *Renderer) Stats() (blocks, draws int) {
	return r.blocks, r.draws
}

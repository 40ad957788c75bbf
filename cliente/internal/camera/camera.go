package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Câmera isométrica fixa. Sem estado: as matrizes são recalculadas a cada frame.
const (
	FieldOfView = math.Pi / 4
	Near        = 0.1
	Far         = 2000.0
)

// Posição da câmera: recuo e rotações que dão a vista isométrica.
var (
	Offset = mgl32.Vec3{-15, 65, -300}
	PitchX = float32(math.Pi / 4)
	YawY   = float32(-math.Pi / 4)
)

// Projection retorna a matriz de perspectiva para a razão de aspecto da superfície.
// Aspecto inválido (zero, negativo ou NaN) usa 1.
func Projection(aspect float32) mgl32.Mat4 {
	if !(aspect > 0) || math.IsInf(float64(aspect), 0) {
		aspect = 1
	}
	return mgl32.Perspective(FieldOfView, aspect, Near, Far)
}

// View retorna translate(Offset) · rotX(PitchX) · rotY(YawY).
func View() mgl32.Mat4 {
	return mgl32.Translate3D(Offset.X(), Offset.Y(), Offset.Z()).
		Mul4(mgl32.HomogRotate3DX(PitchX)).
		Mul4(mgl32.HomogRotate3DY(YawY))
}

// ModelView posiciona um bloco: View · translate(pos).
func ModelView(pos mgl32.Vec3) mgl32.Mat4 {
	return View().Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()))
}

// Aspect calcula largura/altura de uma superfície em pixels.
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

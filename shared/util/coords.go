package util

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GridCoord representa uma posição inteira na grade de blocos.
// X = leste/oeste, Y = nível vertical, Z = norte/sul (mesmos eixos da câmera isométrica)
type GridCoord struct {
	X, Y, Z int32
}

// NewGridCoord cria uma nova coordenada de grade.
func NewGridCoord(x, y, z int32) GridCoord {
	return GridCoord{X: x, Y: y, Z: z}
}

// Equals verifica igualdade entre coordenadas.
func (c GridCoord) Equals(other GridCoord) bool {
	return c.X == other.X && c.Y == other.Y && c.Z == other.Z
}

// Less ordena por camada (Y), depois Z, depois X.
// Usado para manter a ordem de desenho determinística.
func (c GridCoord) Less(other GridCoord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	if c.Z != other.Z {
		return c.Z < other.Z
	}
	return c.X < other.X
}

// String retorna a representação em string da coordenada.
func (c GridCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

// WorldPos converte a coordenada de grade para a posição no mundo 3D.
// cellSize é o tamanho de uma célula da grade em unidades de mundo.
func (c GridCoord) WorldPos(cellSize float32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.X) * cellSize,
		float32(c.Y) * cellSize,
		float32(c.Z) * cellSize,
	}
}

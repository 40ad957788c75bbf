package meshing

// Face identifica uma face do bloco. A ordem é fixa e define o layout dos buffers.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceTop
	FaceBottom
	FaceRight
	FaceLeft
	FaceCount
)

const (
	VerticesPerFace = 4
	IndicesPerFace  = 6

	BlockVertexCount = int(FaceCount) * VerticesPerFace
	BlockIndexCount  = int(FaceCount) * IndicesPerFace
)

// FaceGroup agrupa faces que compartilham a mesma textura.
type FaceGroup int

const (
	GroupSides FaceGroup = iota
	GroupTop
	GroupBottom
	GroupCount
)

// IndexRange é uma fatia contígua do buffer de índices (em índices, não bytes).
type IndexRange struct {
	First int
	Count int
}

// faceRange retorna a fatia de índices de uma face.
func faceRange(f Face) IndexRange {
	return IndexRange{First: int(f) * IndicesPerFace, Count: IndicesPerFace}
}

// Ranges retorna as fatias de índices desenhadas para o grupo.
// As laterais ficam separadas por topo/base no layout, então são duas fatias.
func (g FaceGroup) Ranges() []IndexRange {
	switch g {
	case GroupTop:
		return []IndexRange{faceRange(FaceTop)}
	case GroupBottom:
		return []IndexRange{faceRange(FaceBottom)}
	default:
		return []IndexRange{
			{First: int(FaceFront) * IndicesPerFace, Count: 2 * IndicesPerFace}, // frente + trás
			{First: int(FaceRight) * IndicesPerFace, Count: 2 * IndicesPerFace}, // direita + esquerda
		}
	}
}

// String retorna o nome do grupo (usado em logs).
func (g FaceGroup) String() string {
	switch g {
	case GroupSides:
		return "sides"
	case GroupTop:
		return "top"
	case GroupBottom:
		return "bottom"
	}
	return "unknown"
}

// GenerateMesh gera a caixa de 24 vértices / 36 índices de um bloco.
// size é a meia aresta; height (0, 1] rebaixa o topo para size*height.
func GenerateMesh(size, height float32) GeometryData {
	s := size
	h := s * height

	vertices := []float32{
		-s, -s, s, s, -s, s, s, h, s, -s, h, s, // Frente
		-s, -s, -s, -s, h, -s, s, h, -s, s, -s, -s, // Trás
		-s, h, -s, -s, h, s, s, h, s, s, h, -s, // Topo
		-s, -s, -s, s, -s, -s, s, -s, s, -s, -s, s, // Base
		s, -s, -s, s, h, -s, s, h, s, s, -s, s, // Direita
		-s, -s, -s, -s, -s, s, -s, h, s, -s, h, -s, // Esquerda
	}

	indices := make([]uint16, 0, BlockIndexCount)
	for f := 0; f < int(FaceCount); f++ {
		base := uint16(f * VerticesPerFace)
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return GeometryData{Vertices: vertices, Indices: indices}
}

// GenerateTexCoords gera as coordenadas de textura na mesma ordem de GenerateMesh.
// Nas laterais o v vai só até height, para a textura não esticar num bloco baixo.
func GenerateTexCoords(height float32) []float32 {
	h := height
	return []float32{
		0, 0, 1, 0, 1, h, 0, h, // Frente
		0, 0, 1, 0, 1, h, 0, h, // Trás
		0, 0, 1, 0, 1, 1, 0, 1, // Topo
		0, 0, 1, 0, 1, 1, 0, 1, // Base
		1, 0, 1, h, 0, h, 0, 0, // Direita
		0, h, 0, 0, 1, 0, 1, h, // Esquerda
	}
}

// BlockGeometry junta posições, UVs e índices de um tipo de bloco.
func BlockGeometry(size, height float32) GeometryData {
	g := GenerateMesh(size, height)
	g.UVs = GenerateTexCoords(height)
	return g
}

// FaceOf retorna a face a que pertence um vértice.
func FaceOf(vertex int) Face {
	return Face(vertex / VerticesPerFace)
}

package meshing

// GeometryData contém os buffers de vértices para uma malha.
type GeometryData struct {
	Vertices []float32 // xyz por vértice
	UVs      []float32 // uv por vértice
	Indices  []uint16
}

// VertexCount retorna o número de vértices da malha.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}

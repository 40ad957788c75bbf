package scene

// DemoMaxBlocks é o número de posições da cena de demonstração, além da mesa.
const DemoMaxBlocks = 15

// demoPositions é a ordem em que os blocos aparecem: parede da frente,
// parede da esquerda, parede da direita e depois uma segunda camada.
var demoPositions = func() []BlockSpec {
	var out []BlockSpec
	for i := int32(0); i < 3; i++ {
		out = append(out, BlockSpec{X: i + 1, Y: 0, Z: 0})
	}
	for i := int32(0); i < 3; i++ {
		out = append(out, BlockSpec{X: 0, Y: 0, Z: i + 1})
	}
	for i := int32(0); i < 3; i++ {
		out = append(out, BlockSpec{X: 4, Y: 0, Z: i + 1})
	}
	for i := int32(0); i < 3; i++ {
		out = append(out, BlockSpec{X: i + 1, Y: 1, Z: 0})
	}
	for i := int32(0); i < 2; i++ {
		out = append(out, BlockSpec{X: 4, Y: 1, Z: i + 1})
	}
	out = append(out, BlockSpec{X: 0, Y: 1, Z: 1})
	return dedupe(out)
}()

// DemoCount limita n ao intervalo [0, min(limit, DemoMaxBlocks)].
func DemoCount(n, limit int) int {
	if limit > DemoMaxBlocks {
		limit = DemoMaxBlocks
	}
	if limit < 0 {
		limit = 0
	}
	if n > limit {
		return limit
	}
	if n < 0 {
		return 0
	}
	return n
}

// DemoTable é a mesa de encantamento sempre presente na demonstração.
var DemoTable = BlockSpec{X: 2, Y: 0, Z: 2, Type: "enchanting_table"}

// DemoLayout retorna a mesa mais as primeiras count posições.
// count é limitado a [0, DemoMaxBlocks].
func DemoLayout(count int) []BlockSpec {
	if count < 0 {
		count = 0
	}
	if count > len(demoPositions) {
		count = len(demoPositions)
	}
	out := make([]BlockSpec, 0, count+1)
	out = append(out, DemoTable)
	return append(out, demoPositions[:count]...)
}

func dedupe(in []BlockSpec) []BlockSpec {
	seen := make(map[BlockSpec]bool, len(in))
	out := in[:0]
	for _, b := range in {
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}

package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"IsoEngine/cliente/internal/assets"
)

// fakeDevice grava tudo o que o renderer pede.
type fakeDevice struct {
	ready      bool
	compileErr error
	failVertex int // Se > 0, a N-ésima chamada a CreateVertexBuffer falha
	width      int
	height     int

	next     uint32
	programs int // compilados
	live     map[ProgramID]bool
	vbuffers map[BufferID][]float32
	ibuffers map[BufferID][]uint16
	textures map[TextureID]*image.RGBA
	fills    map[TextureID]color.RGBA
	updates  map[TextureID]int

	vertexCalls int
	deleted     int

	frames int
	clears []color.RGBA
	draws  []DrawCall
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		ready:    true,
		width:    1280,
		height:   720,
		live:     make(map[ProgramID]bool),
		vbuffers: make(map[BufferID][]float32),
		ibuffers: make(map[BufferID][]uint16),
		textures: make(map[TextureID]*image.RGBA),
		fills:    make(map[TextureID]color.RGBA),
		updates:  make(map[TextureID]int),
	}
}

func (d *fakeDevice) Ready() bool { return d.ready }

func (d *fakeDevice) CompileProgram(vertex, fragment string) (ProgramID, error) {
	if d.compileErr != nil {
		return 0, d.compileErr
	}
	d.programs++
	d.next++
	d.live[ProgramID(d.next)] = true
	return ProgramID(d.next), nil
}

func (d *fakeDevice) CreateVertexBuffer(data []float32, components int) (BufferID, error) {
	d.vertexCalls++
	if d.failVertex > 0 && d.vertexCalls == d.failVertex {
		return 0, errors.New("out of memory")
	}
	d.next++
	d.vbuffers[BufferID(d.next)] = append([]float32(nil), data...)
	return BufferID(d.next), nil
}

func (d *fakeDevice) CreateIndexBuffer(data []uint16) (BufferID, error) {
	d.next++
	d.ibuffers[BufferID(d.next)] = append([]uint16(nil), data...)
	return BufferID(d.next), nil
}

func (d *fakeDevice) CreateTexture(width, height int, fill color.RGBA) (TextureID, error) {
	d.next++
	id := TextureID(d.next)
	d.textures[id] = image.NewRGBA(image.Rect(0, 0, width, height))
	d.fills[id] = fill
	return id, nil
}

func (d *fakeDevice) UpdateTexture(id TextureID, img *image.RGBA) error {
	cur, ok := d.textures[id]
	if !ok {
		return errors.New("unknown texture")
	}
	if cur.Bounds() != img.Bounds() {
		return errors.New("size mismatch")
	}
	d.textures[id] = img
	d.updates[id]++
	return nil
}

func (d *fakeDevice) DeleteProgram(id ProgramID) {
	if d.live[id] {
		delete(d.live, id)
		d.deleted++
	}
}

func (d *fakeDevice) DeleteBuffer(id BufferID) {
	if _, ok := d.vbuffers[id]; ok {
		delete(d.vbuffers, id)
		d.deleted++
	}
	if _, ok := d.ibuffers[id]; ok {
		delete(d.ibuffers, id)
		d.deleted++
	}
}

func (d *fakeDevice) DeleteTexture(id TextureID) {
	if _, ok := d.textures[id]; ok {
		delete(d.textures, id)
		delete(d.fills, id)
		d.deleted++
	}
}

func (d *fakeDevice) Size() (int, int) { return d.width, d.height }

func (d *fakeDevice) BeginFrame(clear color.RGBA) {
	d.frames++
	d.clears = append(d.clears, clear)
	d.draws = nil
}

func (d *fakeDevice) Draw(call DrawCall) { d.draws = append(d.draws, call) }

func (d *fakeDevice) EndFrame() {}

// memSource serve texturas da memória.
type memSource map[string][]byte

func (s memSource) Open(ref string) (io.ReadCloser, error) {
	data, ok := s[ref]
	if !ok {
		return nil, assets.ErrTextureNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// encodePNG gera um PNG com a metade de cima vermelha e a de baixo azul.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.RGBA{R: 255, A: 255}
		if y >= h/2 {
			c = color.RGBA{B: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

package render

import (
	"testing"

	"IsoEngine/cliente/internal/assets"
	"IsoEngine/cliente/internal/camera"
	"IsoEngine/cliente/internal/meshing"
	"IsoEngine/shared/util"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDrawBlockIssuesOneCallPerRange(t *testing.T) {
	m, _ := newTestManager(t, fullSource(t))
	dev := newFakeDevice()
	res, err := m.Acquire(dev)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(res)

	r.BeginFrame()
	r.DrawBlock(util.NewGridCoord(2, 0, 2), assets.DefaultType, 0.5)
	r.EndFrame()

	if len(dev.draws) != 4 {
		t.Fatalf("draw calls = %d, want 4", len(dev.draws))
	}
	blocks, draws := r.Stats()
	if blocks != 1 || draws != 4 {
		t.Errorf("Stats() = %d, %d; want 1, 4", blocks, draws)
	}

	covered := 0
	bufs := res.Buffers(assets.DefaultType)
	for _, c := range dev.draws {
		if c.Scale != 0.5 {
			t.Errorf("scale = %v, want 0.5", c.Scale)
		}
		if c.Positions != bufs.Positions || c.TexCoords != bufs.TexCoords || c.Indices != res.Indices() {
			t.Errorf("call uses buffers %v/%v/%v", c.Positions, c.TexCoords, c.Indices)
		}
		if c.Program != res.Program() {
			t.Errorf("program = %v, want %v", c.Program, res.Program())
		}
		covered += c.Range.Count
	}
	if covered != meshing.BlockIndexCount {
		t.Errorf("indices drawn = %d, want %d", covered, meshing.BlockIndexCount)
	}

	// Ordem: laterais (2 fatias), topo, base.
	wantTex := []meshing.FaceGroup{meshing.GroupSides, meshing.GroupSides, meshing.GroupTop, meshing.GroupBottom}
	for i, g := range wantTex {
		if got := dev.draws[i].Texture; got != res.Texture(assets.DefaultType, g) {
			t.Errorf("draw %d texture = %v, want %s texture", i, got, g)
		}
	}
}

func TestDrawBlockKeepsTextureAcrossDecode(t *testing.T) {
	m, _ := newTestManager(t, fullSource(t))
	dev := newFakeDevice()
	res, err := m.Acquire(dev)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(res)
	pos := util.NewGridCoord(0, 0, 0)

	r.BeginFrame()
	r.DrawBlock(pos, assets.DefaultType, 1)
	r.EndFrame()
	before := make([]TextureID, len(dev.draws))
	for i, c := range dev.draws {
		before[i] = c.Texture
		if dev.updates[c.Texture] != 0 {
			t.Errorf("draw %d: texture %v already updated before poll", i, c.Texture)
		}
	}
	if st, _ := res.TextureState("bookshelf.png"); st != TexturePending {
		t.Errorf("state before poll = %s, want pending", st)
	}

	res.PollTextures()

	r.BeginFrame()
	r.DrawBlock(pos, assets.DefaultType, 1)
	r.EndFrame()
	if len(dev.draws) != len(before) {
		t.Fatalf("draw calls = %d, want %d", len(dev.draws), len(before))
	}
	for i, c := range dev.draws {
		if c.Texture != before[i] {
			t.Errorf("draw %d texture = %v, want %v", i, c.Texture, before[i])
		}
		if dev.updates[c.Texture] != 1 {
			t.Errorf("draw %d: texture %v updated %d times, want 1", i, c.Texture, dev.updates[c.Texture])
		}
	}
	if st, _ := res.TextureState("bookshelf.png"); st != TextureReady {
		t.Errorf("state after poll = %s, want ready", st)
	}
}

func TestDrawBlockModelViewAndProjection(t *testing.T) {
	m, _ := newTestManager(t, fullSource(t))
	dev := newFakeDevice()
	dev.width, dev.height = 800, 400
	res, err := m.Acquire(dev)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(res)

	r.BeginFrame()
	r.DrawBlock(util.NewGridCoord(1, 2, 3), assets.DefaultType, 1)
	r.EndFrame()

	call := dev.draws[0]
	wantMV := camera.View().Mul4(mgl32.Translate3D(32, 64, 96))
	if !call.ModelView.ApproxEqualThreshold(wantMV, 1e-4) {
		t.Errorf("ModelView = %v, want %v", call.ModelView, wantMV)
	}
	if want := camera.Projection(2); !call.Projection.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("Projection = %v, want aspect 2 perspective", call.Projection)
	}
	if len(dev.clears) != 1 || dev.clears[0] != DefaultOptions().Clear {
		t.Errorf("clears = %v, want one clear with %v", dev.clears, DefaultOptions().Clear)
	}
}

func TestDrawBlockUsesTypeResources(t *testing.T) {
	m, _ := newTestManager(t, fullSource(t))
	dev := newFakeDevice()
	res, err := m.Acquire(dev)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(res)
	ench := m.reg.Resolve("enchanting_table")

	r.BeginFrame()
	r.DrawBlock(util.NewGridCoord(0, 0, 0), ench, 1)
	r.DrawBlock(util.NewGridCoord(1, 0, 0), assets.TypeID(99), 1)
	r.EndFrame()

	if len(dev.draws) != 8 {
		t.Fatalf("draw calls = %d, want 8", len(dev.draws))
	}
	if dev.draws[0].Positions != res.Buffers(ench).Positions {
		t.Error("enchanting_table drawn with wrong position buffer")
	}
	if dev.draws[4].Positions != res.Buffers(assets.DefaultType).Positions {
		t.Error("unknown type not drawn with default buffers")
	}
	if dev.draws[2].Texture != res.Texture(ench, meshing.GroupTop) {
		t.Error("enchanting_table top drawn with wrong texture")
	}
}

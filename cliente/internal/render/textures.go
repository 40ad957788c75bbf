package render

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"

	"IsoEngine/cliente/internal/meshing"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// TextureState é o estado de um slot de textura.
type TextureState int

const (
	TexturePending TextureState = iota // Placeholder ligado, decodificação em andamento
	TextureReady                       // Pixels da imagem enviados
	TextureFailed                      // Decodificação falhou: placeholder fica para sempre
)

func (s TextureState) String() string {
	switch s {
	case TexturePending:
		return "pending"
	case TextureReady:
		return "ready"
	case TextureFailed:
		return "failed"
	}
	return "unknown"
}

type textureSlot struct {
	ref   string
	id    TextureID
	state TextureState
}

type decodeResult struct {
	slot int
	img  *image.RGBA
	err  error
}

// createTextures cria um placeholder por referência distinta e dispara as decodificações.
func (m *ResourceManager) createTextures(res *Resources) error {
	size := m.opts.TextureSize
	byRef := make(map[string]int)

	slotFor := func(ref string) (int, error) {
		if i, ok := byRef[ref]; ok {
			return i, nil
		}
		id, err := res.dev.CreateTexture(size, size, m.opts.Placeholder)
		if err != nil {
			return 0, fmt.Errorf("falha ao criar textura %s: %w", ref, err)
		}
		i := len(res.slots)
		res.slots = append(res.slots, &textureSlot{ref: ref, id: id, state: TexturePending})
		byRef[ref] = i
		return i, nil
	}

	for _, t := range m.reg.Types() {
		var groups [meshing.GroupCount]int
		refs := map[meshing.FaceGroup]string{
			meshing.GroupSides:  t.Textures.Sides,
			meshing.GroupTop:    t.Textures.Top,
			meshing.GroupBottom: t.Textures.Bottom,
		}
		for g := meshing.FaceGroup(0); g < meshing.GroupCount; g++ {
			i, err := slotFor(refs[g])
			if err != nil {
				return err
			}
			groups[g] = i
		}
		res.faceSlots = append(res.faceSlots, groups)
	}

	for i, slot := range res.slots {
		i, ref := i, slot.ref
		res.pending.Inc()
		m.spawn(func() {
			img, err := m.loadImage(ref)
			res.done.Push(decodeResult{slot: i, img: img, err: err})
			res.pending.Dec()
		})
	}
	return nil
}

// loadImage busca e decodifica uma textura no tamanho dos placeholders.
func (m *ResourceManager) loadImage(ref string) (*image.RGBA, error) {
	rc, err := m.src.Open(ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("falha ao decodificar %s: %w", ref, err)
	}
	return fitTexture(img, m.opts.TextureSize), nil
}

// fitTexture redimensiona (vizinho mais próximo) para size x size e inverte na vertical,
// deixando v=0 na base da imagem.
func fitTexture(img image.Image, size int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() != size || b.Dy() != size {
		img = resize.Resize(uint(size), uint(size), img, resize.NearestNeighbor)
		b = img.Bounds()
	}

	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	out := image.NewRGBA(src.Bounds())
	h := src.Bounds().Dy()
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], src.Pix[(h-1-y)*src.Stride:(h-y)*src.Stride])
	}
	return out
}

// PollTextures envia para a GPU as imagens já decodificadas.
// Deve ser chamado na thread de renderização. Retorna quantos slots mudaram de estado.
func (r *Resources) PollTextures() int {
	results := r.done.Drain()
	for _, d := range results {
		slot := r.slots[d.slot]
		if d.err != nil {
			slot.state = TextureFailed
			r.log.Warnf("[Render] Textura %s indisponível, mantendo placeholder: %v", slot.ref, d.err)
			continue
		}
		if err := r.dev.UpdateTexture(slot.id, d.img); err != nil {
			slot.state = TextureFailed
			r.log.Warnf("[Render] Falha ao enviar textura %s: %v", slot.ref, err)
			continue
		}
		slot.state = TextureReady
		r.log.Debugf("[Render] Textura carregada: %s", slot.ref)
	}
	return len(results)
}

// PendingTextures retorna quantas decodificações ainda estão em andamento.
func (r *Resources) PendingTextures() int {
	return int(r.pending.Load())
}

// TextureState retorna o estado do slot de uma referência de textura.
func (r *Resources) TextureState(ref string) (TextureState, bool) {
	for _, s := range r.slots {
		if s.ref == ref {
			return s.state, true
		}
	}
	return 0, false
}

// TextureCounts conta os slots por estado.
func (r *Resources) TextureCounts() map[TextureState]int {
	out := make(map[TextureState]int, 3)
	for _, s := range r.slots {
		out[s.state]++
	}
	return out
}

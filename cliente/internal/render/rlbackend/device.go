package rlbackend

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"unsafe"

	"IsoEngine/cliente/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

type vertexBuffer struct {
	data       []float32
	components int
}

// meshKey identifica uma malha materializada: buffers do tipo + fatia de índices.
type meshKey struct {
	positions, texcoords, indices render.BufferID
	first, count                  int
}

type materialKey struct {
	program render.ProgramID
	texture render.TextureID
}

type rlProgram struct {
	shader        rl.Shader
	modelViewLoc  int32
	projectionLoc int32
	scaleLoc      int32
}

// Device implementa render.Device sobre a janela do raylib.
// O raylib desenha malhas inteiras, então cada (tipo, fatia) vira uma rl.Mesh
// criada na primeira vez que é desenhada.
type Device struct {
	log logrus.FieldLogger

	next uint32

	programs  map[render.ProgramID]rlProgram
	vbuffers  map[render.BufferID]vertexBuffer
	ibuffers  map[render.BufferID][]uint16
	textures  map[render.TextureID]rl.Texture2D
	meshes    map[meshKey]rl.Mesh
	materials map[materialKey]rl.Material
}

// New cria o device. A janela precisa ter sido aberta antes de Acquire.
func New(log logrus.FieldLogger) *Device {
	return &Device{
		log:       log,
		programs:  make(map[render.ProgramID]rlProgram),
		vbuffers:  make(map[render.BufferID]vertexBuffer),
		ibuffers:  make(map[render.BufferID][]uint16),
		textures:  make(map[render.TextureID]rl.Texture2D),
		meshes:    make(map[meshKey]rl.Mesh),
		materials: make(map[materialKey]rl.Material),
	}
}

var _ render.Device = (*Device)(nil)

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

func (d *Device) Ready() bool {
	return rl.IsWindowReady()
}

// CompileProgram compila o par de shaders. Se o raylib cair no shader padrão
// (erro de compilação ou link) os uniforms não existem e o programa é rejeitado.
func (d *Device) CompileProgram(vertex, fragment string) (render.ProgramID, error) {
	shader := rl.LoadShaderFromMemory(vertex, fragment)
	if shader.ID == 0 {
		return 0, errors.New("falha ao linkar programa")
	}

	p := rlProgram{
		shader:        shader,
		modelViewLoc:  rl.GetShaderLocation(shader, render.UniformModelView),
		projectionLoc: rl.GetShaderLocation(shader, render.UniformProjection),
		scaleLoc:      rl.GetShaderLocation(shader, render.UniformScale),
	}
	if p.modelViewLoc < 0 || p.projectionLoc < 0 || p.scaleLoc < 0 {
		rl.UnloadShader(shader)
		return 0, fmt.Errorf("uniforms ausentes (modelView=%d projection=%d scale=%d)",
			p.modelViewLoc, p.projectionLoc, p.scaleLoc)
	}

	id := render.ProgramID(d.id())
	d.programs[id] = p
	return id, nil
}

func (d *Device) CreateVertexBuffer(data []float32, components int) (render.BufferID, error) {
	if components <= 0 || len(data)%components != 0 {
		return 0, fmt.Errorf("buffer de %d floats não divide em %d componentes", len(data), components)
	}
	id := render.BufferID(d.id())
	d.vbuffers[id] = vertexBuffer{data: append([]float32(nil), data...), components: components}
	return id, nil
}

func (d *Device) CreateIndexBuffer(data []uint16) (render.BufferID, error) {
	if len(data)%3 != 0 {
		return 0, fmt.Errorf("buffer de %d índices não forma triângulos", len(data))
	}
	id := render.BufferID(d.id())
	d.ibuffers[id] = append([]uint16(nil), data...)
	return id, nil
}

func (d *Device) CreateTexture(width, height int, fill color.RGBA) (render.TextureID, error) {
	img := rl.GenImageColor(width, height, fill)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if tex.ID == 0 {
		return 0, errors.New("falha ao criar textura")
	}
	rl.SetTextureFilter(tex, rl.FilterPoint)

	id := render.TextureID(d.id())
	d.textures[id] = tex
	return id, nil
}

func (d *Device) UpdateTexture(id render.TextureID, img *image.RGBA) error {
	tex, ok := d.textures[id]
	if !ok {
		return fmt.Errorf("textura %d desconhecida", id)
	}
	b := img.Bounds()
	if int32(b.Dx()) != tex.Width || int32(b.Dy()) != tex.Height {
		return fmt.Errorf("imagem %dx%d não cabe na textura %dx%d", b.Dx(), b.Dy(), tex.Width, tex.Height)
	}

	pixels := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			pixels = append(pixels, img.RGBAAt(x, y))
		}
	}
	rl.UpdateTexture(tex, pixels)
	return nil
}

func (d *Device) DeleteProgram(id render.ProgramID) {
	p, ok := d.programs[id]
	if !ok {
		return
	}
	rl.UnloadShader(p.shader)
	delete(d.programs, id)
	for k := range d.materials {
		if k.program == id {
			delete(d.materials, k)
		}
	}
}

// DeleteBuffer também descarta as malhas materializadas a partir do buffer.
func (d *Device) DeleteBuffer(id render.BufferID) {
	delete(d.vbuffers, id)
	delete(d.ibuffers, id)
	for k, m := range d.meshes {
		if k.positions == id || k.texcoords == id || k.indices == id {
			rl.UnloadMesh(&m)
			delete(d.meshes, k)
		}
	}
}

func (d *Device) DeleteTexture(id render.TextureID) {
	tex, ok := d.textures[id]
	if !ok {
		return
	}
	rl.UnloadTexture(tex)
	delete(d.textures, id)
	for k := range d.materials {
		if k.texture == id {
			delete(d.materials, k)
		}
	}
}

func (d *Device) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (d *Device) BeginFrame(clear color.RGBA) {
	rl.ClearBackground(clear)
	rl.EnableDepthTest()
	rl.DisableBackfaceCulling()
}

func (d *Device) Draw(call render.DrawCall) {
	prog, ok := d.programs[call.Program]
	if !ok {
		return
	}
	mesh, ok := d.mesh(call)
	if !ok {
		return
	}
	mat := d.material(call.Program, call.Texture)

	rl.SetShaderValueMatrix(prog.shader, prog.modelViewLoc, toRaylib(call.ModelView))
	rl.SetShaderValueMatrix(prog.shader, prog.projectionLoc, toRaylib(call.Projection))
	rl.SetShaderValue(prog.shader, prog.scaleLoc, []float32{call.Scale}, rl.ShaderUniformFloat)

	rl.DrawMesh(mesh, mat, rl.MatrixIdentity())
}

// EndFrame restaura o estado 2D para o HUD.
func (d *Device) EndFrame() {
	rl.DisableDepthTest()
	rl.EnableBackfaceCulling()
}

// mesh materializa (uma vez) a malha de uma chamada.
func (d *Device) mesh(call render.DrawCall) (rl.Mesh, bool) {
	key := meshKey{
		positions: call.Positions,
		texcoords: call.TexCoords,
		indices:   call.Indices,
		first:     call.Range.First,
		count:     call.Range.Count,
	}
	if m, ok := d.meshes[key]; ok {
		return m, true
	}

	pos, ok1 := d.vbuffers[call.Positions]
	uv, ok2 := d.vbuffers[call.TexCoords]
	idx, ok3 := d.ibuffers[call.Indices]
	if !ok1 || !ok2 || !ok3 {
		d.log.Warnf("[Render] Buffers desconhecidos na chamada de desenho: %+v", key)
		return rl.Mesh{}, false
	}
	end := call.Range.First + call.Range.Count
	if call.Range.First < 0 || call.Range.Count <= 0 || end > len(idx) {
		d.log.Warnf("[Render] Fatia de índices inválida: [%d, %d) de %d", call.Range.First, end, len(idx))
		return rl.Mesh{}, false
	}
	slice := idx[call.Range.First:end]

	var mesh rl.Mesh
	mesh.VertexCount = int32(len(pos.data) / pos.components)
	mesh.TriangleCount = int32(len(slice) / 3)
	mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&pos.data[0]), len(pos.data)*4))
	mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&uv.data[0]), len(uv.data)*4))
	mesh.Indices = (*uint16)(copyToC(unsafe.Pointer(&slice[0]), len(slice)*2))

	rl.UploadMesh(&mesh, false)
	freeMeshRAM(&mesh)

	d.meshes[key] = mesh
	return mesh, true
}

func (d *Device) material(program render.ProgramID, texture render.TextureID) rl.Material {
	key := materialKey{program: program, texture: texture}
	if m, ok := d.materials[key]; ok {
		return m
	}
	mat := rl.LoadMaterialDefault()
	mat.Shader = d.programs[program].shader
	if tex, ok := d.textures[texture]; ok {
		rl.SetMaterialTexture(&mat, rl.MapDiffuse, tex)
	}
	d.materials[key] = mat
	return mat
}

// Close libera malhas, texturas e shaders. Chamar antes de fechar a janela.
func (d *Device) Close() {
	for _, m := range d.meshes {
		rl.UnloadMesh(&m)
	}
	for _, t := range d.textures {
		rl.UnloadTexture(t)
	}
	for _, p := range d.programs {
		rl.UnloadShader(p.shader)
	}
	d.meshes = make(map[meshKey]rl.Mesh)
	d.textures = make(map[render.TextureID]rl.Texture2D)
	d.programs = make(map[render.ProgramID]rlProgram)
	d.materials = make(map[materialKey]rl.Material)
}

// toRaylib converte uma matriz mgl32 (coluna-maior) para rl.Matrix.
func toRaylib(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeMeshRAM libera a cópia em C depois do upload para a GPU.
func freeMeshRAM(mesh *rl.Mesh) {
	if mesh.Vertices != nil {
		C.free(unsafe.Pointer(mesh.Vertices))
		mesh.Vertices = nil
	}
	if mesh.Texcoords != nil {
		C.free(unsafe.Pointer(mesh.Texcoords))
		mesh.Texcoords = nil
	}
	if mesh.Indices != nil {
		C.free(unsafe.Pointer(mesh.Indices))
		mesh.Indices = nil
	}
}

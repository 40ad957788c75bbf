package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMatchToken(t *testing.T) {
	tests := []struct {
		pattern string
		query   string
		want    bool
	}{
		{"*", "anything", true},
		{"minecraft:*", "minecraft:bookshelf", true},
		{"*:enchanting_table", "modpack:enchanting_table", true},
		{"minecraft:enchanting_table", "minecraft:bookshelf", false},
		{"minecraft:*", "bookshelf", false},
		{"a:*:c", "a:b:c", true},
		{"a:*:c", "a:b:d", false},
	}

	for _, tt := range tests {
		got := matchToken(tt.pattern, tt.query)
		if got != tt.want {
			t.Errorf("matchToken(%q, %q) = %v, want %v", tt.pattern, tt.query, got, tt.want)
		}
	}
}

func TestSpecificityScore(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"*", 0},
		{"minecraft:*", 1},
		{"*:enchanting_table", 1},
		{"minecraft:enchanting_table", 2},
	}

	for _, tt := range tests {
		got := specificityScore(tt.pattern)
		if got != tt.want {
			t.Errorf("specificityScore(%q) = %d, want %d", tt.pattern, got, tt.want)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	r, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	def := r.Type(DefaultType)
	if def.Name != DefaultTypeName || def.Height != 1 {
		t.Errorf("Type(DefaultType) = %+v, want default with height 1", def)
	}
	if def.Textures.Sides != "bookshelf.png" || def.Textures.Top != "oak_planks.png" {
		t.Errorf("default textures = %+v", def.Textures)
	}

	ench := r.Type(r.Resolve("enchanting_table"))
	if ench.Name != "enchanting_table" || ench.Height != 0.75 {
		t.Errorf("enchanting_table = %+v, want height 0.75", ench)
	}
}

func TestResolve(t *testing.T) {
	r, err := DefaultRegistry()
	if err != nil {
		t.Fatal(err)
	}
	ench := r.Resolve("enchanting_table")

	tests := []struct {
		name string
		want TypeID
	}{
		{"", DefaultType},
		{"default", DefaultType},
		{"enchanting_table", ench},
		{"minecraft:enchanting_table", ench},
		{"modpack:enchanting_table", ench},
		{"minecraft:bookshelf", DefaultType},
		{"diamond_block", DefaultType},
		{"minecraft:stone", DefaultType},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.name); got != tt.want {
			t.Errorf("Resolve(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestTypeOutOfRangeFallsBackToDefault(t *testing.T) {
	r, err := DefaultRegistry()
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Type(TypeID(200)); got.ID != DefaultType {
		t.Errorf("Type(200).ID = %d, want %d", got.ID, DefaultType)
	}
}

func TestNewRegistryPutsDefaultFirst(t *testing.T) {
	r, err := NewRegistry([]TypeEntry{
		{Name: "slab", Height: 0.5, Textures: TextureSet{"a.png", "a.png", "b.png"}},
		{Name: "default", Height: 1, Textures: TextureSet{"c.png", "c.png", "c.png"}},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	if r.Type(0).Name != "default" {
		t.Errorf("Type(0).Name = %q, want default", r.Type(0).Name)
	}
	if got := r.Resolve("slab"); got != 1 {
		t.Errorf("Resolve(slab) = %d, want 1", got)
	}
}

func TestNewRegistryErrors(t *testing.T) {
	tex := TextureSet{"a.png", "a.png", "a.png"}
	tests := []struct {
		name    string
		entries []TypeEntry
	}{
		{"missing default", []TypeEntry{{Name: "slab", Height: 0.5, Textures: tex}}},
		{"duplicate", []TypeEntry{{Name: "default", Height: 1, Textures: tex}, {Name: "default", Height: 1, Textures: tex}}},
		{"zero height", []TypeEntry{{Name: "default", Height: 0, Textures: tex}}},
		{"tall", []TypeEntry{{Name: "default", Height: 1.5, Textures: tex}}},
		{"no texture", []TypeEntry{{Name: "default", Height: 1}}},
	}

	for _, tt := range tests {
		_, err := NewRegistry(tt.entries)
		if !errors.Is(err, ErrInvalidRegistry) {
			t.Errorf("%s: error = %v, want ErrInvalidRegistry", tt.name, err)
		}
	}
}

func TestParseRegistryRejectsSchemaViolations(t *testing.T) {
	docs := map[string]string{
		"no list": "foo: 1\n",
		"height": `block_types:
  - name: default
    height: 2
    textures: {top: a.png, bottom: a.png, sides: a.png}
`,
		"missing sides": `block_types:
  - name: default
    height: 1
    textures: {top: a.png, bottom: a.png}
`,
		"bad name": `block_types:
  - name: "Default Block"
    height: 1
    textures: {top: a.png, bottom: a.png, sides: a.png}
`,
	}

	for name, doc := range docs {
		if _, err := ParseRegistry([]byte(doc)); !errors.Is(err, ErrInvalidRegistry) {
			t.Errorf("%s: error = %v, want ErrInvalidRegistry", name, err)
		}
	}
}

func TestLoadRegistryFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "block_types.yaml")
	doc := `block_types:
  - name: default
    height: 1
    textures: {top: grass_top.png, bottom: dirt.png, sides: grass_side.png}
  - name: slab
    height: 0.5
    tokens: ["*:stone_slab"]
    textures: {top: stone.png, bottom: stone.png, sides: stone.png}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	if got := r.Type(r.Resolve("minecraft:stone_slab")).Name; got != "slab" {
		t.Errorf("Resolve(minecraft:stone_slab) = %q, want slab", got)
	}

	want := []string{"grass_top.png", "dirt.png", "grass_side.png", "stone.png"}
	refs := r.TextureRefs()
	if len(refs) != len(want) {
		t.Fatalf("TextureRefs() = %v, want %v", refs, want)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("TextureRefs()[%d] = %q, want %q", i, refs[i], want[i])
		}
	}
}

func TestLoadRegistryMissingFile(t *testing.T) {
	if _, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadRegistry() error = nil, want error")
	}
}

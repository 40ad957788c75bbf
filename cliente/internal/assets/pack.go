package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TextureModel é o esquema de uma textura dentro do pacote SQLite.
type TextureModel struct {
	Name      string `gorm:"primaryKey"` // Referência usada no block_types.yaml
	Data      []byte // Bytes do arquivo original comprimidos com zstd
	Size      int    // Tamanho descomprimido
	UpdatedAt time.Time
}

// PackMetadata guarda informações globais do pacote.
type PackMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const PackFormatVersion = 1

// Pack é um pacote de texturas num arquivo SQLite. Implementa Source.
type Pack struct {
	db *gorm.DB

	mu  sync.Mutex
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// OpenPack abre (ou cria) o pacote de texturas e roda as migrações.
func OpenPack(path string) (*Pack, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&TextureModel{}, &PackMetadata{}); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("falha na migração do pacote: %w", err)
	}
	meta := PackMetadata{Key: "FormatVersion", Value: fmt.Sprint(PackFormatVersion)}
	if err := db.Save(&meta).Error; err != nil {
		closeDB(db)
		return nil, fmt.Errorf("falha ao gravar versão do pacote: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("falha ao criar encoder zstd: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		closeDB(db)
		return nil, fmt.Errorf("falha ao criar decoder zstd: %w", err)
	}

	return &Pack{db: db, enc: enc, dec: dec}, nil
}

// Put grava (ou substitui) uma textura no pacote.
func (p *Pack) Put(name string, data []byte) error {
	if name == "" {
		return errors.New("nome de textura vazio")
	}

	p.mu.Lock()
	compressed := p.enc.EncodeAll(data, nil)
	p.mu.Unlock()

	model := TextureModel{Name: name, Data: compressed, Size: len(data)}
	if err := p.db.Save(&model).Error; err != nil {
		return fmt.Errorf("falha ao salvar textura %s: %w", name, err)
	}
	return nil
}

// Get retorna os bytes descomprimidos de uma textura.
func (p *Pack) Get(name string) ([]byte, error) {
	var model TextureModel
	err := p.db.First(&model, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTextureNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler textura %s: %w", name, err)
	}

	data, err := p.dec.DecodeAll(model.Data, make([]byte, 0, model.Size))
	if err != nil {
		return nil, fmt.Errorf("textura %s corrompida: %w", name, err)
	}
	return data, nil
}

// Open implementa Source.
func (p *Pack) Open(ref string) (io.ReadCloser, error) {
	data, err := p.Get(ref)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Names lista as texturas do pacote em ordem alfabética.
func (p *Pack) Names() ([]string, error) {
	var names []string
	if err := p.db.Model(&TextureModel{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("falha ao listar texturas: %w", err)
	}
	return names, nil
}

// textureExts são as extensões aceitas por ImportDir.
var textureExts = map[string]bool{".png": true, ".bmp": true, ".webp": true}

// ImportDir grava no pacote todas as texturas de dir (sem subdiretórios).
// Retorna os nomes importados em ordem alfabética.
func (p *Pack) ImportDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !textureExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return names, fmt.Errorf("falha ao ler %s: %w", e.Name(), err)
		}
		if err := p.Put(e.Name(), data); err != nil {
			return names, err
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Close fecha o banco e libera os codecs.
func (p *Pack) Close() error {
	p.enc.Close()
	p.dec.Close()
	return closeDB(p.db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// FileName é o nome padrão do arquivo de configuração.
const FileName = "config.toml"

// Config armazena as configurações do IsoEngine.
type Config struct {
	// Janela
	WindowWidth  int32  `toml:"window_width"`
	WindowHeight int32  `toml:"window_height"`
	WindowTitle  string `toml:"window_title"`
	Fullscreen   bool   `toml:"fullscreen"`
	TargetFPS    int32  `toml:"target_fps"`

	// Assets
	BlockTypesPath string `toml:"block_types_path"` // YAML com os tipos de bloco (vazio = tipos embutidos)
	TextureDir     string `toml:"texture_dir"`
	TexturePack    string `toml:"texture_pack"` // Pacote SQLite gerado pelo builder (tem prioridade sobre TextureDir)
	TextureSize    int    `toml:"texture_size"` // Lado do placeholder em pixels

	// Animação e cena
	AnimationMillis int     `toml:"animation_millis"`
	CellSize        float32 `toml:"cell_size"`  // Distância entre blocos vizinhos
	BlockSize       float32 `toml:"block_size"` // Meia aresta do cubo
	MaxBlocks       int     `toml:"max_blocks"`

	// Log
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// Debug
	ShowDebugInfo bool `toml:"show_debug_info"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "IsoEngine",
		Fullscreen:   false,
		TargetFPS:    60,

		BlockTypesPath: "assets/config/block_types.yaml",
		TextureDir:     "assets/textures",
		TexturePack:    "",
		TextureSize:    16,

		AnimationMillis: 250,
		CellSize:        32,
		BlockSize:       16,
		MaxBlocks:       15,

		LogLevel: "info",
		LogFile:  "debug_iso.log",

		ShowDebugInfo: true,
	}
}

// Path retorna o caminho do arquivo de configuração ao lado do executável.
func Path() string {
	execPath, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(execPath), FileName)
}

// Load carrega as configurações de um arquivo TOML.
// Se o arquivo não existir, ele é criado com as configurações padrão.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := cfg.Save(path); err != nil {
			return cfg, fmt.Errorf("falha ao criar config padrão: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("falha ao ler config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("falha ao decodificar config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save salva as configurações em um arquivo TOML.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(*c)
	if err != nil {
		return fmt.Errorf("falha ao codificar config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// normalize corrige valores que deixariam a cena inutilizável.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.AnimationMillis <= 0 {
		c.AnimationMillis = def.AnimationMillis
	}
	if c.CellSize <= 0 {
		c.CellSize = def.CellSize
	}
	if c.BlockSize <= 0 {
		c.BlockSize = def.BlockSize
	}
	if c.TextureSize <= 0 {
		c.TextureSize = def.TextureSize
	}
	if c.MaxBlocks < 0 {
		c.MaxBlocks = 0
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
}

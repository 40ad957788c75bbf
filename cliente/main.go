package main

import (
	"flag"
	"io"
	"os"
	"runtime"

	"IsoEngine/cliente/internal/app"
	"IsoEngine/shared/config"

	"github.com/sirupsen/logrus"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", config.Path(), "Arquivo de configuração TOML")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	blocks := flag.Int("blocks", -1, "Quantidade máxima de blocos da demonstração")
	textures := flag.String("textures", "", "Diretório de texturas")
	pack := flag.String("pack", "", "Pacote de texturas SQLite (gerado pelo builder)")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	// Carregar configurações
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warnf("[IsoEngine] Usando configuração padrão: %v", err)
	}

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
		cfg.LogLevel = "debug"
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *blocks >= 0 {
		cfg.MaxBlocks = *blocks
	}
	if *textures != "" {
		cfg.TextureDir = *textures
	}
	if *pack != "" {
		cfg.TexturePack = *pack
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.Level = level
	} else {
		log.Warnf("[IsoEngine] Nível de log inválido %q, usando info", cfg.LogLevel)
	}

	// Configurar Log em Arquivo (além do terminal)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			defer f.Close()
			log.Out = io.MultiWriter(os.Stderr, f)
		}
	}
	log.Info("--- INICIANDO ISOENGINE ---")

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatalf("[IsoEngine] %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatalf("[IsoEngine] Erro fatal: %v", err)
	}
}

package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"IsoEngine/cliente/internal/assets"
	"IsoEngine/cliente/internal/frame"
	"IsoEngine/cliente/internal/render"
	"IsoEngine/cliente/internal/render/rlbackend"
	"IsoEngine/cliente/internal/scene"
	"IsoEngine/shared/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// App é a aplicação de demonstração do IsoEngine.
type App struct {
	Config *config.Config
	log    logrus.FieldLogger

	registry *assets.Registry
	source   assets.Source
	pack     *assets.Pack

	device    *rlbackend.Device
	resources *render.Resources
	renderer  *render.Renderer

	sched    *frame.Queue
	animator *scene.Animator
	state    *scene.State

	// Quantidade de blocos da demonstração (controle deslizante)
	count int

	// Precisa redesenhar mesmo sem animação (resize, textura nova, HUD)
	dirty bool

	frameCount int
}

// New cria a aplicação e carrega os tipos de bloco e a fonte de texturas.
func New(cfg *config.Config, log logrus.FieldLogger) (*App, error) {
	a := &App{
		Config: cfg,
		log:    log,
		sched:  frame.NewQueue(),
		state:  scene.NewState(),
		count:  scene.DemoCount(cfg.MaxBlocks, cfg.MaxBlocks),
	}

	reg, err := assets.LoadRegistry(cfg.BlockTypesPath)
	if errors.Is(err, os.ErrNotExist) {
		log.Warnf("[App] %s não encontrado, usando tipos de bloco embutidos", cfg.BlockTypesPath)
		reg, err = assets.DefaultRegistry()
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar tipos de bloco: %w", err)
	}
	a.registry = reg
	log.Infof("[App] %d tipos de bloco carregados", reg.Len())

	a.source = assets.DirSource{Root: cfg.TextureDir}
	if cfg.TexturePack != "" {
		pack, err := assets.OpenPack(cfg.TexturePack)
		if err != nil {
			return nil, fmt.Errorf("falha ao abrir pacote de texturas: %w", err)
		}
		a.pack = pack
		a.source = assets.FirstOf{pack, a.source}
		log.Infof("[App] Pacote de texturas aberto: %s", cfg.TexturePack)
	}

	return a, nil
}

// Run abre a janela e roda o loop principal até a janela fechar.
// Retorna um erro que envolve render.ErrRendererUnavailable se não houver contexto gráfico.
func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	defer rl.CloseWindow()
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)

	a.log.Infof("[App] Janela inicializada: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.device = rlbackend.New(a.log)
	mgr := render.NewResourceManager(a.registry, a.source, render.Options{
		CellSize:    a.Config.CellSize,
		BlockSize:   a.Config.BlockSize,
		TextureSize: a.Config.TextureSize,
	}, a.log)

	res, err := mgr.Acquire(a.device)
	if err != nil {
		return err
	}
	a.resources = res
	a.renderer = render.NewRenderer(res)

	opts := scene.DefaultOptions()
	opts.Duration = time.Duration(a.Config.AnimationMillis) * time.Millisecond
	a.animator = scene.NewAnimator(a.registry, a.sched, frame.SystemClock{}, a.renderer, opts, a.log)

	a.applyLayout()
	a.dirty = true

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	return nil
}

// update processa input e eventos que pedem redesenho.
func (a *App) update() {
	a.updateInput()

	if a.resources.PollTextures() > 0 {
		a.dirty = true
	}
	if rl.IsWindowResized() {
		a.dirty = true
	}
}

// shutdown libera os recursos da GPU e fecha o pacote de texturas.
func (a *App) shutdown() {
	a.log.Info("[App] Finalizando aplicação...")

	a.device.Close()
	if a.pack != nil {
		if err := a.pack.Close(); err != nil {
			a.log.Warnf("[App] Erro ao fechar pacote de texturas: %v", err)
		}
	}
}

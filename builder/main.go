package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"time"

	"IsoEngine/cliente/internal/assets"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

func main() {
	dir := flag.String("dir", "assets/textures", "Diretório com as texturas")
	out := flag.String("out", "assets/textures.pack", "Arquivo do pacote SQLite")
	typesPath := flag.String("types", "", "block_types.yaml para conferir referências (vazio = tipos embutidos)")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║     IsoEngine Texture Pack Builder   ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	// 1. Carregar tipos de bloco
	fmt.Println(ColorYellow + "\n[1/3] Carregando tipos de bloco..." + ColorReset)
	reg, err := assets.LoadRegistry(*typesPath)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("  - %d tipos, %d texturas referenciadas\n", reg.Len(), len(reg.TextureRefs()))

	// 2. Importar texturas
	fmt.Printf(ColorYellow+"\n[2/3] Importando %s -> %s..."+ColorReset+"\n", *dir, *out)
	pack, err := assets.OpenPack(*out)
	if err != nil {
		fatal(err)
	}
	defer pack.Close()

	names, err := pack.ImportDir(*dir)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("  - %d arquivos importados\n", len(names))

	// 3. Conferir referências
	fmt.Println(ColorYellow + "\n[3/3] Conferindo referências..." + ColorReset)
	problems := verify(pack, reg.TextureRefs())

	fmt.Printf("\n"+ColorCyan+"Pacote gerado em %v"+ColorReset+"\n", time.Since(start).Round(time.Millisecond))
	if problems > 0 {
		fmt.Printf(ColorYellow+"%d textura(s) com problema: os blocos usarão o placeholder."+ColorReset+"\n", problems)
	}
}

// verify decodifica cada referência do pacote e retorna quantas falharam.
func verify(pack *assets.Pack, refs []string) int {
	problems := 0
	for _, ref := range refs {
		data, err := pack.Get(ref)
		if err != nil {
			fmt.Printf(ColorRed+"  - %s: %v"+ColorReset+"\n", ref, err)
			problems++
			continue
		}
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			fmt.Printf(ColorRed+"  - %s: imagem inválida: %v"+ColorReset+"\n", ref, err)
			problems++
			continue
		}
		fmt.Printf(ColorGreen+"  - %s: %s %dx%d"+ColorReset+"\n", ref, format, cfg.Width, cfg.Height)
	}
	return problems
}

func fatal(err error) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	os.Exit(1)
}

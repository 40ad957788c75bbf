package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrTextureNotFound indica que a fonte não tem a textura pedida.
var ErrTextureNotFound = errors.New("textura não encontrada")

// Source entrega os bytes codificados de uma textura pelo nome de referência.
// Open pode ser chamado de várias goroutines ao mesmo tempo.
type Source interface {
	Open(ref string) (io.ReadCloser, error)
}

// DirSource lê texturas de um diretório do sistema de arquivos.
type DirSource struct {
	Root string
}

// Open abre Root/ref. Referências que escapam do diretório são rejeitadas.
func (d DirSource) Open(ref string) (io.ReadCloser, error) {
	clean := filepath.Clean(filepath.FromSlash(ref))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("referência de textura inválida %q", ref)
	}

	f, err := os.Open(filepath.Join(d.Root, clean))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTextureNotFound, ref)
		}
		return nil, fmt.Errorf("falha ao abrir textura %s: %w", ref, err)
	}
	return f, nil
}

// FirstOf tenta cada fonte em ordem e usa a primeira que tiver a textura.
type FirstOf []Source

func (s FirstOf) Open(ref string) (io.ReadCloser, error) {
	for _, src := range s {
		rc, err := src.Open(ref)
		if err == nil {
			return rc, nil
		}
		if !errors.Is(err, ErrTextureNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTextureNotFound, ref)
}

// Package storage implementa el almacenamiento de imágenes en disco local.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/tu-usuario/catalogo-api/internal/application/catalog"
)

var _ catalog.BlobStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos bajo un directorio base y los expone con un
// prefijo de URL público.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage construye el almacenamiento y asegura el directorio base.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de storage: %w", err)
	}
	return &LocalStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save escribe el archivo con un nombre único y devuelve su URI pública.
func (s *LocalStorage) Save(filename string, data []byte) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitize(filename))
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete elimina el archivo referenciado por la URI. Una URI que ya no
// existe no es un error: el borrado es best-effort e idempotente.
func (s *LocalStorage) Delete(uri string) error {
	name := path.Base(uri)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar archivo: %w", err)
	}
	return nil
}

// sanitize deja solo caracteres seguros para nombre de archivo.
func sanitize(name string) string {
	name = path.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

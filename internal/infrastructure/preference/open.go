package preference

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/tint/internal/ports"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendNone   = "none"
)

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{BackendMemory, BackendFile, BackendSQLite, BackendNone}
}

// Open returns the store for backend. BackendNone returns a nil store, which
// disables persistence. The returned closer is never nil.
func Open(backend, path string) (ports.PreferenceStore, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendNone:
		return nil, nopCloser{}, nil
	case BackendMemory, "":
		return NewMemoryStore(), nopCloser{}, nil
	case BackendFile:
		store, err := NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, nopCloser{}, nil
	case BackendSQLite, "sqlite3":
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unsupported preference backend: %s (supported: %s)", backend, strings.Join(Backends(), ", "))
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

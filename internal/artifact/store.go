package artifact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9-_.]`)

// Store writes diagnostic artifacts (fetched bytes, raw model replies, JSON
// candidates) under a single directory so operators can inspect failed runs
// without server-side log access. Construction is explicit; there is no
// import-time directory side effect.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		dir = "./tmp"
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the artifact directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes data under a unique, non-colliding name derived from key.
// Concurrent runs against the same document never overwrite each other.
func (s *Store) Save(key string, data []byte) (string, error) {
	name := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String(), SanitizeKey(key))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Error("artifact.save_failed", "key", key, "error", err)
		return "", fmt.Errorf("write artifact: %w", err)
	}
	s.logger.Info("artifact.saved", "path", path, "bytes", len(data))
	return path, nil
}

// SanitizeKey makes an arbitrary file name safe to embed in an artifact name:
// only word characters, dashes, dots; capped so hostile names stay short.
func SanitizeKey(name string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base = "artifact"
	}
	base = unsafeChars.ReplaceAllString(base, "_")
	if len(base) > 50 {
		base = base[:50]
	}
	return base
}

// Package docstore manages the per-request temporary files backing uploaded
// financial documents. Each stored document gets a fresh UUID-derived name, so
// concurrent requests never collide in the working directory.
package docstore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"findoc-analyzer/internal/common"
)

// Document is the handle for one stored upload. It is owned by a single
// request and must be passed to Release when the request finishes.
type Document struct {
	ID           uuid.UUID
	OriginalName string
	Path         string
	SizeBytes    int64
}

// Store persists uploads under a working directory.
type Store struct {
	dir string
	log *slog.Logger
}

// NewStore creates the working directory if it does not exist yet.
func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory %q: %v", common.ErrStorage, dir, err)
	}
	return &Store{dir: dir, log: log}, nil
}

// HasPDFExt reports whether the file name ends in ".pdf", case-insensitively.
func HasPDFExt(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// Save writes the uploaded bytes verbatim to a uniquely named file.
// Non-PDF file names are rejected before anything touches the disk.
func (s *Store) Save(data []byte, originalName string) (Document, error) {
	if !HasPDFExt(originalName) {
		return Document{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFileType, originalName)
	}

	id := uuid.New()
	path := filepath.Join(s.dir, fmt.Sprintf("financial_document_%s.pdf", id))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Document{}, fmt.Errorf("%w: writing %q: %v", common.ErrStorage, path, err)
	}

	s.log.Info("docstore.save.ok",
		"doc_id", id,
		"original_name", originalName,
		"path", path,
		"size_bytes", len(data),
	)

	return Document{
		ID:           id,
		OriginalName: originalName,
		Path:         path,
		SizeBytes:    int64(len(data)),
	}, nil
}

// Release removes the stored file. It is best-effort: a missing file or an
// OS-level delete error is logged and swallowed, because cleanup must never
// mask the primary result of the request.
func (s *Store) Release(doc Document) {
	if doc.Path == "" {
		return
	}
	if err := os.Remove(doc.Path); err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("docstore.release.failed", "doc_id", doc.ID, "path", doc.Path, "error", err)
		}
		return
	}
	s.log.Info("docstore.release.ok", "doc_id", doc.ID, "path", doc.Path)
}

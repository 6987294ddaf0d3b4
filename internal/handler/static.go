package handler

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// IndexFile is the static client's entry document.
const IndexFile = "index.html"

// StaticHandler serves the static client from a filesystem.
// Paths that do not name a file get the entry document.
type StaticHandler struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewStaticHandler creates a StaticHandler over fsys.
func NewStaticHandler(fsys fs.FS, logger *slog.Logger) *StaticHandler {
	return &StaticHandler{
		fsys:   fsys,
		logger: logger,
	}
}

// ServeHTTP serves the named asset, or the entry document when there is none.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		name = IndexFile
	}

	if h.serveFile(w, r, name) {
		return
	}

	if !h.serveFile(w, r, IndexFile) {
		h.logger.Error("static_index_missing", "file", IndexFile)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// serveFile writes name if it exists as a regular file.
func (h *StaticHandler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := h.fsys.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("static_open_failed", "file", name, "error", err)
		}
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			h.logger.Warn("static_read_failed", "file", name, "error", err)
			return false
		}
		content = bytes.NewReader(data)
	}

	// Embedded files have a zero ModTime; ServeContent then omits Last-Modified.
	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
	return true
}

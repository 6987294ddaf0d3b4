// Package web holds the static client served at the site root.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed static
var static embed.FS

// Assets returns the client filesystem: dir when set, the embedded copy otherwise.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to open static dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("static dir %s is not a directory", dir)
		}
		return os.DirFS(dir), nil
	}

	sub, err := fs.Sub(static, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded assets: %w", err)
	}
	return sub, nil
}

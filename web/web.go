package web

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Client returns the embedded single-page client, rooted at the static dir.
func Client() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("sub static fs: %w", err)
	}
	return sub, nil
}

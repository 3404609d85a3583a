package archive

import (
	"archive/zip"
	"bytes"
	"fmt"

	"portfolio_ai_server/internal/types"
)

// Pack writes the bundle into an in-memory zip with exactly three entries
// under the canonical filenames, contents verbatim. No directories, no
// extra metadata, default deflate compression.
func Pack(bundle types.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		body string
	}{
		{types.HTMLFilename, bundle.HTML},
		{types.CSSFilename, bundle.CSS},
		{types.JSFilename, bundle.JS},
	}

	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("creating zip entry %s: %w", entry.name, err)
		}
		if _, err := w.Write([]byte(entry.body)); err != nil {
			return nil, fmt.Errorf("writing zip entry %s: %w", entry.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing zip: %w", err)
	}
	return buf.Bytes(), nil
}

package words

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avolkov/gallows/internal/config"
)

//go:embed starter/*.csv
var starterFS embed.FS

// WriteStarterLists writes the embedded starter word lists into the
// data directory so a fresh install has a playable pool. Existing
// files are left untouched. Returns the names of the files written.
func WriteStarterLists(dataDir string, cfg config.Config) ([]string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("words: cannot create data dir %s: %w", dataDir, err)
	}

	var written []string
	for _, d := range config.Difficulties() {
		name := fmt.Sprintf("%s_words%s", d, cfg.Files.ListExtension)
		dst := filepath.Join(dataDir, name)
		if _, err := os.Stat(dst); err == nil {
			continue // never clobber a user's list
		}

		// Lists are plain one-word-per-row text, so a non-.csv
		// configured extension gets the same bytes.
		data, err := starterFS.ReadFile(fmt.Sprintf("starter/%s_words.csv", d))
		if err != nil {
			return written, fmt.Errorf("words: missing starter list for %s: %w", d, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return written, fmt.Errorf("words: cannot write %s: %w", dst, err)
		}
		written = append(written, name)
	}
	return written, nil
}

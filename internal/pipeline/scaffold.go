package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/ytbatch/internal/logging"
)

const defaultListName = DefaultStem + ".urls"

const defaultListHeader = "# Add your URLs here, one per line. This is the default file, videos will be downloaded to the base directory.\n"

// EnsureLayout creates the list-file directory and a commented default.urls
// on first run. It reports created=true when it scaffolded anything, in
// which case the caller should explain the layout and exit instead of
// processing an empty run.
func EnsureLayout(urlDir string, log *logging.Logger) (created bool, err error) {
	defaultFile := filepath.Join(urlDir, defaultListName)

	if _, err := os.Stat(urlDir); os.IsNotExist(err) {
		if err := os.MkdirAll(urlDir, 0o755); err != nil {
			return false, err
		}
		log.Info("Created directory: %s. Create your own .urls files here; the file name becomes the output subdirectory.", urlDir)
		if err := os.WriteFile(defaultFile, []byte(defaultListHeader), 0o644); err != nil {
			return false, err
		}
		log.Info("Created file: %s. Add URLs to it for downloads into the base directory.", defaultFile)
		return true, nil
	}

	if _, err := os.Stat(defaultFile); os.IsNotExist(err) {
		if err := os.WriteFile(defaultFile, []byte(defaultListHeader), 0o644); err != nil {
			return false, err
		}
		log.Info("Created file: %s. Add URLs to it for downloads into the base directory.", defaultFile)
		return true, nil
	}

	return false, nil
}

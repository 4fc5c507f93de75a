package pipeline

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultStem is the list-file stem that maps to the base output directory
// instead of a subdirectory of its own name.
const DefaultStem = "default"

// ListFile is one input list file. Stem is the file name minus extension
// and names the per-category output subdirectory.
type ListFile struct {
	Path string
	Stem string
}

// Discover lists the regular files in urlDir, sorted lexicographically for
// deterministic processing order. Every regular file is a list file; the
// extension is not significant.
func Discover(urlDir string) ([]ListFile, error) {
	entries, err := os.ReadDir(urlDir)
	if err != nil {
		return nil, err
	}

	var files []ListFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		files = append(files, ListFile{
			Path: filepath.Join(urlDir, name),
			Stem: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// OutputDir resolves the output directory for a list file: the base
// directory itself for the "default" stem, a subdirectory otherwise.
// The mapping is fixed for the whole run.
func (f ListFile) OutputDir(baseDir string) string {
	if f.Stem == DefaultStem {
		return baseDir
	}
	return filepath.Join(baseDir, f.Stem)
}

// ReadURLs returns the URLs in a list file: every line that is neither
// blank nor a # comment, whitespace-trimmed, in file order.
func ReadURLs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}

package xmltv

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Catalog filename conventions, oldest first:
//
//	xmltv-<id>.xml, xmltv-<id>-channels.xml
//	<label>-channels-<id>.xml
//	<label>_channels_<id>.xml
var (
	rePlain   = regexp.MustCompile(`(?i)^xmltv-(\d+)(?:-channels)?\.xml$`)
	reLabeled = regexp.MustCompile(`(?i)^(.+)[-_]channels[-_](\d+)\.xml$`)
)

// File is one catalog file discovered in an input directory.
type File struct {
	Path     string
	Name     string
	LineupID string
	Label    string
}

// MatchFileName reports whether name follows a known catalog naming
// convention, returning the embedded lineup identifier and optional label.
func MatchFileName(name string) (id, label string, ok bool) {
	if m := rePlain.FindStringSubmatch(name); m != nil {
		return m[1], "", true
	}
	if m := reLabeled.FindStringSubmatch(name); m != nil {
		return m[2], m[1], true
	}
	return "", "", false
}

// ScanDir lists the catalog files in dir whose names follow a known
// convention, sorted by filename for a stable default ordering.
func ScanDir(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("xmltv: read directory %s: %w", dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, label, ok := MatchFileName(entry.Name())
		if !ok {
			continue
		}
		files = append(files, File{
			Path:     filepath.Join(dir, entry.Name()),
			Name:     entry.Name(),
			LineupID: id,
			Label:    label,
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

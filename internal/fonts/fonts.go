package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions treated as font files.
var Exts = []string{".ttf", ".otf"}

// ErrNotFound is returned when no font file matches.
var ErrNotFound = errors.New("fonts: not found")

// BaseDirs returns candidate font directories for an assets dir, so the binary finds its
// fonts whether run from the repo root or from cmd/showcase.
func BaseDirs(assetsDir string) []string {
	return []string{
		filepath.Join(assetsDir, "fonts"),
		filepath.Join("..", "..", assetsDir, "fonts"),
	}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Poppins/Poppins-Black.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// SearchCandidates returns search terms to try in order, most specific first.
// "fonts/Poppins-Black.ttf" -> ["Poppins-Black", "Poppins"].
func SearchCandidates(pathOrName string) []string {
	base := filepath.Base(filepath.ToSlash(strings.TrimSpace(pathOrName)))
	for _, ext := range Exts {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	var out []string
	if base != "" && base != "." {
		out = append(out, base)
	}
	if i := strings.Index(base, "-"); i > 0 {
		out = append(out, base[:i])
	}
	return out
}

// FindFont searches dirs for a font file whose path contains search (fuzzy).
// When several match, a "black" weight wins, then "regular", then the first found.
func FindFont(search string, dirs []string) (string, error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", ErrNotFound
	}
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, search)
	}
	for _, weight := range []string{"black", "regular"} {
		for _, m := range matches {
			if strings.Contains(strings.ToLower(filepath.Base(m)), weight) {
				return m, nil
			}
		}
	}
	return matches[0], nil
}

// Resolve returns a loadable path for rel (relative to assetsDir): the file itself when it
// exists, otherwise the closest match by family name in the font directories.
func Resolve(assetsDir, rel string) (string, error) {
	for _, p := range []string{filepath.Join(assetsDir, rel), filepath.Join("..", "..", assetsDir, rel)} {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	dirs := BaseDirs(assetsDir)
	for _, term := range SearchCandidates(rel) {
		if p, err := FindFont(term, dirs); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, rel)
}

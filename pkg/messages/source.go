package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// Source loads catalogs keyed by language.
type Source interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapSource serves catalogs from memory.
type MapSource map[string]map[string]any

// Load returns a shallow copy of the map.
func (s MapSource) Load(_ context.Context) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(s))
	maps.Copy(out, s)
	return out, nil
}

// FileSource loads a single catalog file; the parser is chosen by extension.
type FileSource string

// Load parses the file with the parser matching its extension.
func (s FileSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	name := string(s)
	parser := ParserFor(name)
	if parser == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return parser.Parse(ctx, content)
}

// FSSource loads every catalog file in Dir of FS, merging languages across
// files. Files with unknown extensions are skipped; later files override
// earlier keys in lexical file order. Nested maps are merged key by key.
type FSSource struct {
	FS  fs.FS
	Dir string
}

// DirSource loads every catalog file in a directory of the OS filesystem.
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir), Dir: "."}
}

// Load parses every supported file in Dir and merges them by language.
func (s FSSource) Load(ctx context.Context) (map[string]map[string]any, error) {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := ParserFor(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(filepath.ToSlash(dir), entry.Name())
		content, err := fs.ReadFile(s.FS, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalogs, err := parser.Parse(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		for lang, msgs := range catalogs {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			merge(all[lang], msgs)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, dir)
	}
	return all, nil
}

// merge copies src into dst, descending into nested maps present in both.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sm, srcIsMap := v.(map[string]any)
		dm, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dm, sm)
			continue
		}
		dst[k] = v
	}
}

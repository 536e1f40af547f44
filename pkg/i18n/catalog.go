package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalogs maps a language code to its nested message tree.
type Catalogs map[string]map[string]any

// ParseYAML reads a catalog whose top-level keys are language codes:
//
//	en:
//	  contact:
//	    toast:
//	      delivered: "Thank you!"
func ParseYAML(content []byte) (Catalogs, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}

	result := make(Catalogs, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		result[strings.ToLower(lang)] = tree
	}
	return result, nil
}

// LoadFS parses every .yaml and .yml file under fsys and merges them.
// Later files override keys of earlier ones at the top level of each language.
func LoadFS(ctx context.Context, fsys fs.FS) (Catalogs, error) {
	result := make(Catalogs)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return errors.Join(ErrFailedToReadCatalog, err)
		}
		catalogs, err := ParseYAML(content)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		for lang, tree := range catalogs {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(tree))
			}
			maps.Copy(result[lang], tree)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

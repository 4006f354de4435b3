package cldr

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source supplies raw locale documents and auxiliary static documents,
// independent of storage medium. Implementations return fs.ErrNotExist
// (wrapped) when a document is absent.
type Source interface {
	// LoadLocale returns the raw tree for one locale document.
	LoadLocale(name string) (map[string]any, error)
	// LoadDocument returns the raw tree for a named auxiliary document.
	LoadDocument(name string) (map[string]any, error)
	// AvailableLocales returns every locale name the source can serve.
	AvailableLocales() ([]string, error)
}

// FileSource reads documents from a directory tree: locale documents under
// <dir>/locales/<name>.json|.yaml|.yml and auxiliary documents directly under
// <dir>. The available-locale list comes from the available_locales document
// when present, otherwise from the locales directory listing.
type FileSource struct {
	dir string
}

var _ Source = (*FileSource)(nil)

var sourceExtensions = []string{".json", ".yaml", ".yml"}

// NewFileSource builds a Source rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) LoadLocale(name string) (map[string]any, error) {
	return s.read(filepath.Join(s.dir, "locales", name))
}

func (s *FileSource) LoadDocument(name string) (map[string]any, error) {
	return s.read(filepath.Join(s.dir, name))
}

func (s *FileSource) AvailableLocales() ([]string, error) {
	doc, err := s.LoadDocument("available_locales")
	if err == nil {
		return availableLocalesFromDocument(doc)
	}
	if !isNotExist(err) {
		return nil, err
	}

	entries, err := os.ReadDir(filepath.Join(s.dir, "locales"))
	if err != nil {
		return nil, fmt.Errorf("cldr: list locales: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		base := entry.Name()
		ext := strings.ToLower(filepath.Ext(base))
		if !isSupportedExtension(ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(base, filepath.Ext(base)))
	}
	sort.Strings(names)
	return names, nil
}

func (s *FileSource) read(stem string) (map[string]any, error) {
	var lastErr error
	for _, ext := range sourceExtensions {
		path := stem + ext
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("cldr: read %s: %w", path, err)
		}
		doc, err := decodeDocument(path, data)
		if err != nil {
			return nil, fmt.Errorf("cldr: decode %s: %w", path, err)
		}
		return doc, nil
	}
	if lastErr == nil {
		lastErr = fs.ErrNotExist
	}
	return nil, fmt.Errorf("cldr: open %s: %w", stem, lastErr)
}

func decodeDocument(path string, data []byte) (map[string]any, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func isSupportedExtension(ext string) bool {
	for _, candidate := range sourceExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func availableLocalesFromDocument(doc map[string]any) ([]string, error) {
	raw, ok := doc["available"]
	if !ok {
		return nil, fmt.Errorf("cldr: available_locales document has no %q key", "available")
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("cldr: available_locales %q must be a list, got %T", "available", raw)
	}

	names := make([]string, 0, len(list))
	for _, entry := range list {
		name, ok := entry.(string)
		if !ok {
			return nil, fmt.Errorf("cldr: available_locales entry must be a string, got %T", entry)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// StaticSource serves documents from in-memory maps. It is the test double
// counterpart of FileSource and also serves embedded data sets.
type StaticSource struct {
	Locales   map[string]map[string]any
	Documents map[string]map[string]any
}

var _ Source = (*StaticSource)(nil)

func (s *StaticSource) LoadLocale(name string) (map[string]any, error) {
	if s == nil || s.Locales == nil {
		return nil, fmt.Errorf("cldr: locale %s: %w", name, fs.ErrNotExist)
	}
	doc, ok := s.Locales[name]
	if !ok {
		return nil, fmt.Errorf("cldr: locale %s: %w", name, fs.ErrNotExist)
	}
	return doc, nil
}

func (s *StaticSource) LoadDocument(name string) (map[string]any, error) {
	if s == nil || s.Documents == nil {
		return nil, fmt.Errorf("cldr: document %s: %w", name, fs.ErrNotExist)
	}
	doc, ok := s.Documents[name]
	if !ok {
		return nil, fmt.Errorf("cldr: document %s: %w", name, fs.ErrNotExist)
	}
	return doc, nil
}

func (s *StaticSource) AvailableLocales() ([]string, error) {
	if s == nil {
		return nil, nil
	}
	if doc, ok := s.Documents["available_locales"]; ok {
		return availableLocalesFromDocument(doc)
	}
	names := make([]string, 0, len(s.Locales))
	for name := range s.Locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

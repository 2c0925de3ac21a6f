package fieldschema

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/profileui/ufield/pkg/model"
)

// Store keeps the parsed field definitions. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	fields map[string]model.Field
}

// documentFile is the on-disk shape: fields keyed by id.
type documentFile struct {
	Fields map[string]model.Field `json:"fields" yaml:"fields"`
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{fields: make(map[string]model.Field)}
}

// LoadFS walks the provided filesystem and parses JSON/YAML field definition
// files. When fsys is nil or no definition files are present, the returned
// store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fields: make(map[string]model.Field)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldschema: read %s: %w", path, err)
		}
		return store.merge(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Load parses a single document payload. The origin string only decorates
// error messages.
func Load(data []byte, origin string) (*Store, error) {
	store := &Store{fields: make(map[string]model.Field)}
	if err := store.merge(data, origin); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) merge(data []byte, origin string) error {
	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("fieldschema: parse %s: %w", origin, err)
	}

	ids := make([]string, 0, len(doc.Fields))
	for id := range doc.Fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			return fmt.Errorf("fieldschema: file %s defines an empty field id", origin)
		}
		if _, exists := s.fields[trimmed]; exists {
			return fmt.Errorf("fieldschema: duplicate field %q (file %s)", trimmed, origin)
		}

		field := doc.Fields[id]
		field.ID = trimmed
		if err := field.Validate(); err != nil {
			return fmt.Errorf("fieldschema: file %s: %w", origin, err)
		}
		s.fields[trimmed] = field
	}
	return nil
}

// Field returns the definition for the supplied field id.
func (s *Store) Field(id string) (model.Field, bool) {
	if s == nil {
		return model.Field{}, false
	}
	field, ok := s.fields[strings.TrimSpace(id)]
	return field, ok
}

// IDs returns the sorted identifiers of every loaded field.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.fields))
	for id := range s.fields {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any fields.
func (s *Store) Empty() bool {
	return s == nil || len(s.fields) == 0
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

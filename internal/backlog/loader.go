package backlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/phaseline/internal/errors"
)

// backlogFile is the on-disk layout of a backlog snapshot
type backlogFile struct {
	Items []Item `yaml:"items" json:"items"`
}

// Repository defines the interface for loading and saving backlog snapshots.
// This interface enables dependency injection and makes testing easier.
type Repository interface {
	// Load reads a Snapshot from a file
	Load(path string) (*Snapshot, error)

	// Save writes a Snapshot to a file
	Save(snapshot *Snapshot, path string) error
}

// FileRepository implements Repository for file-based storage.
// The format is chosen by extension: .yaml/.yml or .json.
// JSON files are validated against the embedded schema before decoding.
type FileRepository struct{}

// NewFileRepository creates a new file-based backlog repository
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load reads a Snapshot from a YAML or JSON file
func (r *FileRepository) Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewBacklogNotFoundError(path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileReadFailed, "read backlog file", err)
	}

	var file backlogFile
	switch extension(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.NewFileUnmarshalError(path, "YAML", err)
		}
	case ".json":
		if err := ValidateSchema(data); err != nil {
			return nil, errors.NewBacklogSchemaError(path, err)
		}
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.NewFileUnmarshalError(path, "JSON", err)
		}
	default:
		return nil, errors.NewBacklogFormatError(path)
	}

	return NewSnapshot(file.Items)
}

// Save writes a Snapshot to a YAML or JSON file
func (r *FileRepository) Save(snapshot *Snapshot, path string) error {
	file := backlogFile{Items: snapshot.Items()}

	var data []byte
	var err error
	switch extension(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(file)
	case ".json":
		data, err = json.MarshalIndent(file, "", "  ")
	default:
		return errors.NewBacklogFormatError(path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeBacklogMarshal, "marshal backlog", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, "create directory", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "write backlog file", err)
	}

	return nil
}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// Default instance for package-level functions
var defaultRepository = NewFileRepository()

// Load reads a Snapshot from a file using the default repository
func Load(path string) (*Snapshot, error) {
	return defaultRepository.Load(path)
}

// Save writes a Snapshot to a file using the default repository
func Save(snapshot *Snapshot, path string) error {
	return defaultRepository.Save(snapshot, path)
}

// Compile-time verification that FileRepository implements Repository
var _ Repository = (*FileRepository)(nil)

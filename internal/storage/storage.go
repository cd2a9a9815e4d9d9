// Package storage handles persistence of completed assessments.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/pkg/logger"
	"github.com/eivindstn/helsegrad/pkg/pathutil"
)

// Storage saves and loads assessment files under a base directory. Each
// assessment is one JSON file named by its ID.
type Storage struct {
	logger  logger.Logger
	baseDir string
}

// NewStorage creates a storage instance using the global logger.
func NewStorage(baseDir string) *Storage {
	return NewStorageWithLogger(baseDir, logger.GetGlobalLogger())
}

// NewStorageWithLogger creates a storage instance with a custom logger.
func NewStorageWithLogger(baseDir string, log logger.Logger) *Storage {
	return &Storage{
		baseDir: baseDir,
		logger:  log,
	}
}

// Save writes an assessment to the base directory.
func (s *Storage) Save(a *models.Assessment) (string, error) {
	validDir, err := pathutil.ValidateDataPath(s.baseDir, "")
	if err != nil {
		return "", fmt.Errorf("invalid storage directory: %w", err)
	}

	if mkErr := os.MkdirAll(validDir, 0750); mkErr != nil {
		return "", fmt.Errorf("creating storage directory: %w", mkErr)
	}

	path, err := pathutil.JoinAndValidate(validDir, a.ID+".json")
	if err != nil {
		return "", fmt.Errorf("invalid assessment path: %w", err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling assessment: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("writing assessment: %w", err)
	}

	s.logger.Debug("Saved assessment", "id", a.ID, "path", path)
	return path, nil
}

// Load reads an assessment by ID.
func (s *Storage) Load(id string) (*models.Assessment, error) {
	validDir, err := pathutil.ValidateDataPath(s.baseDir, "")
	if err != nil {
		return nil, fmt.Errorf("invalid storage directory: %w", err)
	}

	path, err := pathutil.JoinAndValidate(validDir, id+".json")
	if err != nil {
		return nil, fmt.Errorf("invalid assessment path: %w", err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path validated above
	if err != nil {
		return nil, fmt.Errorf("reading assessment %s: %w", id, err)
	}

	var a models.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing assessment %s: %w", id, err)
	}

	return &a, nil
}

// List returns all stored assessments, newest first.
func (s *Storage) List() ([]*models.Assessment, error) {
	entries, err := os.ReadDir(s.baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading storage directory: %w", err)
	}

	var assessments []*models.Assessment
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		a, loadErr := s.Load(id)
		if loadErr != nil {
			s.logger.Warn("Skipping unreadable assessment file", "file", entry.Name(), "error", loadErr)
			continue
		}
		assessments = append(assessments, a)
	}

	sort.Slice(assessments, func(i, j int) bool {
		return assessments[i].CreatedAt.After(assessments[j].CreatedAt)
	})
	return assessments, nil
}

// Delete removes a stored assessment.
func (s *Storage) Delete(id string) error {
	validDir, err := pathutil.ValidateDataPath(s.baseDir, "")
	if err != nil {
		return fmt.Errorf("invalid storage directory: %w", err)
	}

	path, err := pathutil.JoinAndValidate(validDir, id+".json")
	if err != nil {
		return fmt.Errorf("invalid assessment path: %w", err)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting assessment %s: %w", id, err)
	}
	s.logger.Debug("Deleted assessment", "id", id)
	return nil
}

// ExportYAML writes an assessment to the given path as YAML, for sharing
// with systems that consume YAML exports.
func (s *Storage) ExportYAML(a *models.Assessment, path string) error {
	validPath, err := pathutil.ValidateOutputPath(path)
	if err != nil {
		return fmt.Errorf("invalid export path: %w", err)
	}

	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling assessment: %w", err)
	}

	if err := os.WriteFile(validPath, data, 0600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}

	s.logger.Debug("Exported assessment", "id", a.ID, "path", validPath)
	return nil
}

// BaseDir returns the storage root.
func (s *Storage) BaseDir() string {
	return s.baseDir
}

// IsNotFound reports whether the error came from loading a missing
// assessment.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

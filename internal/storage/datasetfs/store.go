// Package datasetfs implements file-based storage for role
// interview-question datasets. Each dataset is a UTF-8 JSON file named
// <key>.json under a single directory, where <key> is the normalized
// form of a role label.
package datasetfs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/models"
)

// Store provides read-only access to the dataset directory.
type Store struct {
	dir    string
	logger *common.Logger
}

// NewStore opens a dataset store rooted at dir. The directory does not
// have to exist yet; resolution against a missing directory simply
// reports every role as not found.
func NewStore(logger *common.Logger, dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dataset path %s: %w", dir, err)
	}

	logger.Info().Str("path", abs).Msg("Dataset store opened")
	return &Store{dir: abs, logger: logger}, nil
}

// Dir returns the absolute dataset directory.
func (s *Store) Dir() string {
	return s.dir
}

// NormalizeRole converts a free-form role label into its filesystem key.
// Applied in order: ASCII lowercase, drop every character outside
// [a-z 0-9 space hyphen] (this also strips the square brackets that UI
// route templates carry), trim, collapse whitespace runs to a single
// hyphen, collapse hyphen runs, trim edge hyphens.
//
// The result is the sole authority for building dataset filenames: the
// surviving alphabet cannot name a path outside the dataset directory.
func NormalizeRole(label string) string {
	filtered := make([]rune, 0, len(label))
	for _, r := range label {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' || r == '-' {
			filtered = append(filtered, r)
		}
	}

	// Fields splits on space runs, so joining with "-" both trims the
	// edges and replaces each whitespace run with one hyphen.
	key := strings.Join(strings.Fields(string(filtered)), "-")
	for strings.Contains(key, "--") {
		key = strings.ReplaceAll(key, "--", "-")
	}
	return strings.Trim(key, "-")
}

// Resolve looks up the dataset for roleLabel. A missing file returns
// *models.DatasetNotFoundError carrying the attempted path; a present
// but unreadable or invalid file returns a plain error.
func (s *Store) Resolve(_ context.Context, roleLabel string) (*models.RoleDataset, error) {
	key := NormalizeRole(roleLabel)
	filename := key + ".json"
	path := filepath.Join(s.dir, filename)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &models.DatasetNotFoundError{Role: roleLabel, Path: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	questions, err := unwrapQuestions(data)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("role", roleLabel).Str("filename", filename).Msg("Dataset resolved")
	return &models.RoleDataset{
		Role:      roleLabel,
		Key:       key,
		Filename:  filename,
		Path:      path,
		Questions: questions,
	}, nil
}

// unwrapQuestions validates the raw file contents as JSON and unwraps a
// {"questions": ...} envelope when present. Both encodings coexist on
// disk; callers only ever see the inner value.
func unwrapQuestions(data []byte) (json.RawMessage, error) {
	var value json.RawMessage
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("invalid dataset JSON: %w", err)
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(value, &wrapped); err == nil {
		if q, ok := wrapped["questions"]; ok {
			return q, nil
		}
	}
	return value, nil
}

// Package interfaces defines the service contracts consumed by the HTTP
// and MCP surfaces.
package interfaces

import (
	"context"

	"github.com/bobmcallan/compass/internal/models"
)

// DatasetStore resolves free-form role labels to interview-question
// datasets on disk. Implementations treat the dataset directory as
// read-only.
type DatasetStore interface {
	// Resolve normalizes roleLabel to a filesystem key, loads the matching
	// dataset file, and returns the unwrapped questions value. A missing
	// file yields *models.DatasetNotFoundError; any other error means the
	// file was present but unreadable or not valid JSON.
	Resolve(ctx context.Context, roleLabel string) (*models.RoleDataset, error)

	// Dir returns the absolute dataset directory.
	Dir() string
}

package store

import (
	"context"
	"errors"

	"github.com/samkiyya/SAM-Fleet/models"
)

var (
	// ErrNotFound means the id did not resolve to a vehicle.
	ErrNotFound = errors.New("vehicle not found")
	// ErrDuplicatePlate means another vehicle already holds the license plate.
	ErrDuplicatePlate = errors.New("license plate already registered")
)

// VehicleStore is the persistence contract for vehicle records. The store
// exclusively owns record identity and the lastUpdated timestamp: Create
// assigns both, and every successful mutation refreshes lastUpdated to a
// strictly later value.
type VehicleStore interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, id string) (*models.Vehicle, error)
	Create(ctx context.Context, v *models.Vehicle) error
	// Update replaces the client-editable fields of the vehicle with the
	// given id and returns the stored record.
	Update(ctx context.Context, id string, fields models.Vehicle) (*models.Vehicle, error)
	// UpdateStatus changes only the status. Re-applying the current status
	// still refreshes lastUpdated.
	UpdateStatus(ctx context.Context, id string, status models.VehicleStatus) (*models.Vehicle, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

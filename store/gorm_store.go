package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/samkiyya/SAM-Fleet/models"
)

// GormStore implements VehicleStore on a GORM connection. The *gorm.DB must
// be opened with TranslateError so unique-index violations surface as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := s.db.WithContext(ctx).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := s.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get vehicle %s: %w", id, err)
	}
	return &vehicle, nil
}

func (s *GormStore) Create(ctx context.Context, v *models.Vehicle) error {
	err := s.db.WithContext(ctx).Create(v).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicatePlate
	}
	if err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}
	return nil
}

func (s *GormStore) Update(ctx context.Context, id string, fields models.Vehicle) (*models.Vehicle, error) {
	var updated *models.Vehicle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, "id = ?", id).Error; err != nil {
			return err
		}
		vehicle.Name = fields.Name
		vehicle.Type = fields.Type
		vehicle.LicensePlate = fields.LicensePlate
		vehicle.Driver = fields.Driver
		vehicle.Mileage = fields.Mileage
		vehicle.FuelLevel = fields.FuelLevel
		if fields.Status != "" {
			vehicle.Status = fields.Status
		}
		vehicle.LastUpdated = nextTimestamp(time.Time(vehicle.LastUpdated))
		if err := tx.Save(&vehicle).Error; err != nil {
			return err
		}
		updated = &vehicle
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicatePlate
	}
	if err != nil {
		return nil, fmt.Errorf("update vehicle %s: %w", id, err)
	}
	return updated, nil
}

func (s *GormStore) UpdateStatus(ctx context.Context, id string, status models.VehicleStatus) (*models.Vehicle, error) {
	var updated *models.Vehicle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, "id = ?", id).Error; err != nil {
			return err
		}
		vehicle.Status = status
		vehicle.LastUpdated = nextTimestamp(time.Time(vehicle.LastUpdated))
		if err := tx.Save(&vehicle).Error; err != nil {
			return err
		}
		updated = &vehicle
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update vehicle %s status: %w", id, err)
	}
	return updated, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete vehicle %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// nextTimestamp returns now, nudged past prev when the clock has not moved,
// so lastUpdated strictly increases across back-to-back mutations of one
// record.
func nextTimestamp(prev time.Time) models.JSONTime {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Millisecond)
	}
	return models.JSONTime(now)
}

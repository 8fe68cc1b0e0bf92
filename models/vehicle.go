package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// VehicleStatus is the operational state of a vehicle. Any status may
// transition directly to any other.
type VehicleStatus string

const (
	StatusActive           VehicleStatus = "Active"
	StatusInactive         VehicleStatus = "Inactive"
	StatusUnderMaintenance VehicleStatus = "Under Maintenance"
)

// ValidStatuses is the closed set of accepted status values.
var ValidStatuses = map[VehicleStatus]bool{
	StatusActive:           true,
	StatusInactive:         true,
	StatusUnderMaintenance: true,
}

// Vehicle represents one fleet vehicle record. The store owns ID and
// LastUpdated; clients never set either directly.
type Vehicle struct {
	ID           string        `gorm:"type:char(24);primaryKey"                  json:"_id"`
	Name         string        `gorm:"column:name;not null"                      json:"name"`
	Type         string        `gorm:"column:type;not null"                      json:"type"`
	LicensePlate string        `gorm:"column:license_plate;not null;uniqueIndex" json:"licensePlate"`
	Driver       string        `gorm:"column:driver;not null"                    json:"driver"`
	Mileage      float64       `gorm:"column:mileage;not null"                   json:"mileage"`
	FuelLevel    float64       `gorm:"column:fuel_level;not null"                json:"fuelLevel"`
	Status       VehicleStatus `gorm:"column:status;not null;default:Active"     json:"status"`
	LastUpdated  JSONTime      `gorm:"column:last_updated;not null"              json:"lastUpdated"`
}

func (Vehicle) TableName() string { return "vehicles" }

// BeforeCreate fills in the store-owned fields before the row is inserted.
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = NewRecordID()
	}
	if v.Status == "" {
		v.Status = StatusActive
	}
	if time.Time(v.LastUpdated).IsZero() {
		v.LastUpdated = JSONTime(time.Now().UTC())
	}
	return nil
}

// NewRecordID returns a 24-character hex identifier: a big-endian unix
// timestamp in the first 4 bytes followed by 8 random bytes.
func NewRecordID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		panic(fmt.Sprintf("models: read random bytes: %v", err))
	}
	return hex.EncodeToString(b[:])
}

// IsValidRecordID reports whether id has the store's native key format,
// exactly 24 hex characters.
func IsValidRecordID(id string) bool {
	if len(id) != 24 {
		return false
	}
	_, err := hex.DecodeString(id)
	return err == nil
}

// Validate checks the client-supplied fields of a vehicle. ID and
// LastUpdated are not checked here; they belong to the store.
func (v *Vehicle) Validate() error {
	var missing []string
	if strings.TrimSpace(v.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(v.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(v.LicensePlate) == "" {
		missing = append(missing, "licensePlate")
	}
	if strings.TrimSpace(v.Driver) == "" {
		missing = append(missing, "driver")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if v.Mileage < 0 {
		return fmt.Errorf("mileage must not be negative")
	}
	if v.FuelLevel < 0 || v.FuelLevel > 100 {
		return fmt.Errorf("fuelLevel must be between 0 and 100")
	}
	if v.Status != "" && !ValidStatuses[v.Status] {
		return fmt.Errorf("invalid status %q", v.Status)
	}
	return nil
}

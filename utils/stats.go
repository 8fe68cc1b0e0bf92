package utils

import "github.com/samkiyya/SAM-Fleet/models"

// FleetSummary aggregates the fleet-wide metrics the dashboard charts are
// built from.
type FleetSummary struct {
	TotalVehicles       int     `json:"totalVehicles"`
	ActiveVehicles      int     `json:"activeVehicles"`
	InactiveVehicles    int     `json:"inactiveVehicles"`
	MaintenanceVehicles int     `json:"maintenanceVehicles"`
	TotalMileage        float64 `json:"totalMileage"`
	AverageMileage      float64 `json:"averageMileage"`
	TotalFuelLevel      float64 `json:"totalFuelLevel"`
	AverageFuelLevel    float64 `json:"averageFuelLevel"`
}

// Summarize computes a FleetSummary over the given vehicles. Averages are
// zero for an empty fleet.
func Summarize(vehicles []models.Vehicle) FleetSummary {
	summary := FleetSummary{TotalVehicles: len(vehicles)}

	for _, v := range vehicles {
		switch v.Status {
		case models.StatusActive:
			summary.ActiveVehicles++
		case models.StatusInactive:
			summary.InactiveVehicles++
		case models.StatusUnderMaintenance:
			summary.MaintenanceVehicles++
		}
		summary.TotalMileage += v.Mileage
		summary.TotalFuelLevel += v.FuelLevel
	}

	if summary.TotalVehicles > 0 {
		summary.AverageMileage = summary.TotalMileage / float64(summary.TotalVehicles)
		summary.AverageFuelLevel = summary.TotalFuelLevel / float64(summary.TotalVehicles)
	}
	return summary
}

package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/samkiyya/SAM-Fleet/models"
)

var exportHeaders = []string{
	"ID", "Name", "Type", "License Plate", "Driver",
	"Mileage", "Fuel Level", "Status", "Last Updated",
}

// xlsxTimeLayout mirrors the en-US locale string the dashboard already
// displays; CSV keeps RFC3339. The two formats differ on purpose.
const xlsxTimeLayout = "1/2/2006, 3:04:05 PM"

// ExportVehicles handles GET /api/vehicles/export?format=csv|xlsx. The
// export always covers the whole store collection, not the filtered view.
func (h *Handler) ExportVehicles(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "xlsx" {
		writeMessage(w, http.StatusBadRequest, "Invalid export format")
		return
	}

	vehicles, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("[EXPORT] list failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to export vehicles")
		return
	}

	var data []byte
	var contentType string
	switch format {
	case "csv":
		data, err = buildCSV(vehicles)
		contentType = "text/csv"
	case "xlsx":
		data, err = buildXLSX(vehicles)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	if err != nil {
		log.Printf("[EXPORT] build %s failed: %v", format, err)
		writeMessage(w, http.StatusInternalServerError, "failed to generate export file")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=vehicles.%s", format))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func buildCSV(vehicles []models.Vehicle) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		record := []string{
			v.ID,
			v.Name,
			v.Type,
			v.LicensePlate,
			v.Driver,
			strconv.FormatFloat(v.Mileage, 'f', -1, 64),
			strconv.FormatFloat(v.FuelLevel, 'f', -1, 64),
			string(v.Status),
			time.Time(v.LastUpdated).UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildXLSX(vehicles []models.Vehicle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheetName := "Vehicles"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "A", 26)
	f.SetColWidth(sheetName, "B", "E", 20)
	f.SetColWidth(sheetName, "I", "I", 22)

	for i, v := range vehicles {
		row := i + 2
		values := []any{
			v.ID,
			v.Name,
			v.Type,
			v.LicensePlate,
			v.Driver,
			v.Mileage,
			v.FuelLevel,
			string(v.Status),
			time.Time(v.LastUpdated).Format(xlsxTimeLayout),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

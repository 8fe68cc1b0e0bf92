package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/samkiyya/SAM-Fleet/models"
	"github.com/samkiyya/SAM-Fleet/store"
)

// Handler holds shared dependencies for the HTTP handlers.
type Handler struct {
	Store store.VehicleStore
}

func NewHandler(s store.VehicleStore) *Handler {
	return &Handler{Store: s}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] failed to encode response: %v", err)
	}
}

// writeMessage emits the {"message": ...} body both front ends expect on
// errors and delete confirmations.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// GetVehicles handles GET /api/vehicles.
func (h *Handler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("[VEHICLES] list failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to list vehicles")
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// GetVehicleByID handles GET /api/vehicles/{id}.
func (h *Handler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !models.IsValidRecordID(id) {
		writeMessage(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.Store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Vehicle not found")
		return
	}
	if err != nil {
		log.Printf("[VEHICLES] get %s failed: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "failed to get vehicle")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// AddVehicle handles POST /api/vehicles. The store assigns id and
// lastUpdated; anything the client sent for either is discarded.
func (h *Handler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	vehicle.ID = ""
	vehicle.LastUpdated = models.JSONTime{}

	if err := vehicle.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.Create(r.Context(), &vehicle); err != nil {
		if errors.Is(err, store.ErrDuplicatePlate) {
			writeMessage(w, http.StatusConflict, "license plate already registered")
			return
		}
		log.Printf("[VEHICLES] create failed: %v", err)
		writeMessage(w, http.StatusInternalServerError, "failed to create vehicle")
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

// UpdateVehicle handles PUT /api/vehicles/{id}, a full-record edit.
func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !models.IsValidRecordID(id) {
		writeMessage(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var fields models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := fields.Validate(); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicle, err := h.Store.Update(r.Context(), id, fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		if errors.Is(err, store.ErrDuplicatePlate) {
			writeMessage(w, http.StatusConflict, "license plate already registered")
			return
		}
		log.Printf("[VEHICLES] update %s failed: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "failed to update vehicle")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

type statusUpdateRequest struct {
	Status models.VehicleStatus `json:"status"`
}

// UpdateVehicleStatus handles PUT /api/vehicles/{id}/status, the restricted
// mutation touching only status and lastUpdated.
func (h *Handler) UpdateVehicleStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !models.IsValidRecordID(id) {
		writeMessage(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !models.ValidStatuses[req.Status] {
		writeMessage(w, http.StatusBadRequest, "invalid status value")
		return
	}

	vehicle, err := h.Store.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		log.Printf("[VEHICLES] status update %s failed: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "failed to update vehicle status")
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /api/vehicles/{id}. Deletion is permanent.
func (h *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !models.IsValidRecordID(id) {
		writeMessage(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		log.Printf("[VEHICLES] delete %s failed: %v", id, err)
		writeMessage(w, http.StatusInternalServerError, "failed to delete vehicle")
		return
	}
	writeMessage(w, http.StatusOK, "Vehicle deleted successfully")
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

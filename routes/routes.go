package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/samkiyya/SAM-Fleet/handlers"
	"github.com/samkiyya/SAM-Fleet/middleware"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(h *handlers.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	r.HandleFunc("/healthz", h.Health).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	vehicles := api.PathPrefix("/vehicles").Subrouter()

	// export and stats before the {id} routes so they are not captured as ids
	vehicles.HandleFunc("/export", h.ExportVehicles).Methods("GET")
	vehicles.HandleFunc("/stats", h.GetFleetStats).Methods("GET")

	vehicles.HandleFunc("", h.GetVehicles).Methods("GET")
	vehicles.HandleFunc("", h.AddVehicle).Methods("POST")
	vehicles.HandleFunc("/{id}", h.GetVehicleByID).Methods("GET")
	vehicles.HandleFunc("/{id}", h.UpdateVehicle).Methods("PUT")
	vehicles.HandleFunc("/{id}/status", h.UpdateVehicleStatus).Methods("PUT")
	vehicles.HandleFunc("/{id}", h.DeleteVehicle).Methods("DELETE")

	return r
}

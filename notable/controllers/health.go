package controllers

import (
	"net/http"
)

const healthMessage = "Simple CRUD API with Go, chi, GORM and Postgres"

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"success","message":"` + healthMessage + `"}`))
}

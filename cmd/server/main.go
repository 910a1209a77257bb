package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/healthcalc/health-calculator-api/internal/config"
	"github.com/healthcalc/health-calculator-api/internal/handler"
	"github.com/healthcalc/health-calculator-api/internal/middleware"
)

func main() {
	cfg := config.Load()

	calculatorHandler := handler.NewCalculatorHandler()

	r := mux.NewRouter()

	// Global middleware: CORS → Security Headers → Request ID
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestID)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/healthcalculator").Subrouter()

	api.HandleFunc("/bmi", calculatorHandler.BMI).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/bai", calculatorHandler.BAI).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/waisttohip", calculatorHandler.WaistToHip).Methods(http.MethodGet, http.MethodOptions)

	addr := ":" + cfg.Port
	log.Printf("server starting on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

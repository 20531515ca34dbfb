package controllers

import (
	"net/http"

	"github.com/Greenkack/pvoffer-backend/api/responses"
	"github.com/Greenkack/pvoffer-backend/api/validators"
	"github.com/Greenkack/pvoffer-backend/internal/calc"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

type calculateRequest struct {
	CustomerData                calc.CustomerData   `json:"customer_data" validate:"required"`
	ProjectDetails              calc.ProjectDetails `json:"project_details" validate:"required"`
	EconomicData                calc.EconomicData   `json:"economic_data" validate:"required"`
	IncludeAdvancedCalculations bool                `json:"include_advanced_calculations,omitempty"`
}

// CalculationRun feeds the project to the engine and returns the engine's
// result verbatim. A concurrent run is rejected with 409; engine failures
// come back as an unsuccessful result body, not an HTTP error.
func CalculationRun(bridge *calc.Bridge, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload calculateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		project := calc.ProjectData{
			CustomerData:                payload.CustomerData,
			ProjectDetails:              payload.ProjectDetails,
			EconomicData:                payload.EconomicData,
			IncludeAdvancedCalculations: payload.IncludeAdvancedCalculations,
		}

		result, err := bridge.Calculate(r.Context(), project)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CalculationKill terminates an in-flight calculation, if any.
func CalculationKill(bridge *calc.Bridge, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		killed := bridge.Kill()
		responses.WriteSuccess(w, map[string]bool{"killed": killed})
	}
}

// CalculationStatus reports whether the engine is currently busy.
func CalculationStatus(bridge *calc.Bridge, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]bool{"busy": bridge.Busy()})
	}
}

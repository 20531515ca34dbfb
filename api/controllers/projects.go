package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Greenkack/pvoffer-backend/api/responses"
	"github.com/Greenkack/pvoffer-backend/api/validators"
	"github.com/Greenkack/pvoffer-backend/internal/catalog"
	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

type createProjectRequest struct {
	CustomerName       string   `json:"customerName" validate:"required"`
	Street             string   `json:"street" validate:"required"`
	City               string   `json:"city" validate:"required"`
	ZipCode            string   `json:"zipCode" validate:"required"`
	Phone              *string  `json:"phone,omitempty"`
	Email              *string  `json:"email,omitempty" validate:"omitempty,email"`
	AnlageKwp          float64  `json:"anlageKwp" validate:"required,gt=0"`
	ModuleQuantity     int      `json:"moduleQuantity" validate:"required,min=1"`
	SelectedModule     *string  `json:"selectedModule,omitempty"`
	SelectedInverter   *string  `json:"selectedInverter,omitempty"`
	RoofOrientation    float64  `json:"roofOrientation" validate:"gte=0,lte=360"`
	RoofTilt           float64  `json:"roofTilt" validate:"gte=0,lte=90"`
	RoofArea           *float64 `json:"roofArea,omitempty" validate:"omitempty,gt=0"`
	InstallationType   string   `json:"installationType"`
	StorageCapacityKwh *float64 `json:"storageCapacityKwh,omitempty" validate:"omitempty,gt=0"`
	SelectedStorage    *string  `json:"selectedStorage,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude          *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

func (req createProjectRequest) toModel() *models.Project {
	return &models.Project{
		CustomerName:       req.CustomerName,
		Street:             req.Street,
		City:               req.City,
		ZipCode:            req.ZipCode,
		Phone:              req.Phone,
		Email:              req.Email,
		AnlageKwp:          req.AnlageKwp,
		ModuleQuantity:     req.ModuleQuantity,
		SelectedModule:     req.SelectedModule,
		SelectedInverter:   req.SelectedInverter,
		RoofOrientation:    req.RoofOrientation,
		RoofTilt:           req.RoofTilt,
		RoofArea:           req.RoofArea,
		InstallationType:   req.InstallationType,
		StorageCapacityKwh: req.StorageCapacityKwh,
		SelectedStorage:    req.SelectedStorage,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
	}
}

func ProjectCreate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProjectRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row := payload.toModel()
		if err := repo.InsertProject(r.Context(), row); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func ProjectList(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := repo.ListProjects(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, projects)
	}
}

func ProjectDetail(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := repo.GetProject(r.Context(), chi.URLParam(r, "projectId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, project)
	}
}

func ProjectDelete(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "projectId")
		deleted, err := repo.DeleteProject(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !deleted {
			responses.WriteError(r.Context(), logg, w, notFound(id))
			return
		}
		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

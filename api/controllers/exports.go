package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Greenkack/pvoffer-backend/api/responses"
	"github.com/Greenkack/pvoffer-backend/api/validators"
	"github.com/Greenkack/pvoffer-backend/internal/calc"
	"github.com/Greenkack/pvoffer-backend/internal/catalog"
	"github.com/Greenkack/pvoffer-backend/internal/export"
	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

// ExportCatalogXLSX streams the entire catalog as a workbook download.
func ExportCatalogXLSX(repo *catalog.Repository, svc *export.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		modules, err := repo.ListModules(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		inverters, err := repo.ListInverters(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		storages, err := repo.ListStorages(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		accessories, err := repo.ListAccessories(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		companies, err := repo.ListCompanies(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		out, err := svc.BuildCatalogXLSX(export.Catalog{
			Modules:     modules,
			Inverters:   inverters,
			Storages:    storages,
			Accessories: accessories,
			Companies:   companies,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		filename := fmt.Sprintf("catalog_%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
		_, _ = w.Write(out)
	}
}

type offerExportRequest struct {
	CompanyID *string               `json:"companyId,omitempty"`
	Project   calc.ProjectData      `json:"project" validate:"required"`
	Analysis  *calc.AnalysisResults `json:"analysis,omitempty"`
}

// ExportOfferPDF renders the posted project and analysis as an offer PDF.
func ExportOfferPDF(repo *catalog.Repository, svc *export.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload offerExportRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var company *models.Company
		if payload.CompanyID != nil {
			var err error
			company, err = repo.GetCompany(r.Context(), *payload.CompanyID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		out, err := svc.BuildOfferPDF(export.Offer{
			Project:  payload.Project,
			Company:  company,
			Analysis: payload.Analysis,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filename := fmt.Sprintf("offer_%s.pdf", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
		_, _ = w.Write(out)
	}
}

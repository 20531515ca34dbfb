package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Greenkack/pvoffer-backend/api/responses"
	"github.com/Greenkack/pvoffer-backend/internal/catalog"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

func categoryParam(r *http.Request) (enums.ImportCategory, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "category"))
	cat, err := enums.ParseImportCategory(raw)
	if err != nil {
		return "", pkgerrors.New(pkgerrors.CodeUnknownCategory, fmt.Sprintf("Unknown category: %s", raw))
	}
	return cat, nil
}

// CatalogList returns every row of the named collection.
func CatalogList(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := categoryParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var (
			data    any
			listErr error
		)
		switch cat {
		case enums.ImportCategoryModules:
			data, listErr = repo.ListModules(r.Context())
		case enums.ImportCategoryInverters:
			data, listErr = repo.ListInverters(r.Context())
		case enums.ImportCategoryStorages:
			data, listErr = repo.ListStorages(r.Context())
		case enums.ImportCategoryAccessories:
			data, listErr = repo.ListAccessories(r.Context())
		case enums.ImportCategoryCompanies:
			data, listErr = repo.ListCompanies(r.Context())
		}
		if listErr != nil {
			responses.WriteError(r.Context(), logg, w, listErr)
			return
		}

		responses.WriteSuccess(w, data)
	}
}

// CatalogGet returns a single row by id.
func CatalogGet(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := categoryParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id := chi.URLParam(r, "id")

		var data any
		switch cat {
		case enums.ImportCategoryModules:
			data, err = repo.GetModule(r.Context(), id)
		case enums.ImportCategoryInverters:
			data, err = repo.GetInverter(r.Context(), id)
		case enums.ImportCategoryStorages:
			data, err = repo.GetStorage(r.Context(), id)
		case enums.ImportCategoryAccessories:
			data, err = repo.GetAccessory(r.Context(), id)
		case enums.ImportCategoryCompanies:
			data, err = repo.GetCompany(r.Context(), id)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, data)
	}
}

// CatalogDelete removes a single row by id.
func CatalogDelete(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := categoryParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id := chi.URLParam(r, "id")

		var deleted bool
		switch cat {
		case enums.ImportCategoryModules:
			deleted, err = repo.DeleteModule(r.Context(), id)
		case enums.ImportCategoryInverters:
			deleted, err = repo.DeleteInverter(r.Context(), id)
		case enums.ImportCategoryStorages:
			deleted, err = repo.DeleteStorage(r.Context(), id)
		case enums.ImportCategoryAccessories:
			deleted, err = repo.DeleteAccessory(r.Context(), id)
		case enums.ImportCategoryCompanies:
			deleted, err = repo.DeleteCompany(r.Context(), id)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !deleted {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("record %s not found", id)))
			return
		}

		responses.WriteSuccess(w, map[string]bool{"deleted": true})
	}
}

// CatalogClear drops every row of the named collection.
func CatalogClear(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := categoryParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		deleted, err := repo.ClearCategory(r.Context(), cat)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]int64{"deleted": deleted})
	}
}

// CatalogStats reports row counts for every collection.
func CatalogStats(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := repo.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

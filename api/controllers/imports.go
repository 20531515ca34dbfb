package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Greenkack/pvoffer-backend/api/responses"
	"github.com/Greenkack/pvoffer-backend/internal/importer"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

const maxImportUploadBytes = 32 << 20

// ImportSpreadsheet accepts a multipart spreadsheet upload and loads it into
// the named catalog category. The import outcome is always reported in-band
// with HTTP 200; only a malformed upload fails the exchange itself.
func ImportSpreadsheet(svc *importer.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImportUploadBytes); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart body"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "file field is required"))
			return
		}
		defer file.Close()

		opts := importer.DefaultOptions()
		if v := r.FormValue("clearExisting"); v != "" {
			opts.ClearExisting, _ = strconv.ParseBool(v)
		}
		if v := r.FormValue("skipDuplicates"); v != "" {
			opts.SkipDuplicates, _ = strconv.ParseBool(v)
		}
		if v := r.FormValue("validateData"); v != "" {
			opts.ValidateData, _ = strconv.ParseBool(v)
		}

		category := chi.URLParam(r, "category")
		report := svc.Import(r.Context(), file, header.Filename, category, opts)

		responses.WriteSuccess(w, report)
	}
}

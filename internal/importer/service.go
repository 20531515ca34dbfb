package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
	"github.com/Greenkack/pvoffer-backend/pkg/metrics"
)

// Repository covers the persistence surface the importer needs.
type Repository interface {
	BulkInsertModules(ctx context.Context, rows []models.SolarModule) error
	BulkInsertInverters(ctx context.Context, rows []models.Inverter) error
	BulkInsertStorages(ctx context.Context, rows []models.Storage) error
	BulkInsertAccessories(ctx context.Context, rows []models.Accessory) error
	BulkInsertCompanies(ctx context.Context, rows []models.Company) error
	ClearCategory(ctx context.Context, category enums.ImportCategory) (int64, error)
}

// Options controls how an import run treats existing and incoming rows.
// SkipDuplicates is accepted for compatibility with older clients but has no
// effect: the store keeps no natural-key uniqueness to dedupe against.
type Options struct {
	ClearExisting  bool `json:"clearExisting"`
	SkipDuplicates bool `json:"skipDuplicates"`
	ValidateData   bool `json:"validateData"`
}

// DefaultOptions mirrors the defaults used by the desktop clients.
func DefaultOptions() Options {
	return Options{ClearExisting: false, SkipDuplicates: true, ValidateData: true}
}

// Report summarizes an import run. Errors holds per-row messages for rows
// that were rejected; a successful run can still carry them.
type Report struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// Service runs the spreadsheet import pipeline: read, map, validate, insert.
type Service struct {
	repo    Repository
	logg    *logger.Logger
	metrics *metrics.ImportMetrics
}

// NewService builds an import service.
func NewService(repo Repository, logg *logger.Logger, m *metrics.ImportMetrics) *Service {
	return &Service{repo: repo, logg: logg, metrics: m}
}

// Import reads the named spreadsheet and loads its rows into the given
// category. Failures are reported in-band: the returned report carries the
// outcome and the error never aborts the HTTP exchange.
func (s *Service) Import(ctx context.Context, file io.Reader, filename, category string, opts Options) Report {
	ctx = s.logg.WithCategory(ctx, category)
	start := time.Now()

	// Resolve the category before touching the file: an unknown category
	// fails fast without reading a single byte.
	cat, err := enums.ParseImportCategory(category)
	if err != nil {
		s.metrics.IncFailure(category)
		return Report{Success: false, Message: fmt.Sprintf("Unknown category: %s", category), Imported: 0, Errors: []string{}}
	}

	rows, err := ReadRows(file, filename)
	if err != nil {
		s.metrics.IncFailure(category)
		if te := pkgerrors.As(err); te != nil && te.Code() == pkgerrors.CodeUnsupportedFormat {
			return Report{Success: false, Message: te.Message(), Imported: 0, Errors: []string{}}
		}
		s.logg.Warn(ctx, fmt.Sprintf("import file could not be parsed: %v", err))
		return Report{
			Success:  false,
			Message:  fmt.Sprintf("Import failed: %s", err.Error()),
			Imported: 0,
			Errors:   []string{err.Error()},
		}
	}

	if opts.ClearExisting {
		if _, err := s.repo.ClearCategory(ctx, cat); err != nil {
			s.metrics.IncFailure(category)
			s.logg.Error(ctx, "clearing category before import", err)
			return Report{
				Success:  false,
				Message:  fmt.Sprintf("Import failed: %s", err.Error()),
				Imported: 0,
				Errors:   []string{err.Error()},
			}
		}
	}

	var report Report
	switch cat {
	case enums.ImportCategoryModules:
		report = runImport(ctx, s, cat, rows, opts, MapModule, ValidateModule, s.repo.BulkInsertModules)
	case enums.ImportCategoryInverters:
		report = runImport(ctx, s, cat, rows, opts, MapInverter, ValidateInverter, s.repo.BulkInsertInverters)
	case enums.ImportCategoryStorages:
		report = runImport(ctx, s, cat, rows, opts, MapStorage, ValidateStorage, s.repo.BulkInsertStorages)
	case enums.ImportCategoryAccessories:
		report = runImport(ctx, s, cat, rows, opts, MapAccessory, ValidateAccessory, s.repo.BulkInsertAccessories)
	case enums.ImportCategoryCompanies:
		report = runImport(ctx, s, cat, rows, opts, MapCompany, ValidateCompany, s.repo.BulkInsertCompanies)
	}

	s.metrics.ObserveDuration(category, time.Since(start))
	s.metrics.AddInserted(category, report.Imported)
	s.metrics.AddRejected(category, len(report.Errors))
	if !report.Success {
		s.metrics.IncFailure(category)
	}
	s.logg.Info(ctx, fmt.Sprintf("import finished: %s", report.Message))
	return report
}

// runImport maps and validates every row, then inserts the survivors in one
// transaction. Row numbers are reported as spreadsheet rows: the header is
// row 1, so data row i maps to row i+2.
func runImport[T any](
	ctx context.Context,
	s *Service,
	cat enums.ImportCategory,
	rows []Row,
	opts Options,
	mapRow func(Row) (T, error),
	validate func(T) []string,
	insert func(context.Context, []T) error,
) Report {
	var rowErrors []string
	valid := make([]T, 0, len(rows))

	for i, row := range rows {
		rowNum := i + 2

		mapped, err := mapRow(row)
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}

		if opts.ValidateData {
			if violations := validate(mapped); len(violations) > 0 {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %s", rowNum, strings.Join(violations, ", ")))
				continue
			}
		}

		valid = append(valid, mapped)
	}

	if len(valid) == 0 {
		return Report{
			Success:  false,
			Message:  fmt.Sprintf("No valid %s found to import", cat),
			Imported: 0,
			Errors:   rowErrors,
		}
	}

	if err := insert(ctx, valid); err != nil {
		s.logg.Error(ctx, "bulk insert failed", err)
		return Report{
			Success:  false,
			Message:  fmt.Sprintf("Database error: %s", err.Error()),
			Imported: 0,
			Errors:   append(rowErrors, err.Error()),
		}
	}

	return Report{
		Success:  true,
		Message:  fmt.Sprintf("Successfully imported %d %s", len(valid), cat),
		Imported: len(valid),
		Errors:   rowErrors,
	}
}

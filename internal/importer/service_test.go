package importer

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
	"github.com/Greenkack/pvoffer-backend/pkg/metrics"
)

type fakeRepo struct {
	modules    []models.SolarModule
	companies  []models.Company
	cleared    []enums.ImportCategory
	insertErr  error
	clearErr   error
	insertRuns int
}

func (f *fakeRepo) BulkInsertModules(_ context.Context, rows []models.SolarModule) error {
	f.insertRuns++
	if f.insertErr != nil {
		return f.insertErr
	}
	f.modules = append(f.modules, rows...)
	return nil
}

func (f *fakeRepo) BulkInsertInverters(context.Context, []models.Inverter) error { return nil }

func (f *fakeRepo) BulkInsertStorages(context.Context, []models.Storage) error { return nil }

func (f *fakeRepo) BulkInsertAccessories(context.Context, []models.Accessory) error { return nil }

func (f *fakeRepo) BulkInsertCompanies(_ context.Context, rows []models.Company) error {
	f.insertRuns++
	if f.insertErr != nil {
		return f.insertErr
	}
	f.companies = append(f.companies, rows...)
	return nil
}

func (f *fakeRepo) ClearCategory(_ context.Context, category enums.ImportCategory) (int64, error) {
	if f.clearErr != nil {
		return 0, f.clearErr
	}
	f.cleared = append(f.cleared, category)
	return 0, nil
}

func newTestService(repo Repository) *Service {
	logg := logger.New(logger.Options{ServiceName: "importer-test", Output: io.Discard})
	return NewService(repo, logg, metrics.NewImportMetrics(nil))
}

const moduleHeader = "manufacturer,model,powerWp,efficiency,technology," +
	"dimensions_length,dimensions_width,dimensions_thickness,weight,pricePerWp," +
	"warranty_product,warranty_performance,temperatureCoefficient,maxSystemVoltage," +
	"shortCircuitCurrent,openCircuitVoltage"

func moduleLine(manufacturer, model string, powerWp string) string {
	return strings.Join([]string{
		manufacturer, model, powerWp, "21.5", "mono",
		"1722", "1134", "30", "21.8", "0.17",
		"15", "25", "-0.26", "1500",
		"14.1", "39.2",
	}, ",")
}

func TestImportModulesIsolatesBadRows(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	sheet := strings.Join([]string{
		moduleHeader,
		moduleLine("Aiko", "Neostar 2S", "445"),
		moduleLine("Trina", "Vertex S+", "-5"),
		moduleLine("Jinko", "Tiger Neo", "440"),
	}, "\n")

	report := svc.Import(context.Background(), strings.NewReader(sheet), "modules.csv", "modules", DefaultOptions())

	assert.True(t, report.Success)
	assert.Equal(t, 2, report.Imported)
	assert.Equal(t, "Successfully imported 2 modules", report.Message)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Row 3: PowerWp must be greater than 0", report.Errors[0])
	require.Len(t, repo.modules, 2)
	assert.Equal(t, "Aiko", repo.modules[0].Manufacturer)
	assert.Equal(t, "Jinko", repo.modules[1].Manufacturer)
}

func TestImportModulesNoValidRows(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	sheet := strings.Join([]string{
		moduleHeader,
		moduleLine("Aiko", "Neostar 2S", "-1"),
		moduleLine("Trina", "Vertex S+", "0"),
	}, "\n")

	report := svc.Import(context.Background(), strings.NewReader(sheet), "modules.csv", "modules", DefaultOptions())

	assert.False(t, report.Success)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, "No valid modules found to import", report.Message)
	assert.Len(t, report.Errors, 2)
	assert.Zero(t, repo.insertRuns, "nothing should reach the store")
}

func TestImportUnsupportedFormat(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	report := svc.Import(context.Background(), strings.NewReader("x"), "catalog.docx", "modules", DefaultOptions())

	assert.False(t, report.Success)
	assert.Equal(t, "Unsupported file format. Only CSV, XLS, and XLSX are supported.", report.Message)
	assert.Equal(t, 0, report.Imported)
	assert.Empty(t, report.Errors)
}

func TestImportUnknownCategory(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	sheet := moduleHeader + "\n" + moduleLine("Aiko", "Neostar 2S", "445")
	report := svc.Import(context.Background(), strings.NewReader(sheet), "modules.csv", "gadgets", DefaultOptions())

	assert.False(t, report.Success)
	assert.Equal(t, "Unknown category: gadgets", report.Message)
	assert.Equal(t, 0, report.Imported)
}

// readTripwire fails the test as soon as anything reads from the upload.
type readTripwire struct{ t *testing.T }

func (r readTripwire) Read([]byte) (int, error) {
	r.t.Error("file was read before the category was resolved")
	return 0, io.EOF
}

func TestImportUnknownCategoryResolvedBeforeFile(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	report := svc.Import(context.Background(), readTripwire{t}, "catalog.xlsx", "gadgets", DefaultOptions())

	assert.False(t, report.Success)
	assert.Equal(t, "Unknown category: gadgets", report.Message)
	assert.Equal(t, 0, report.Imported)
	assert.Empty(t, report.Errors)
}

func TestImportDatabaseErrorKeepsRowErrors(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("disk I/O error")}
	svc := newTestService(repo)

	sheet := strings.Join([]string{
		moduleHeader,
		moduleLine("Aiko", "Neostar 2S", "445"),
		moduleLine("Trina", "Vertex S+", "-5"),
	}, "\n")

	report := svc.Import(context.Background(), strings.NewReader(sheet), "modules.csv", "modules", DefaultOptions())

	assert.False(t, report.Success)
	assert.Equal(t, 0, report.Imported)
	assert.Equal(t, "Database error: disk I/O error", report.Message)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, "Row 3: PowerWp must be greater than 0", report.Errors[0])
	assert.Equal(t, "disk I/O error", report.Errors[1])
}

func TestImportClearExisting(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	sheet := moduleHeader + "\n" + moduleLine("Aiko", "Neostar 2S", "445")
	opts := DefaultOptions()
	opts.ClearExisting = true

	report := svc.Import(context.Background(), strings.NewReader(sheet), "modules.csv", "modules", opts)

	assert.True(t, report.Success)
	require.Len(t, repo.cleared, 1)
	assert.Equal(t, enums.ImportCategoryModules, repo.cleared[0])
}

func TestImportClearExistingFailure(t *testing.T) {
	repo := &fakeRepo{clearErr: errors.New("database is locked")}
	svc := newTestService(repo)

	sheet := moduleHeader + "\n" + moduleLine("Aiko", "Neostar 2S", "445")
	opts := DefaultOptions()
	opts.ClearExisting = true

	report := svc.Import(context.Background(), strings.NewReader(sheet), "modules.csv", "modules", opts)

	assert.False(t, report.Success)
	assert.Equal(t, "Import failed: database is locked", report.Message)
	assert.Zero(t, repo.insertRuns)
}

func TestImportSkipsValidationWhenDisabled(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	sheet := moduleHeader + "\n" + moduleLine("Aiko", "Neostar 2S", "-5")
	opts := DefaultOptions()
	opts.ValidateData = false

	report := svc.Import(context.Background(), strings.NewReader(sheet), "modules.csv", "modules", opts)

	assert.True(t, report.Success)
	assert.Equal(t, 1, report.Imported)
	require.Len(t, repo.modules, 1)
	assert.Equal(t, -5.0, repo.modules[0].PowerWp)
}

func TestImportCompanies(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	sheet := strings.Join([]string{
		"name,street,city,zipCode,phone,email,website",
		"Solartechnik Nord GmbH,Hafenstr. 12,Hamburg,20457,+49 40 1234567,info@solartechnik-nord.de,https://solartechnik-nord.de",
		"Sonnenkraft Sued,Bergweg 3,Muenchen,80331,+49 89 7654321,broken-email,",
	}, "\n")

	report := svc.Import(context.Background(), strings.NewReader(sheet), "companies.csv", "companies", DefaultOptions())

	assert.True(t, report.Success)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, "Successfully imported 1 companies", report.Message)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "Row 3: Invalid email format", report.Errors[0])
	require.Len(t, repo.companies, 1)
	require.NotNil(t, repo.companies[0].Website)
}

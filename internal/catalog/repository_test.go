package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
)

func testModule(manufacturer, model string, powerWp float64) models.SolarModule {
	return models.SolarModule{
		Manufacturer: manufacturer,
		Model:        model,
		PowerWp:      powerWp,
		Efficiency:   21.5,
		Technology:   enums.ModuleTechnologyMono,
		Dimensions:   models.ModuleDimensions{Length: 1722, Width: 1134, Thickness: 30},
		Weight:       21.8,
		Warranty:     models.ModuleWarranty{Product: 15, Performance: 25},

		TemperatureCoefficient: -0.34,
		MaxSystemVoltage:       1500,
		ShortCircuitCurrent:    13.9,
		OpenCircuitVoltage:     38.9,
	}
}

func TestModuleRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	m := testModule("Aiko", "Neostar 2S", 445)
	require.NoError(t, repo.InsertModule(ctx, &m))
	require.NotEmpty(t, m.ID)

	got, err := repo.GetModule(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aiko", got.Manufacturer)
	assert.Equal(t, 445.0, got.PowerWp)
	assert.Equal(t, enums.ModuleTechnologyMono, got.Technology)
	assert.Equal(t, 25, got.Warranty.Performance)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetModuleNotFound(t *testing.T) {
	repo := NewRepository(openTestClient(t))

	_, err := repo.GetModule(context.Background(), "mod_0_missing")
	require.Error(t, err)
	te := pkgerrors.As(err)
	require.NotNil(t, te)
	assert.Equal(t, pkgerrors.CodeNotFound, te.Code())
}

func TestListModulesOrdersByManufacturerThenModel(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	for _, m := range []models.SolarModule{
		testModule("Trina", "Vertex S+", 440),
		testModule("Aiko", "Neostar 2S", 445),
		testModule("Aiko", "Comet 1P", 460),
	} {
		row := m
		require.NoError(t, repo.InsertModule(ctx, &row))
	}

	rows, err := repo.ListModules(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Comet 1P", rows[0].Model)
	assert.Equal(t, "Neostar 2S", rows[1].Model)
	assert.Equal(t, "Trina", rows[2].Manufacturer)
}

func TestUpdateModulePatchesOnlyGivenFields(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	m := testModule("Aiko", "Neostar 2S", 445)
	require.NoError(t, repo.InsertModule(ctx, &m))

	power := 450.0
	price := 0.18
	ok, err := repo.UpdateModule(ctx, m.ID, ModulePatch{PowerWp: &power, PricePerWp: &price})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetModule(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 450.0, got.PowerWp)
	require.NotNil(t, got.PricePerWp)
	assert.Equal(t, 0.18, *got.PricePerWp)
	assert.Equal(t, "Neostar 2S", got.Model)
}

func TestUpdateModuleMissingRowReturnsFalse(t *testing.T) {
	repo := NewRepository(openTestClient(t))

	power := 450.0
	ok, err := repo.UpdateModule(context.Background(), "mod_0_missing", ModulePatch{PowerWp: &power})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteModule(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	m := testModule("Aiko", "Neostar 2S", 445)
	require.NoError(t, repo.InsertModule(ctx, &m))

	ok, err := repo.DeleteModule(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DeleteModule(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBulkInsertModulesPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	rows := []models.SolarModule{
		testModule("Zeta", "Z1", 400),
		testModule("Zeta", "Z2", 410),
		testModule("Zeta", "Z3", 420),
	}
	require.NoError(t, repo.BulkInsertModules(ctx, rows))

	for _, row := range rows {
		assert.NotEmpty(t, row.ID)
	}

	got, err := repo.ListModules(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Z1", got[0].Model)
	assert.Equal(t, "Z2", got[1].Model)
	assert.Equal(t, "Z3", got[2].Model)
}

func TestBulkInsertRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	first := testModule("Zeta", "Z1", 400)
	require.NoError(t, repo.InsertModule(ctx, &first))

	rows := []models.SolarModule{
		testModule("Zeta", "Z2", 410),
		testModule("Zeta", "Z3", 420),
	}
	// Reusing an existing primary key forces the second insert to fail.
	rows[1].ID = first.ID

	err := repo.BulkInsertModules(ctx, rows)
	require.Error(t, err)

	got, err := repo.ListModules(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1, "failed bulk insert must not leave partial rows")
}

func TestInverterFeaturesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	inv := models.Inverter{
		Manufacturer:    "SMA",
		Model:           "Tripower X15",
		Type:            enums.InverterTypeString,
		PowerKw:         15,
		Efficiency:      98.2,
		MaxDcVoltage:    1000,
		StartupVoltage:  150,
		MpptChannels:    3,
		MaxDcCurrent:    20,
		AcVoltage:       400,
		Warranty:        10,
		Dimensions:      models.UnitDimensions{Length: 585, Width: 460, Height: 275},
		Weight:          28.5,
		ProtectionClass: "IP65",
		Features:        types.FeatureList{"shade management", "integrated dc switch"},
	}
	require.NoError(t, repo.InsertInverter(ctx, &inv))

	got, err := repo.GetInverter(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, types.FeatureList{"shade management", "integrated dc switch"}, got.Features)
}

func TestInverterEmptyFeaturesRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	inv := models.Inverter{
		Manufacturer:    "SMA",
		Model:           "Sunny Boy 5.0",
		Type:            enums.InverterTypeString,
		PowerKw:         5,
		Efficiency:      97.6,
		MaxDcVoltage:    600,
		StartupVoltage:  100,
		MpptChannels:    2,
		MaxDcCurrent:    15,
		AcVoltage:       230,
		Warranty:        5,
		Dimensions:      models.UnitDimensions{Length: 435, Width: 470, Height: 176},
		Weight:          17.5,
		ProtectionClass: "IP65",
		Features:        types.FeatureList{},
	}
	require.NoError(t, repo.InsertInverter(ctx, &inv))

	got, err := repo.GetInverter(ctx, inv.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Features, "an empty feature list must survive the round trip as empty, not null")
	assert.Empty(t, got.Features)
}

func TestAccessorySpecificationsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	acc := models.Accessory{
		Name:         "Wallbox Pulsar Plus",
		Category:     enums.AccessoryCategoryWallbox,
		Manufacturer: "Wallbox",
		Model:        "Pulsar Plus 11",
		Power:        11,
		Price:        749,
		Features:     types.FeatureList{"app control"},
		Description:  "11 kW home charger",
		Specifications: types.SpecMap{
			"cableLength": 5.0,
			"connector":   "Type 2",
		},
	}
	require.NoError(t, repo.InsertAccessory(ctx, &acc))

	got, err := repo.GetAccessory(ctx, acc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Specifications)
	assert.Equal(t, "Type 2", got.Specifications["connector"])
}

func TestListAccessoriesOrdersByCategoryManufacturerName(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	mk := func(name string, cat enums.AccessoryCategory, manufacturer string) models.Accessory {
		return models.Accessory{
			Name:         name,
			Category:     cat,
			Manufacturer: manufacturer,
			Model:        name,
			Power:        0,
			Price:        100,
			Description:  name,
		}
	}
	for _, a := range []models.Accessory{
		mk("Zigbee Meter", enums.AccessoryCategoryMonitoring, "Shelly"),
		mk("Pulsar Plus", enums.AccessoryCategoryWallbox, "Wallbox"),
		mk("Eco Tracker", enums.AccessoryCategoryMonitoring, "Everhome"),
	} {
		row := a
		require.NoError(t, repo.InsertAccessory(ctx, &row))
	}

	rows, err := repo.ListAccessories(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Eco Tracker", rows[0].Name)
	assert.Equal(t, "Zigbee Meter", rows[1].Name)
	assert.Equal(t, "Pulsar Plus", rows[2].Name)
}

func TestClearCategory(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	for i := 0; i < 3; i++ {
		m := testModule("Aiko", "Neostar 2S", 445)
		require.NoError(t, repo.InsertModule(ctx, &m))
	}

	n, err := repo.ClearCategory(ctx, enums.ImportCategoryModules)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	rows, err := repo.ListModules(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClearCategoryUnknown(t *testing.T) {
	repo := NewRepository(openTestClient(t))

	_, err := repo.ClearCategory(context.Background(), enums.ImportCategory("firmware"))
	require.Error(t, err)
	te := pkgerrors.As(err)
	require.NotNil(t, te)
	assert.Equal(t, pkgerrors.CodeUnknownCategory, te.Code())
}

func TestStatsCountsEveryCollection(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	m := testModule("Aiko", "Neostar 2S", 445)
	require.NoError(t, repo.InsertModule(ctx, &m))
	require.NoError(t, repo.InsertCompany(ctx, &models.Company{
		Name:    "Solartechnik Nord GmbH",
		Street:  "Hafenstr. 12",
		City:    "Hamburg",
		ZipCode: "20457",
		Phone:   "+49 40 1234567",
		Email:   "info@solartechnik-nord.de",
	}))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Modules)
	assert.Equal(t, int64(1), stats.Companies)
	assert.Equal(t, int64(0), stats.Inverters)
	assert.Equal(t, int64(0), stats.Projects)
}

func TestProjectReferencesCatalogRows(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(openTestClient(t))

	m := testModule("Aiko", "Neostar 2S", 445)
	require.NoError(t, repo.InsertModule(ctx, &m))

	p := models.Project{
		CustomerName:     "Familie Weber",
		Street:           "Lindenweg 4",
		City:             "Kiel",
		ZipCode:          "24103",
		AnlageKwp:        8.9,
		ModuleQuantity:   20,
		SelectedModule:   &m.ID,
		RoofOrientation:  180,
		RoofTilt:         35,
		InstallationType: "roof",
	}
	require.NoError(t, repo.InsertProject(ctx, &p))

	got, err := repo.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SelectedModule)
	assert.Equal(t, m.ID, *got.SelectedModule)
}

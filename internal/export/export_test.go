package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Greenkack/pvoffer-backend/internal/calc"
	"github.com/Greenkack/pvoffer-backend/pkg/config"
	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

func testService() *Service {
	return NewService(config.ExportConfig{CurrencyLabel: "EUR"})
}

func TestBuildCatalogXLSX(t *testing.T) {
	price := 0.17
	catalog := Catalog{
		Modules: []models.SolarModule{{
			ID:           "mod_1",
			Manufacturer: "Aiko",
			Model:        "Neostar 2S",
			PowerWp:      445,
			Efficiency:   22.3,
			Technology:   enums.ModuleTechnologyMono,
			Dimensions:   models.ModuleDimensions{Length: 1722, Width: 1134, Thickness: 30},
			Weight:       21.8,
			PricePerWp:   &price,
			Warranty:     models.ModuleWarranty{Product: 15, Performance: 25},
		}},
		Inverters: []models.Inverter{{
			ID:           "inv_1",
			Manufacturer: "Fronius",
			Model:        "Symo GEN24",
			Type:         enums.InverterTypeString,
			PowerKw:      10,
			Features:     types.FeatureList{"backup power", "integrated dc switch"},
		}},
		Companies: []models.Company{{
			ID:      "comp_1",
			Name:    "Solartechnik Nord GmbH",
			Street:  "Hafenstr. 12",
			City:    "Hamburg",
			ZipCode: "20457",
			Phone:   "+49 40 1234567",
			Email:   "info@solartechnik-nord.de",
		}},
	}

	out, err := testService().BuildCatalogXLSX(catalog)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"modules", "inverters", "storages", "accessories", "companies"}, f.GetSheetList())

	manufacturer, err := f.GetCellValue("modules", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Aiko", manufacturer)

	features, err := f.GetCellValue("inverters", "R2")
	require.NoError(t, err)
	assert.Equal(t, "backup power, integrated dc switch", features)

	zip, err := f.GetCellValue("companies", "D2")
	require.NoError(t, err)
	assert.Equal(t, "20457", zip)
}

func TestBuildCatalogXLSXEmptyCatalog(t *testing.T) {
	out, err := testService().BuildCatalogXLSX(Catalog{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("storages", "A1")
	require.NoError(t, err)
	assert.Equal(t, "manufacturer", header)
}

func TestBuildOfferPDF(t *testing.T) {
	storage := 10.0
	website := "https://solartechnik-nord.de"
	offer := Offer{
		Project: calc.ProjectData{
			CustomerData: calc.CustomerData{
				CustomerName: "Familie Weber",
				Street:       "Lindenweg 4",
				City:         "Kiel",
				ZipCode:      "24103",
			},
			ProjectDetails: calc.ProjectDetails{
				AnlageKwp:          8.9,
				ModuleQuantity:     20,
				RoofOrientation:    180,
				RoofTilt:           35,
				StorageCapacityKwh: &storage,
			},
		},
		Company: &models.Company{
			Name:    "Solartechnik Nord GmbH",
			Street:  "Hafenstr. 12",
			City:    "Hamburg",
			ZipCode: "20457",
			Phone:   "+49 40 1234567",
			Email:   "info@solartechnik-nord.de",
			Website: &website,
		},
		Analysis: &calc.AnalysisResults{
			AnlageKwp:                8.9,
			AnnualPvProductionKwh:    8450,
			SpecificYieldKwhPerKwp:   949,
			SelfConsumptionPercent:   38.5,
			AutarkyPercent:           61.2,
			TotalInvestmentNetto:     15800,
			TotalInvestmentBrutto:    18802,
			AnnualElectricitySavings: 1240,
			AmortizationTimeYears:    12.7,
			Co2AvoidancePerYearTons:  3.2,
		},
	}

	out, err := testService().BuildOfferPDF(offer)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output must start with a PDF header")
}

func TestBuildOfferPDFWithoutAnalysis(t *testing.T) {
	offer := Offer{
		Project: calc.ProjectData{
			CustomerData: calc.CustomerData{CustomerName: "Familie Weber", City: "Kiel", ZipCode: "24103"},
		},
	}

	out, err := testService().BuildOfferPDF(offer)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

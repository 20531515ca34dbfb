package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/Greenkack/pvoffer-backend/internal/calc"
	"github.com/Greenkack/pvoffer-backend/pkg/config"
	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
)

// Catalog bundles every collection for a full catalog workbook export.
type Catalog struct {
	Modules     []models.SolarModule
	Inverters   []models.Inverter
	Storages    []models.Storage
	Accessories []models.Accessory
	Companies   []models.Company
}

// Service renders offer PDFs and catalog workbooks.
type Service struct {
	cfg config.ExportConfig
}

// NewService builds an export service.
func NewService(cfg config.ExportConfig) *Service {
	return &Service{cfg: cfg}
}

// BuildCatalogXLSX renders the whole catalog as a workbook with one sheet per
// collection. The column layout matches the import header names so an export
// can be re-imported unchanged.
func (s *Service) BuildCatalogXLSX(catalog Catalog) ([]byte, error) {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", "modules")
	_ = f.SetSheetRow("modules", "A1", &[]any{
		"manufacturer", "model", "powerWp", "efficiency", "technology",
		"dimensions_length", "dimensions_width", "dimensions_thickness", "weight",
		"pricePerWp", "warranty_product", "warranty_performance",
		"temperatureCoefficient", "maxSystemVoltage", "shortCircuitCurrent", "openCircuitVoltage",
	})
	for i, m := range catalog.Modules {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow("modules", cell, &[]any{
			m.Manufacturer, m.Model, m.PowerWp, m.Efficiency, m.Technology.String(),
			m.Dimensions.Length, m.Dimensions.Width, m.Dimensions.Thickness, m.Weight,
			deref(m.PricePerWp), m.Warranty.Product, m.Warranty.Performance,
			m.TemperatureCoefficient, m.MaxSystemVoltage, m.ShortCircuitCurrent, m.OpenCircuitVoltage,
		})
	}

	_, _ = f.NewSheet("inverters")
	_ = f.SetSheetRow("inverters", "A1", &[]any{
		"manufacturer", "model", "type", "powerKw", "efficiency",
		"maxDcVoltage", "startupVoltage", "mpptChannels", "maxDcCurrent", "acVoltage",
		"price", "warranty", "dimensions_length", "dimensions_width", "dimensions_height",
		"weight", "protectionClass", "features",
	})
	for i, inv := range catalog.Inverters {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow("inverters", cell, &[]any{
			inv.Manufacturer, inv.Model, inv.Type.String(), inv.PowerKw, inv.Efficiency,
			inv.MaxDcVoltage, inv.StartupVoltage, inv.MpptChannels, inv.MaxDcCurrent, inv.AcVoltage,
			deref(inv.Price), inv.Warranty, inv.Dimensions.Length, inv.Dimensions.Width, inv.Dimensions.Height,
			inv.Weight, inv.ProtectionClass, joinFeatures(inv.Features),
		})
	}

	_, _ = f.NewSheet("storages")
	_ = f.SetSheetRow("storages", "A1", &[]any{
		"manufacturer", "model", "type", "capacity", "usableCapacity", "powerKw",
		"efficiency", "cycleLife", "voltage", "technology", "price",
		"warranty_product", "warranty_cycles", "dimensions_length", "dimensions_width",
		"dimensions_height", "weight", "temperatureRange_min", "temperatureRange_max", "features",
	})
	for i, st := range catalog.Storages {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow("storages", cell, &[]any{
			st.Manufacturer, st.Model, st.Type.String(), st.Capacity, st.UsableCapacity, st.PowerKw,
			st.Efficiency, st.CycleLife, st.Voltage, st.Technology.String(), deref(st.Price),
			st.Warranty.Product, st.Warranty.Cycles, st.Dimensions.Length, st.Dimensions.Width,
			st.Dimensions.Height, st.Weight, st.TemperatureRange.Min, st.TemperatureRange.Max, joinFeatures(st.Features),
		})
	}

	_, _ = f.NewSheet("accessories")
	_ = f.SetSheetRow("accessories", "A1", &[]any{
		"name", "category", "manufacturer", "model", "power", "price", "features", "description",
	})
	for i, a := range catalog.Accessories {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow("accessories", cell, &[]any{
			a.Name, a.Category.String(), a.Manufacturer, a.Model, a.Power, a.Price,
			joinFeatures(a.Features), a.Description,
		})
	}

	_, _ = f.NewSheet("companies")
	_ = f.SetSheetRow("companies", "A1", &[]any{
		"name", "street", "city", "zipCode", "phone", "email", "website",
	})
	for i, c := range catalog.Companies {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow("companies", cell, &[]any{
			c.Name, c.Street, c.City, c.ZipCode, c.Phone, c.Email, derefStr(c.Website),
		})
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Offer is everything the PDF needs: the configured project, the company
// issuing the offer and the engine's analysis.
type Offer struct {
	Project  calc.ProjectData
	Company  *models.Company
	Analysis *calc.AnalysisResults
}

// BuildOfferPDF renders a one-page offer summary.
func (s *Service) BuildOfferPDF(offer Offer) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Photovoltaic System Offer")
	pdf.Ln(12)

	if offer.Company != nil {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, offer.Company.Name)
		pdf.Ln(5)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("%s, %s %s", offer.Company.Street, offer.Company.ZipCode, offer.Company.City))
		pdf.Ln(5)
		pdf.Cell(0, 6, fmt.Sprintf("%s | %s", offer.Company.Phone, offer.Company.Email))
		pdf.Ln(8)
	}

	customer := offer.Project.CustomerData
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Customer: %s", customer.CustomerName))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("%s, %s %s", customer.Street, customer.ZipCode, customer.City))
	pdf.Ln(8)

	details := offer.Project.ProjectDetails
	pdf.Cell(0, 6, fmt.Sprintf("System size: %.2f kWp (%d modules)", details.AnlageKwp, details.ModuleQuantity))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Roof: %.0f degrees orientation, %.0f degrees tilt", details.RoofOrientation, details.RoofTilt))
	pdf.Ln(5)
	if details.StorageCapacityKwh != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Storage: %.1f kWh", *details.StorageCapacityKwh))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	if offer.Analysis != nil {
		a := offer.Analysis
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(90, 6, "Key figure", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, "Value", "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		rows := []struct {
			label string
			value string
		}{
			{"Annual production", fmt.Sprintf("%.0f kWh", a.AnnualPvProductionKwh)},
			{"Specific yield", fmt.Sprintf("%.0f kWh/kWp", a.SpecificYieldKwhPerKwp)},
			{"Self-consumption", fmt.Sprintf("%.1f %%", a.SelfConsumptionPercent)},
			{"Autarky", fmt.Sprintf("%.1f %%", a.AutarkyPercent)},
			{"Total investment (net)", fmt.Sprintf("%.2f %s", a.TotalInvestmentNetto, s.cfg.CurrencyLabel)},
			{"Total investment (gross)", fmt.Sprintf("%.2f %s", a.TotalInvestmentBrutto, s.cfg.CurrencyLabel)},
			{"Annual savings", fmt.Sprintf("%.2f %s", a.AnnualElectricitySavings, s.cfg.CurrencyLabel)},
			{"Amortization", fmt.Sprintf("%.1f years", a.AmortizationTimeYears)},
			{"CO2 avoided per year", fmt.Sprintf("%.2f t", a.Co2AvoidancePerYearTons)},
		}
		for _, row := range rows {
			pdf.CellFormat(90, 6, row.label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, row.value, "1", 0, "R", false, 0, "")
			pdf.Ln(-1)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func deref(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func derefStr(v *string) any {
	if v == nil {
		return ""
	}
	return *v
}

func joinFeatures(features []string) string {
	return strings.Join(features, ", ")
}

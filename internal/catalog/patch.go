package catalog

import (
	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

// ModulePatch holds optional mutation values for a solar module. Nil fields
// are left untouched.
type ModulePatch struct {
	Manufacturer           *string
	Model                  *string
	PowerWp                *float64
	Efficiency             *float64
	Technology             *enums.ModuleTechnology
	DimensionsLength       *float64
	DimensionsWidth        *float64
	DimensionsThickness    *float64
	Weight                 *float64
	PricePerWp             *float64
	WarrantyProduct        *int
	WarrantyPerformance    *int
	TemperatureCoefficient *float64
	MaxSystemVoltage       *float64
	ShortCircuitCurrent    *float64
	OpenCircuitVoltage     *float64
}

func (p ModulePatch) fields() map[string]any {
	out := map[string]any{}
	setField(out, "manufacturer", p.Manufacturer)
	setField(out, "model", p.Model)
	setField(out, "powerWp", p.PowerWp)
	setField(out, "efficiency", p.Efficiency)
	setField(out, "technology", p.Technology)
	setField(out, "dimensions_length", p.DimensionsLength)
	setField(out, "dimensions_width", p.DimensionsWidth)
	setField(out, "dimensions_thickness", p.DimensionsThickness)
	setField(out, "weight", p.Weight)
	setField(out, "pricePerWp", p.PricePerWp)
	setField(out, "warranty_product", p.WarrantyProduct)
	setField(out, "warranty_performance", p.WarrantyPerformance)
	setField(out, "temperatureCoefficient", p.TemperatureCoefficient)
	setField(out, "maxSystemVoltage", p.MaxSystemVoltage)
	setField(out, "shortCircuitCurrent", p.ShortCircuitCurrent)
	setField(out, "openCircuitVoltage", p.OpenCircuitVoltage)
	return out
}

// InverterPatch holds optional mutation values for an inverter.
type InverterPatch struct {
	Manufacturer     *string
	Model            *string
	Type             *enums.InverterType
	PowerKw          *float64
	Efficiency       *float64
	MaxDcVoltage     *float64
	StartupVoltage   *float64
	MpptChannels     *int
	MaxDcCurrent     *float64
	AcVoltage        *float64
	Price            *float64
	Warranty         *int
	DimensionsLength *float64
	DimensionsWidth  *float64
	DimensionsHeight *float64
	Weight           *float64
	ProtectionClass  *string
	Features         *types.FeatureList
}

func (p InverterPatch) fields() map[string]any {
	out := map[string]any{}
	setField(out, "manufacturer", p.Manufacturer)
	setField(out, "model", p.Model)
	setField(out, "type", p.Type)
	setField(out, "powerKw", p.PowerKw)
	setField(out, "efficiency", p.Efficiency)
	setField(out, "maxDcVoltage", p.MaxDcVoltage)
	setField(out, "startupVoltage", p.StartupVoltage)
	setField(out, "mpptChannels", p.MpptChannels)
	setField(out, "maxDcCurrent", p.MaxDcCurrent)
	setField(out, "acVoltage", p.AcVoltage)
	setField(out, "price", p.Price)
	setField(out, "warranty", p.Warranty)
	setField(out, "dimensions_length", p.DimensionsLength)
	setField(out, "dimensions_width", p.DimensionsWidth)
	setField(out, "dimensions_height", p.DimensionsHeight)
	setField(out, "weight", p.Weight)
	setField(out, "protectionClass", p.ProtectionClass)
	setField(out, "features", p.Features)
	return out
}

// StoragePatch holds optional mutation values for a battery storage unit.
type StoragePatch struct {
	Manufacturer        *string
	Model               *string
	Type                *enums.StorageType
	Capacity            *float64
	UsableCapacity      *float64
	PowerKw             *float64
	Efficiency          *float64
	CycleLife           *int
	Voltage             *float64
	Technology          *enums.StorageTechnology
	Price               *float64
	WarrantyProduct     *int
	WarrantyCycles      *int
	DimensionsLength    *float64
	DimensionsWidth     *float64
	DimensionsHeight    *float64
	Weight              *float64
	TemperatureRangeMin *float64
	TemperatureRangeMax *float64
	Features            *types.FeatureList
}

func (p StoragePatch) fields() map[string]any {
	out := map[string]any{}
	setField(out, "manufacturer", p.Manufacturer)
	setField(out, "model", p.Model)
	setField(out, "type", p.Type)
	setField(out, "capacity", p.Capacity)
	setField(out, "usableCapacity", p.UsableCapacity)
	setField(out, "powerKw", p.PowerKw)
	setField(out, "efficiency", p.Efficiency)
	setField(out, "cycleLife", p.CycleLife)
	setField(out, "voltage", p.Voltage)
	setField(out, "technology", p.Technology)
	setField(out, "price", p.Price)
	setField(out, "warranty_product", p.WarrantyProduct)
	setField(out, "warranty_cycles", p.WarrantyCycles)
	setField(out, "dimensions_length", p.DimensionsLength)
	setField(out, "dimensions_width", p.DimensionsWidth)
	setField(out, "dimensions_height", p.DimensionsHeight)
	setField(out, "weight", p.Weight)
	setField(out, "temperatureRange_min", p.TemperatureRangeMin)
	setField(out, "temperatureRange_max", p.TemperatureRangeMax)
	setField(out, "features", p.Features)
	return out
}

// AccessoryPatch holds optional mutation values for an accessory.
type AccessoryPatch struct {
	Name           *string
	Category       *enums.AccessoryCategory
	Manufacturer   *string
	Model          *string
	Power          *float64
	Price          *float64
	Features       *types.FeatureList
	Description    *string
	Specifications *types.SpecMap
}

func (p AccessoryPatch) fields() map[string]any {
	out := map[string]any{}
	setField(out, "name", p.Name)
	setField(out, "category", p.Category)
	setField(out, "manufacturer", p.Manufacturer)
	setField(out, "model", p.Model)
	setField(out, "power", p.Power)
	setField(out, "price", p.Price)
	setField(out, "features", p.Features)
	setField(out, "description", p.Description)
	setField(out, "specifications", p.Specifications)
	return out
}

// CompanyPatch holds optional mutation values for a company.
type CompanyPatch struct {
	Name              *string
	Street            *string
	City              *string
	ZipCode           *string
	Phone             *string
	Email             *string
	Website           *string
	LogoBase64        *string
	UmsatzsteuerNr    *string
	Handelsregister   *string
	Geschaeftsfuehrer *string
	BankName          *string
	IBAN              *string
	BIC               *string
}

func (p CompanyPatch) fields() map[string]any {
	out := map[string]any{}
	setField(out, "name", p.Name)
	setField(out, "street", p.Street)
	setField(out, "city", p.City)
	setField(out, "zipCode", p.ZipCode)
	setField(out, "phone", p.Phone)
	setField(out, "email", p.Email)
	setField(out, "website", p.Website)
	setField(out, "logoBase64", p.LogoBase64)
	setField(out, "umsatzsteuerNr", p.UmsatzsteuerNr)
	setField(out, "handelsregister", p.Handelsregister)
	setField(out, "geschaeftsfuehrer", p.Geschaeftsfuehrer)
	setField(out, "bankName", p.BankName)
	setField(out, "iban", p.IBAN)
	setField(out, "bic", p.BIC)
	return out
}

func setField[T any](out map[string]any, column string, value *T) {
	if value != nil {
		out[column] = *value
	}
}

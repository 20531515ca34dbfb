package importer

import (
	"regexp"

	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateModule returns every rule violation for a mapped solar module.
func ValidateModule(m models.SolarModule) []string {
	var errs []string
	if m.Manufacturer == "" {
		errs = append(errs, "Manufacturer is required")
	}
	if m.Model == "" {
		errs = append(errs, "Model is required")
	}
	if m.PowerWp <= 0 {
		errs = append(errs, "PowerWp must be greater than 0")
	}
	if m.Efficiency <= 0 || m.Efficiency > 100 {
		errs = append(errs, "Efficiency must be between 0 and 100")
	}
	if !m.Technology.IsValid() {
		errs = append(errs, "Technology must be mono, poly, or thin-film")
	}
	if m.Dimensions.Length <= 0 {
		errs = append(errs, "Length must be greater than 0")
	}
	if m.Dimensions.Width <= 0 {
		errs = append(errs, "Width must be greater than 0")
	}
	if m.Dimensions.Thickness <= 0 {
		errs = append(errs, "Thickness must be greater than 0")
	}
	if m.Weight <= 0 {
		errs = append(errs, "Weight must be greater than 0")
	}
	if m.Warranty.Product <= 0 {
		errs = append(errs, "Product warranty must be greater than 0")
	}
	if m.Warranty.Performance <= 0 {
		errs = append(errs, "Performance warranty must be greater than 0")
	}
	if m.MaxSystemVoltage <= 0 {
		errs = append(errs, "Max system voltage must be greater than 0")
	}
	if m.ShortCircuitCurrent <= 0 {
		errs = append(errs, "Short circuit current must be greater than 0")
	}
	if m.OpenCircuitVoltage <= 0 {
		errs = append(errs, "Open circuit voltage must be greater than 0")
	}
	return errs
}

// ValidateInverter returns every rule violation for a mapped inverter.
func ValidateInverter(inv models.Inverter) []string {
	var errs []string
	if inv.Manufacturer == "" {
		errs = append(errs, "Manufacturer is required")
	}
	if inv.Model == "" {
		errs = append(errs, "Model is required")
	}
	if !inv.Type.IsValid() {
		errs = append(errs, "Type must be string, central, micro, or power-optimizer")
	}
	if inv.PowerKw <= 0 {
		errs = append(errs, "PowerKw must be greater than 0")
	}
	if inv.Efficiency <= 0 || inv.Efficiency > 100 {
		errs = append(errs, "Efficiency must be between 0 and 100")
	}
	if inv.MaxDcVoltage <= 0 {
		errs = append(errs, "Max DC voltage must be greater than 0")
	}
	if inv.StartupVoltage <= 0 {
		errs = append(errs, "Startup voltage must be greater than 0")
	}
	if inv.MpptChannels <= 0 {
		errs = append(errs, "MPPT channels must be greater than 0")
	}
	if inv.MaxDcCurrent <= 0 {
		errs = append(errs, "Max DC current must be greater than 0")
	}
	if inv.AcVoltage <= 0 {
		errs = append(errs, "AC voltage must be greater than 0")
	}
	if inv.Warranty <= 0 {
		errs = append(errs, "Warranty must be greater than 0")
	}
	if inv.Dimensions.Length <= 0 {
		errs = append(errs, "Length must be greater than 0")
	}
	if inv.Dimensions.Width <= 0 {
		errs = append(errs, "Width must be greater than 0")
	}
	if inv.Dimensions.Height <= 0 {
		errs = append(errs, "Height must be greater than 0")
	}
	if inv.Weight <= 0 {
		errs = append(errs, "Weight must be greater than 0")
	}
	if inv.ProtectionClass == "" {
		errs = append(errs, "Protection class is required")
	}
	return errs
}

// ValidateStorage returns every rule violation for a mapped storage unit.
func ValidateStorage(s models.Storage) []string {
	var errs []string
	if s.Manufacturer == "" {
		errs = append(errs, "Manufacturer is required")
	}
	if s.Model == "" {
		errs = append(errs, "Model is required")
	}
	if !s.Type.IsValid() {
		errs = append(errs, "Type must be AC or DC")
	}
	if s.Capacity <= 0 {
		errs = append(errs, "Capacity must be greater than 0")
	}
	if s.UsableCapacity <= 0 {
		errs = append(errs, "Usable capacity must be greater than 0")
	}
	if s.UsableCapacity > s.Capacity {
		errs = append(errs, "Usable capacity cannot be greater than total capacity")
	}
	if s.PowerKw <= 0 {
		errs = append(errs, "PowerKw must be greater than 0")
	}
	if s.Efficiency <= 0 || s.Efficiency > 100 {
		errs = append(errs, "Efficiency must be between 0 and 100")
	}
	if s.CycleLife <= 0 {
		errs = append(errs, "Cycle life must be greater than 0")
	}
	if s.Voltage <= 0 {
		errs = append(errs, "Voltage must be greater than 0")
	}
	if !s.Technology.IsValid() {
		errs = append(errs, "Technology must be LiFePO4, Li-Ion, or Lead-Acid")
	}
	if s.Warranty.Product <= 0 {
		errs = append(errs, "Product warranty must be greater than 0")
	}
	if s.Warranty.Cycles <= 0 {
		errs = append(errs, "Cycles warranty must be greater than 0")
	}
	if s.Dimensions.Length <= 0 {
		errs = append(errs, "Length must be greater than 0")
	}
	if s.Dimensions.Width <= 0 {
		errs = append(errs, "Width must be greater than 0")
	}
	if s.Dimensions.Height <= 0 {
		errs = append(errs, "Height must be greater than 0")
	}
	if s.Weight <= 0 {
		errs = append(errs, "Weight must be greater than 0")
	}
	if s.TemperatureRange.Min >= s.TemperatureRange.Max {
		errs = append(errs, "Min temperature must be less than max temperature")
	}
	return errs
}

// ValidateAccessory returns every rule violation for a mapped accessory.
func ValidateAccessory(a models.Accessory) []string {
	var errs []string
	if a.Name == "" {
		errs = append(errs, "Name is required")
	}
	if !a.Category.IsValid() {
		errs = append(errs, "Category must be wallbox, monitoring, energy_management, optimizer, safety, or installation")
	}
	if a.Manufacturer == "" {
		errs = append(errs, "Manufacturer is required")
	}
	if a.Model == "" {
		errs = append(errs, "Model is required")
	}
	if a.Power < 0 {
		errs = append(errs, "Power cannot be negative")
	}
	if a.Price <= 0 {
		errs = append(errs, "Price must be greater than 0")
	}
	if a.Description == "" {
		errs = append(errs, "Description is required")
	}
	return errs
}

// ValidateCompany returns every rule violation for a mapped company.
func ValidateCompany(c models.Company) []string {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "Name is required")
	}
	if c.Street == "" {
		errs = append(errs, "Street is required")
	}
	if c.City == "" {
		errs = append(errs, "City is required")
	}
	if c.ZipCode == "" {
		errs = append(errs, "ZIP code is required")
	}
	if c.Phone == "" {
		errs = append(errs, "Phone is required")
	}
	if c.Email == "" {
		errs = append(errs, "Email is required")
	} else if !emailPattern.MatchString(c.Email) {
		errs = append(errs, "Invalid email format")
	}
	return errs
}

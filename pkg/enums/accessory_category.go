package enums

import "fmt"

// AccessoryCategory groups catalog accessories by purpose.
type AccessoryCategory string

const (
	AccessoryCategoryWallbox          AccessoryCategory = "wallbox"
	AccessoryCategoryMonitoring       AccessoryCategory = "monitoring"
	AccessoryCategoryEnergyManagement AccessoryCategory = "energy_management"
	AccessoryCategoryOptimizer        AccessoryCategory = "optimizer"
	AccessoryCategorySafety           AccessoryCategory = "safety"
	AccessoryCategoryInstallation     AccessoryCategory = "installation"
)

var validAccessoryCategories = []AccessoryCategory{
	AccessoryCategoryWallbox,
	AccessoryCategoryMonitoring,
	AccessoryCategoryEnergyManagement,
	AccessoryCategoryOptimizer,
	AccessoryCategorySafety,
	AccessoryCategoryInstallation,
}

// String implements fmt.Stringer.
func (a AccessoryCategory) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AccessoryCategory.
func (a AccessoryCategory) IsValid() bool {
	for _, candidate := range validAccessoryCategories {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAccessoryCategory converts raw input into an AccessoryCategory.
func ParseAccessoryCategory(value string) (AccessoryCategory, error) {
	for _, candidate := range validAccessoryCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid accessory category %q", value)
}

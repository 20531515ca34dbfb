package enums

import "fmt"

// ImportCategory names a catalog collection that spreadsheet rows can be
// imported into.
type ImportCategory string

const (
	ImportCategoryModules     ImportCategory = "modules"
	ImportCategoryInverters   ImportCategory = "inverters"
	ImportCategoryStorages    ImportCategory = "storages"
	ImportCategoryAccessories ImportCategory = "accessories"
	ImportCategoryCompanies   ImportCategory = "companies"
)

var validImportCategories = []ImportCategory{
	ImportCategoryModules,
	ImportCategoryInverters,
	ImportCategoryStorages,
	ImportCategoryAccessories,
	ImportCategoryCompanies,
}

var importCategoryIDPrefixes = map[ImportCategory]string{
	ImportCategoryModules:     "mod",
	ImportCategoryInverters:   "inv",
	ImportCategoryStorages:    "stor",
	ImportCategoryAccessories: "acc",
	ImportCategoryCompanies:   "comp",
}

// String implements fmt.Stringer.
func (i ImportCategory) String() string {
	return string(i)
}

// IsValid reports whether the value is a known ImportCategory.
func (i ImportCategory) IsValid() bool {
	for _, candidate := range validImportCategories {
		if candidate == i {
			return true
		}
	}
	return false
}

// IDPrefix returns the identifier prefix used for rows in this category.
func (i ImportCategory) IDPrefix() string {
	return importCategoryIDPrefixes[i]
}

// ParseImportCategory converts raw input into an ImportCategory.
func ParseImportCategory(value string) (ImportCategory, error) {
	for _, candidate := range validImportCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid import category %q", value)
}

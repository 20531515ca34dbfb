package enums

import "fmt"

// ModuleTechnology identifies the cell technology of a solar module.
type ModuleTechnology string

const (
	ModuleTechnologyMono     ModuleTechnology = "mono"
	ModuleTechnologyPoly     ModuleTechnology = "poly"
	ModuleTechnologyThinFilm ModuleTechnology = "thin-film"
)

var validModuleTechnologies = []ModuleTechnology{
	ModuleTechnologyMono,
	ModuleTechnologyPoly,
	ModuleTechnologyThinFilm,
}

// String implements fmt.Stringer.
func (m ModuleTechnology) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ModuleTechnology.
func (m ModuleTechnology) IsValid() bool {
	for _, candidate := range validModuleTechnologies {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseModuleTechnology converts raw input into a ModuleTechnology.
func ParseModuleTechnology(value string) (ModuleTechnology, error) {
	for _, candidate := range validModuleTechnologies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid module technology %q", value)
}

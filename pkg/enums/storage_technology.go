package enums

import "fmt"

// StorageTechnology identifies the battery chemistry of a storage unit.
type StorageTechnology string

const (
	StorageTechnologyLiFePO4  StorageTechnology = "LiFePO4"
	StorageTechnologyLiIon    StorageTechnology = "Li-Ion"
	StorageTechnologyLeadAcid StorageTechnology = "Lead-Acid"
)

var validStorageTechnologies = []StorageTechnology{
	StorageTechnologyLiFePO4,
	StorageTechnologyLiIon,
	StorageTechnologyLeadAcid,
}

// String implements fmt.Stringer.
func (s StorageTechnology) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StorageTechnology.
func (s StorageTechnology) IsValid() bool {
	for _, candidate := range validStorageTechnologies {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStorageTechnology converts raw input into a StorageTechnology.
func ParseStorageTechnology(value string) (StorageTechnology, error) {
	for _, candidate := range validStorageTechnologies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid storage technology %q", value)
}

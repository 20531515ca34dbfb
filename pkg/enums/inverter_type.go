package enums

import "fmt"

// InverterType identifies the topology of an inverter.
type InverterType string

const (
	InverterTypeString         InverterType = "string"
	InverterTypeCentral        InverterType = "central"
	InverterTypeMicro          InverterType = "micro"
	InverterTypePowerOptimizer InverterType = "power-optimizer"
)

var validInverterTypes = []InverterType{
	InverterTypeString,
	InverterTypeCentral,
	InverterTypeMicro,
	InverterTypePowerOptimizer,
}

// String implements fmt.Stringer.
func (i InverterType) String() string {
	return string(i)
}

// IsValid reports whether the value is a known InverterType.
func (i InverterType) IsValid() bool {
	for _, candidate := range validInverterTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInverterType converts raw input into an InverterType.
func ParseInverterType(value string) (InverterType, error) {
	for _, candidate := range validInverterTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inverter type %q", value)
}

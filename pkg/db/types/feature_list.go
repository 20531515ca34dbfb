package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// FeatureList stores a list of feature labels as a single comma separated
// text column.
type FeatureList []string

func (f FeatureList) Value() (driver.Value, error) {
	if len(f) == 0 {
		return "", nil
	}
	return strings.Join(f, ","), nil
}

func (f *FeatureList) Scan(src any) error {
	if src == nil {
		*f = FeatureList{}
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported feature list type %T", src)
	}

	// An empty column is an empty list, not a missing one; rows written with
	// no features must read back as [] rather than null.
	if strings.TrimSpace(raw) == "" {
		*f = FeatureList{}
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make(FeatureList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*f = out
	return nil
}

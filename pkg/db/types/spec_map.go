package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// SpecMap stores free-form technical specifications as a JSON text column.
// Unreadable stored payloads scan to nil rather than failing the row.
type SpecMap map[string]any

func (s SpecMap) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding specifications: %w", err)
	}
	return string(raw), nil
}

func (s *SpecMap) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported specifications type %T", src)
	}

	if strings.TrimSpace(string(raw)) == "" {
		*s = nil
		return nil
	}

	var out SpecMap
	if err := json.Unmarshal(raw, &out); err != nil {
		*s = nil
		return nil
	}
	*s = out
	return nil
}

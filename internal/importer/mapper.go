package importer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

// rowReader reads typed fields from a row and remembers the first failure,
// so mapping stops at the first malformed field the way imports always have.
type rowReader struct {
	row Row
	err error
}

func (r *rowReader) str(key string) string {
	if r.err != nil {
		return ""
	}
	v, ok := r.row[key]
	if !ok || v.IsEmpty() {
		r.err = fmt.Errorf("Missing required field: %s", key)
		return ""
	}
	return strings.TrimSpace(v.String())
}

func (r *rowReader) optionalStr(key string) *string {
	if r.err != nil {
		return nil
	}
	v, ok := r.row[key]
	if !ok || v.IsEmpty() {
		return nil
	}
	s := strings.TrimSpace(v.String())
	return &s
}

func (r *rowReader) num(key string) float64 {
	if r.err != nil {
		return 0
	}
	v, ok := r.row[key]
	if !ok || v.IsEmpty() {
		r.err = fmt.Errorf("Missing required field: %s", key)
		return 0
	}
	n, ok := v.Number()
	if !ok {
		r.err = fmt.Errorf("Invalid number format for field: %s", key)
		return 0
	}
	return n
}

func (r *rowReader) optionalNum(key string) *float64 {
	if r.err != nil {
		return nil
	}
	v, ok := r.row[key]
	if !ok || v.IsEmpty() {
		return nil
	}
	n, ok := v.Number()
	if !ok {
		r.err = fmt.Errorf("Invalid number format for field: %s", key)
		return nil
	}
	return &n
}

func (r *rowReader) intVal(key string) int {
	return int(r.num(key))
}

func (r *rowReader) features(key string) types.FeatureList {
	if r.err != nil {
		return nil
	}
	v, ok := r.row[key]
	if !ok || v.IsEmpty() {
		return types.FeatureList{}
	}
	parts := strings.Split(v.String(), ",")
	out := make(types.FeatureList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// specs parses a JSON cell into a spec map; malformed JSON is dropped rather
// than failing the row.
func (r *rowReader) specs(key string) types.SpecMap {
	if r.err != nil {
		return nil
	}
	v, ok := r.row[key]
	if !ok || v.IsEmpty() {
		return nil
	}
	var out types.SpecMap
	if err := json.Unmarshal([]byte(v.String()), &out); err != nil {
		return nil
	}
	return out
}

// MapModule converts a spreadsheet row into a solar module.
func MapModule(row Row) (models.SolarModule, error) {
	r := &rowReader{row: row}
	m := models.SolarModule{
		Manufacturer: r.str("manufacturer"),
		Model:        r.str("model"),
		PowerWp:      r.num("powerWp"),
		Efficiency:   r.num("efficiency"),
		Technology:   enums.ModuleTechnology(r.str("technology")),
		Dimensions: models.ModuleDimensions{
			Length:    r.num("dimensions_length"),
			Width:     r.num("dimensions_width"),
			Thickness: r.num("dimensions_thickness"),
		},
		Weight:     r.num("weight"),
		PricePerWp: r.optionalNum("pricePerWp"),
		Warranty: models.ModuleWarranty{
			Product:     r.intVal("warranty_product"),
			Performance: r.intVal("warranty_performance"),
		},
		TemperatureCoefficient: r.num("temperatureCoefficient"),
		MaxSystemVoltage:       r.num("maxSystemVoltage"),
		ShortCircuitCurrent:    r.num("shortCircuitCurrent"),
		OpenCircuitVoltage:     r.num("openCircuitVoltage"),
	}
	return m, r.err
}

// MapInverter converts a spreadsheet row into an inverter.
func MapInverter(row Row) (models.Inverter, error) {
	r := &rowReader{row: row}
	inv := models.Inverter{
		Manufacturer:   r.str("manufacturer"),
		Model:          r.str("model"),
		Type:           enums.InverterType(r.str("type")),
		PowerKw:        r.num("powerKw"),
		Efficiency:     r.num("efficiency"),
		MaxDcVoltage:   r.num("maxDcVoltage"),
		StartupVoltage: r.num("startupVoltage"),
		MpptChannels:   r.intVal("mpptChannels"),
		MaxDcCurrent:   r.num("maxDcCurrent"),
		AcVoltage:      r.num("acVoltage"),
		Price:          r.optionalNum("price"),
		Warranty:       r.intVal("warranty"),
		Dimensions: models.UnitDimensions{
			Length: r.num("dimensions_length"),
			Width:  r.num("dimensions_width"),
			Height: r.num("dimensions_height"),
		},
		Weight:          r.num("weight"),
		ProtectionClass: r.str("protectionClass"),
		Features:        r.features("features"),
	}
	return inv, r.err
}

// MapStorage converts a spreadsheet row into a battery storage unit.
func MapStorage(row Row) (models.Storage, error) {
	r := &rowReader{row: row}
	s := models.Storage{
		Manufacturer:   r.str("manufacturer"),
		Model:          r.str("model"),
		Type:           enums.StorageType(r.str("type")),
		Capacity:       r.num("capacity"),
		UsableCapacity: r.num("usableCapacity"),
		PowerKw:        r.num("powerKw"),
		Efficiency:     r.num("efficiency"),
		CycleLife:      r.intVal("cycleLife"),
		Voltage:        r.num("voltage"),
		Technology:     enums.StorageTechnology(r.str("technology")),
		Price:          r.optionalNum("price"),
		Warranty: models.StorageWarranty{
			Product: r.intVal("warranty_product"),
			Cycles:  r.intVal("warranty_cycles"),
		},
		Dimensions: models.UnitDimensions{
			Length: r.num("dimensions_length"),
			Width:  r.num("dimensions_width"),
			Height: r.num("dimensions_height"),
		},
		Weight: r.num("weight"),
		TemperatureRange: models.TemperatureRange{
			Min: r.num("temperatureRange_min"),
			Max: r.num("temperatureRange_max"),
		},
		Features: r.features("features"),
	}
	return s, r.err
}

// MapAccessory converts a spreadsheet row into an accessory.
func MapAccessory(row Row) (models.Accessory, error) {
	r := &rowReader{row: row}
	a := models.Accessory{
		Name:           r.str("name"),
		Category:       enums.AccessoryCategory(r.str("category")),
		Manufacturer:   r.str("manufacturer"),
		Model:          r.str("model"),
		Power:          r.num("power"),
		Price:          r.num("price"),
		Features:       r.features("features"),
		Description:    r.str("description"),
		Specifications: r.specs("specifications"),
	}
	return a, r.err
}

// MapCompany converts a spreadsheet row into a company.
func MapCompany(row Row) (models.Company, error) {
	r := &rowReader{row: row}
	c := models.Company{
		Name:              r.str("name"),
		Street:            r.str("street"),
		City:              r.str("city"),
		ZipCode:           r.str("zipCode"),
		Phone:             r.str("phone"),
		Email:             r.str("email"),
		Website:           r.optionalStr("website"),
		LogoBase64:        r.optionalStr("logoBase64"),
		UmsatzsteuerNr:    r.optionalStr("umsatzsteuerNr"),
		Handelsregister:   r.optionalStr("handelsregister"),
		Geschaeftsfuehrer: r.optionalStr("geschaeftsfuehrer"),
		BankName:          r.optionalStr("bankName"),
		IBAN:              r.optionalStr("iban"),
		BIC:               r.optionalStr("bic"),
	}
	return c, r.err
}

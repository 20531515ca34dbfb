package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
)

func moduleRow() Row {
	return Row{
		"manufacturer":           StringValue("Aiko"),
		"model":                  StringValue("Neostar 2S"),
		"powerWp":                NumberValue(445),
		"efficiency":             NumberValue(22.8),
		"technology":             StringValue("mono"),
		"dimensions_length":      NumberValue(1722),
		"dimensions_width":       NumberValue(1134),
		"dimensions_thickness":   NumberValue(30),
		"weight":                 NumberValue(21.8),
		"pricePerWp":             NumberValue(0.17),
		"warranty_product":       NumberValue(15),
		"warranty_performance":   NumberValue(25),
		"temperatureCoefficient": NumberValue(-0.26),
		"maxSystemVoltage":       NumberValue(1500),
		"shortCircuitCurrent":    NumberValue(14.1),
		"openCircuitVoltage":     NumberValue(39.2),
	}
}

func TestMapModule(t *testing.T) {
	m, err := MapModule(moduleRow())
	require.NoError(t, err)
	assert.Equal(t, "Aiko", m.Manufacturer)
	assert.Equal(t, enums.ModuleTechnologyMono, m.Technology)
	assert.Equal(t, 1722.0, m.Dimensions.Length)
	assert.Equal(t, 15, m.Warranty.Product)
	require.NotNil(t, m.PricePerWp)
	assert.Equal(t, 0.17, *m.PricePerWp)
}

func TestMapModuleMissingRequiredField(t *testing.T) {
	row := moduleRow()
	delete(row, "powerWp")

	_, err := MapModule(row)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: powerWp", err.Error())
}

func TestMapModuleInvalidNumber(t *testing.T) {
	row := moduleRow()
	row["efficiency"] = StringValue("twenty-two")

	_, err := MapModule(row)
	require.Error(t, err)
	assert.Equal(t, "Invalid number format for field: efficiency", err.Error())
}

func TestMapModuleReportsFirstErrorOnly(t *testing.T) {
	row := moduleRow()
	delete(row, "manufacturer")
	row["efficiency"] = StringValue("bad")

	_, err := MapModule(row)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: manufacturer", err.Error())
}

func TestMapModuleOptionalNumberAbsent(t *testing.T) {
	row := moduleRow()
	delete(row, "pricePerWp")

	m, err := MapModule(row)
	require.NoError(t, err)
	assert.Nil(t, m.PricePerWp)
}

func TestMapInverterFeatures(t *testing.T) {
	row := Row{
		"manufacturer":      StringValue("SMA"),
		"model":             StringValue("Tripower X15"),
		"type":              StringValue("string"),
		"powerKw":           NumberValue(15),
		"efficiency":        NumberValue(98.2),
		"maxDcVoltage":      NumberValue(1000),
		"startupVoltage":    NumberValue(150),
		"mpptChannels":      NumberValue(3),
		"maxDcCurrent":      NumberValue(20),
		"acVoltage":         NumberValue(400),
		"warranty":          NumberValue(10),
		"dimensions_length": NumberValue(585),
		"dimensions_width":  NumberValue(460),
		"dimensions_height": NumberValue(275),
		"weight":            NumberValue(28.5),
		"protectionClass":   StringValue("IP65"),
		"features":          StringValue("shade management, integrated dc switch , "),
	}

	inv, err := MapInverter(row)
	require.NoError(t, err)
	assert.Equal(t, enums.InverterTypeString, inv.Type)
	assert.Equal(t, 3, inv.MpptChannels)
	assert.Equal(t, types.FeatureList{"shade management", "integrated dc switch"}, inv.Features)
}

func TestMapInverterFeaturesAbsent(t *testing.T) {
	row := Row{
		"manufacturer":      StringValue("SMA"),
		"model":             StringValue("Tripower X15"),
		"type":              StringValue("string"),
		"powerKw":           NumberValue(15),
		"efficiency":        NumberValue(98.2),
		"maxDcVoltage":      NumberValue(1000),
		"startupVoltage":    NumberValue(150),
		"mpptChannels":      NumberValue(3),
		"maxDcCurrent":      NumberValue(20),
		"acVoltage":         NumberValue(400),
		"warranty":          NumberValue(10),
		"dimensions_length": NumberValue(585),
		"dimensions_width":  NumberValue(460),
		"dimensions_height": NumberValue(275),
		"weight":            NumberValue(28.5),
		"protectionClass":   StringValue("IP65"),
	}

	inv, err := MapInverter(row)
	require.NoError(t, err)
	assert.Empty(t, inv.Features)
}

func TestMapAccessorySpecifications(t *testing.T) {
	row := Row{
		"name":           StringValue("Pulsar Plus"),
		"category":       StringValue("wallbox"),
		"manufacturer":   StringValue("Wallbox"),
		"model":          StringValue("Pulsar Plus 11"),
		"power":          NumberValue(11),
		"price":          NumberValue(749),
		"description":    StringValue("11 kW home charger"),
		"specifications": StringValue(`{"connector":"Type 2","cableLength":5}`),
	}

	a, err := MapAccessory(row)
	require.NoError(t, err)
	require.NotNil(t, a.Specifications)
	assert.Equal(t, "Type 2", a.Specifications["connector"])
}

func TestMapAccessoryMalformedSpecificationsDropped(t *testing.T) {
	row := Row{
		"name":           StringValue("Pulsar Plus"),
		"category":       StringValue("wallbox"),
		"manufacturer":   StringValue("Wallbox"),
		"model":          StringValue("Pulsar Plus 11"),
		"power":          NumberValue(11),
		"price":          NumberValue(749),
		"description":    StringValue("11 kW home charger"),
		"specifications": StringValue("{not json"),
	}

	a, err := MapAccessory(row)
	require.NoError(t, err)
	assert.Nil(t, a.Specifications)
}

func TestMapCompanyOptionalFields(t *testing.T) {
	row := Row{
		"name":    StringValue("Solartechnik Nord GmbH"),
		"street":  StringValue("Hafenstr. 12"),
		"city":    StringValue("Hamburg"),
		"zipCode": StringValue("20457"),
		"phone":   StringValue("+49 40 1234567"),
		"email":   StringValue("info@solartechnik-nord.de"),
		"iban":    StringValue("DE89370400440532013000"),
	}

	c, err := MapCompany(row)
	require.NoError(t, err)
	require.NotNil(t, c.IBAN)
	assert.Equal(t, "DE89370400440532013000", *c.IBAN)
	assert.Nil(t, c.Website)
	assert.Nil(t, c.BIC)
}

func TestMapCompanyZipCodeFromNumericCell(t *testing.T) {
	row := Row{
		"name":    StringValue("Solartechnik Nord GmbH"),
		"street":  StringValue("Hafenstr. 12"),
		"city":    StringValue("Hamburg"),
		"zipCode": NumberValue(20457),
		"phone":   StringValue("+49 40 1234567"),
		"email":   StringValue("info@solartechnik-nord.de"),
	}

	c, err := MapCompany(row)
	require.NoError(t, err)
	assert.Equal(t, "20457", c.ZipCode)
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Greenkack/pvoffer-backend/api/responses"
	"github.com/Greenkack/pvoffer-backend/api/validators"
	"github.com/Greenkack/pvoffer-backend/internal/catalog"
	"github.com/Greenkack/pvoffer-backend/pkg/db/models"
	"github.com/Greenkack/pvoffer-backend/pkg/db/types"
	"github.com/Greenkack/pvoffer-backend/pkg/enums"
	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
	"github.com/Greenkack/pvoffer-backend/pkg/logger"
)

// Modules

type moduleDimensionsRequest struct {
	Length    float64 `json:"length" validate:"required,gt=0"`
	Width     float64 `json:"width" validate:"required,gt=0"`
	Thickness float64 `json:"thickness" validate:"required,gt=0"`
}

type moduleWarrantyRequest struct {
	Product     int `json:"product" validate:"min=0"`
	Performance int `json:"performance" validate:"min=0"`
}

type createModuleRequest struct {
	Manufacturer           string                  `json:"manufacturer" validate:"required"`
	Model                  string                  `json:"model" validate:"required"`
	PowerWp                float64                 `json:"powerWp" validate:"required,gt=0"`
	Efficiency             float64                 `json:"efficiency" validate:"required,gt=0,lte=100"`
	Technology             string                  `json:"technology" validate:"required"`
	Dimensions             moduleDimensionsRequest `json:"dimensions" validate:"required"`
	Weight                 float64                 `json:"weight" validate:"required,gt=0"`
	PricePerWp             *float64                `json:"pricePerWp,omitempty" validate:"omitempty,gte=0"`
	Warranty               moduleWarrantyRequest   `json:"warranty"`
	TemperatureCoefficient float64                 `json:"temperatureCoefficient"`
	MaxSystemVoltage       float64                 `json:"maxSystemVoltage" validate:"gte=0"`
	ShortCircuitCurrent    float64                 `json:"shortCircuitCurrent" validate:"gte=0"`
	OpenCircuitVoltage     float64                 `json:"openCircuitVoltage" validate:"gte=0"`
}

func (req createModuleRequest) toModel() (*models.SolarModule, error) {
	technology, err := enums.ParseModuleTechnology(strings.TrimSpace(req.Technology))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid technology")
	}
	return &models.SolarModule{
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		PowerWp:      req.PowerWp,
		Efficiency:   req.Efficiency,
		Technology:   technology,
		Dimensions: models.ModuleDimensions{
			Length:    req.Dimensions.Length,
			Width:     req.Dimensions.Width,
			Thickness: req.Dimensions.Thickness,
		},
		Weight:     req.Weight,
		PricePerWp: req.PricePerWp,
		Warranty: models.ModuleWarranty{
			Product:     req.Warranty.Product,
			Performance: req.Warranty.Performance,
		},
		TemperatureCoefficient: req.TemperatureCoefficient,
		MaxSystemVoltage:       req.MaxSystemVoltage,
		ShortCircuitCurrent:    req.ShortCircuitCurrent,
		OpenCircuitVoltage:     req.OpenCircuitVoltage,
	}, nil
}

type updateModuleRequest struct {
	Manufacturer           *string  `json:"manufacturer,omitempty"`
	Model                  *string  `json:"model,omitempty"`
	PowerWp                *float64 `json:"powerWp,omitempty" validate:"omitempty,gt=0"`
	Efficiency             *float64 `json:"efficiency,omitempty" validate:"omitempty,gt=0,lte=100"`
	Technology             *string  `json:"technology,omitempty"`
	DimensionsLength       *float64 `json:"dimensionsLength,omitempty" validate:"omitempty,gt=0"`
	DimensionsWidth        *float64 `json:"dimensionsWidth,omitempty" validate:"omitempty,gt=0"`
	DimensionsThickness    *float64 `json:"dimensionsThickness,omitempty" validate:"omitempty,gt=0"`
	Weight                 *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	PricePerWp             *float64 `json:"pricePerWp,omitempty" validate:"omitempty,gte=0"`
	WarrantyProduct        *int     `json:"warrantyProduct,omitempty" validate:"omitempty,min=0"`
	WarrantyPerformance    *int     `json:"warrantyPerformance,omitempty" validate:"omitempty,min=0"`
	TemperatureCoefficient *float64 `json:"temperatureCoefficient,omitempty"`
	MaxSystemVoltage       *float64 `json:"maxSystemVoltage,omitempty" validate:"omitempty,gte=0"`
	ShortCircuitCurrent    *float64 `json:"shortCircuitCurrent,omitempty" validate:"omitempty,gte=0"`
	OpenCircuitVoltage     *float64 `json:"openCircuitVoltage,omitempty" validate:"omitempty,gte=0"`
}

func (req updateModuleRequest) toPatch() (catalog.ModulePatch, error) {
	patch := catalog.ModulePatch{
		Manufacturer:           req.Manufacturer,
		Model:                  req.Model,
		PowerWp:                req.PowerWp,
		Efficiency:             req.Efficiency,
		DimensionsLength:       req.DimensionsLength,
		DimensionsWidth:        req.DimensionsWidth,
		DimensionsThickness:    req.DimensionsThickness,
		Weight:                 req.Weight,
		PricePerWp:             req.PricePerWp,
		WarrantyProduct:        req.WarrantyProduct,
		WarrantyPerformance:    req.WarrantyPerformance,
		TemperatureCoefficient: req.TemperatureCoefficient,
		MaxSystemVoltage:       req.MaxSystemVoltage,
		ShortCircuitCurrent:    req.ShortCircuitCurrent,
		OpenCircuitVoltage:     req.OpenCircuitVoltage,
	}
	if req.Technology != nil {
		technology, err := enums.ParseModuleTechnology(strings.TrimSpace(*req.Technology))
		if err != nil {
			return catalog.ModulePatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid technology")
		}
		patch.Technology = &technology
	}
	return patch, nil
}

func ModuleCreate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createModuleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.InsertModule(r.Context(), row); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func ModuleUpdate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var payload updateModuleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := repo.UpdateModule(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !updated {
			responses.WriteError(r.Context(), logg, w, notFound(id))
			return
		}

		row, err := repo.GetModule(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// Inverters

type unitDimensionsRequest struct {
	Length float64 `json:"length" validate:"required,gt=0"`
	Width  float64 `json:"width" validate:"required,gt=0"`
	Height float64 `json:"height" validate:"required,gt=0"`
}

type createInverterRequest struct {
	Manufacturer    string                `json:"manufacturer" validate:"required"`
	Model           string                `json:"model" validate:"required"`
	Type            string                `json:"type" validate:"required"`
	PowerKw         float64               `json:"powerKw" validate:"required,gt=0"`
	Efficiency      float64               `json:"efficiency" validate:"required,gt=0,lte=100"`
	MaxDcVoltage    float64               `json:"maxDcVoltage" validate:"gte=0"`
	StartupVoltage  float64               `json:"startupVoltage" validate:"gte=0"`
	MpptChannels    int                   `json:"mpptChannels" validate:"min=0"`
	MaxDcCurrent    float64               `json:"maxDcCurrent" validate:"gte=0"`
	AcVoltage       float64               `json:"acVoltage" validate:"gte=0"`
	Price           *float64              `json:"price,omitempty" validate:"omitempty,gte=0"`
	Warranty        int                   `json:"warranty" validate:"min=0"`
	Dimensions      unitDimensionsRequest `json:"dimensions" validate:"required"`
	Weight          float64               `json:"weight" validate:"required,gt=0"`
	ProtectionClass string                `json:"protectionClass"`
	Features        []string              `json:"features,omitempty"`
}

func (req createInverterRequest) toModel() (*models.Inverter, error) {
	typ, err := enums.ParseInverterType(strings.TrimSpace(req.Type))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
	}
	return &models.Inverter{
		Manufacturer:   req.Manufacturer,
		Model:          req.Model,
		Type:           typ,
		PowerKw:        req.PowerKw,
		Efficiency:     req.Efficiency,
		MaxDcVoltage:   req.MaxDcVoltage,
		StartupVoltage: req.StartupVoltage,
		MpptChannels:   req.MpptChannels,
		MaxDcCurrent:   req.MaxDcCurrent,
		AcVoltage:      req.AcVoltage,
		Price:          req.Price,
		Warranty:       req.Warranty,
		Dimensions: models.UnitDimensions{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		},
		Weight:          req.Weight,
		ProtectionClass: req.ProtectionClass,
		Features:        types.FeatureList(req.Features),
	}, nil
}

type updateInverterRequest struct {
	Manufacturer     *string   `json:"manufacturer,omitempty"`
	Model            *string   `json:"model,omitempty"`
	Type             *string   `json:"type,omitempty"`
	PowerKw          *float64  `json:"powerKw,omitempty" validate:"omitempty,gt=0"`
	Efficiency       *float64  `json:"efficiency,omitempty" validate:"omitempty,gt=0,lte=100"`
	MaxDcVoltage     *float64  `json:"maxDcVoltage,omitempty" validate:"omitempty,gte=0"`
	StartupVoltage   *float64  `json:"startupVoltage,omitempty" validate:"omitempty,gte=0"`
	MpptChannels     *int      `json:"mpptChannels,omitempty" validate:"omitempty,min=0"`
	MaxDcCurrent     *float64  `json:"maxDcCurrent,omitempty" validate:"omitempty,gte=0"`
	AcVoltage        *float64  `json:"acVoltage,omitempty" validate:"omitempty,gte=0"`
	Price            *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Warranty         *int      `json:"warranty,omitempty" validate:"omitempty,min=0"`
	DimensionsLength *float64  `json:"dimensionsLength,omitempty" validate:"omitempty,gt=0"`
	DimensionsWidth  *float64  `json:"dimensionsWidth,omitempty" validate:"omitempty,gt=0"`
	DimensionsHeight *float64  `json:"dimensionsHeight,omitempty" validate:"omitempty,gt=0"`
	Weight           *float64  `json:"weight,omitempty" validate:"omitempty,gt=0"`
	ProtectionClass  *string   `json:"protectionClass,omitempty"`
	Features         *[]string `json:"features,omitempty"`
}

func (req updateInverterRequest) toPatch() (catalog.InverterPatch, error) {
	patch := catalog.InverterPatch{
		Manufacturer:     req.Manufacturer,
		Model:            req.Model,
		PowerKw:          req.PowerKw,
		Efficiency:       req.Efficiency,
		MaxDcVoltage:     req.MaxDcVoltage,
		StartupVoltage:   req.StartupVoltage,
		MpptChannels:     req.MpptChannels,
		MaxDcCurrent:     req.MaxDcCurrent,
		AcVoltage:        req.AcVoltage,
		Price:            req.Price,
		Warranty:         req.Warranty,
		DimensionsLength: req.DimensionsLength,
		DimensionsWidth:  req.DimensionsWidth,
		DimensionsHeight: req.DimensionsHeight,
		Weight:           req.Weight,
		ProtectionClass:  req.ProtectionClass,
	}
	if req.Type != nil {
		typ, err := enums.ParseInverterType(strings.TrimSpace(*req.Type))
		if err != nil {
			return catalog.InverterPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		patch.Type = &typ
	}
	if req.Features != nil {
		features := types.FeatureList(*req.Features)
		patch.Features = &features
	}
	return patch, nil
}

func InverterCreate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createInverterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.InsertInverter(r.Context(), row); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func InverterUpdate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var payload updateInverterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := repo.UpdateInverter(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !updated {
			responses.WriteError(r.Context(), logg, w, notFound(id))
			return
		}

		row, err := repo.GetInverter(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// Storages

type storageWarrantyRequest struct {
	Product int `json:"product" validate:"min=0"`
	Cycles  int `json:"cycles" validate:"min=0"`
}

type temperatureRangeRequest struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type createStorageRequest struct {
	Manufacturer     string                  `json:"manufacturer" validate:"required"`
	Model            string                  `json:"model" validate:"required"`
	Type             string                  `json:"type" validate:"required"`
	Capacity         float64                 `json:"capacity" validate:"required,gt=0"`
	UsableCapacity   float64                 `json:"usableCapacity" validate:"required,gt=0"`
	PowerKw          float64                 `json:"powerKw" validate:"required,gt=0"`
	Efficiency       float64                 `json:"efficiency" validate:"required,gt=0,lte=100"`
	CycleLife        int                     `json:"cycleLife" validate:"min=0"`
	Voltage          float64                 `json:"voltage" validate:"gte=0"`
	Technology       string                  `json:"technology" validate:"required"`
	Price            *float64                `json:"price,omitempty" validate:"omitempty,gte=0"`
	Warranty         storageWarrantyRequest  `json:"warranty"`
	Dimensions       unitDimensionsRequest   `json:"dimensions" validate:"required"`
	Weight           float64                 `json:"weight" validate:"required,gt=0"`
	TemperatureRange temperatureRangeRequest `json:"temperatureRange"`
	Features         []string                `json:"features,omitempty"`
}

func (req createStorageRequest) toModel() (*models.Storage, error) {
	typ, err := enums.ParseStorageType(strings.TrimSpace(req.Type))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
	}
	technology, err := enums.ParseStorageTechnology(strings.TrimSpace(req.Technology))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid technology")
	}
	if req.UsableCapacity > req.Capacity {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Usable capacity cannot be greater than total capacity")
	}
	if req.TemperatureRange.Min >= req.TemperatureRange.Max {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Min temperature must be less than max temperature")
	}
	return &models.Storage{
		Manufacturer:   req.Manufacturer,
		Model:          req.Model,
		Type:           typ,
		Capacity:       req.Capacity,
		UsableCapacity: req.UsableCapacity,
		PowerKw:        req.PowerKw,
		Efficiency:     req.Efficiency,
		CycleLife:      req.CycleLife,
		Voltage:        req.Voltage,
		Technology:     technology,
		Price:          req.Price,
		Warranty: models.StorageWarranty{
			Product: req.Warranty.Product,
			Cycles:  req.Warranty.Cycles,
		},
		Dimensions: models.UnitDimensions{
			Length: req.Dimensions.Length,
			Width:  req.Dimensions.Width,
			Height: req.Dimensions.Height,
		},
		Weight: req.Weight,
		TemperatureRange: models.TemperatureRange{
			Min: req.TemperatureRange.Min,
			Max: req.TemperatureRange.Max,
		},
		Features: types.FeatureList(req.Features),
	}, nil
}

type updateStorageRequest struct {
	Manufacturer        *string   `json:"manufacturer,omitempty"`
	Model               *string   `json:"model,omitempty"`
	Type                *string   `json:"type,omitempty"`
	Capacity            *float64  `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	UsableCapacity      *float64  `json:"usableCapacity,omitempty" validate:"omitempty,gt=0"`
	PowerKw             *float64  `json:"powerKw,omitempty" validate:"omitempty,gt=0"`
	Efficiency          *float64  `json:"efficiency,omitempty" validate:"omitempty,gt=0,lte=100"`
	CycleLife           *int      `json:"cycleLife,omitempty" validate:"omitempty,min=0"`
	Voltage             *float64  `json:"voltage,omitempty" validate:"omitempty,gte=0"`
	Technology          *string   `json:"technology,omitempty"`
	Price               *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	WarrantyProduct     *int      `json:"warrantyProduct,omitempty" validate:"omitempty,min=0"`
	WarrantyCycles      *int      `json:"warrantyCycles,omitempty" validate:"omitempty,min=0"`
	DimensionsLength    *float64  `json:"dimensionsLength,omitempty" validate:"omitempty,gt=0"`
	DimensionsWidth     *float64  `json:"dimensionsWidth,omitempty" validate:"omitempty,gt=0"`
	DimensionsHeight    *float64  `json:"dimensionsHeight,omitempty" validate:"omitempty,gt=0"`
	Weight              *float64  `json:"weight,omitempty" validate:"omitempty,gt=0"`
	TemperatureRangeMin *float64  `json:"temperatureRangeMin,omitempty"`
	TemperatureRangeMax *float64  `json:"temperatureRangeMax,omitempty"`
	Features            *[]string `json:"features,omitempty"`
}

func (req updateStorageRequest) toPatch() (catalog.StoragePatch, error) {
	patch := catalog.StoragePatch{
		Manufacturer:        req.Manufacturer,
		Model:               req.Model,
		Capacity:            req.Capacity,
		UsableCapacity:      req.UsableCapacity,
		PowerKw:             req.PowerKw,
		Efficiency:          req.Efficiency,
		CycleLife:           req.CycleLife,
		Voltage:             req.Voltage,
		Price:               req.Price,
		WarrantyProduct:     req.WarrantyProduct,
		WarrantyCycles:      req.WarrantyCycles,
		DimensionsLength:    req.DimensionsLength,
		DimensionsWidth:     req.DimensionsWidth,
		DimensionsHeight:    req.DimensionsHeight,
		Weight:              req.Weight,
		TemperatureRangeMin: req.TemperatureRangeMin,
		TemperatureRangeMax: req.TemperatureRangeMax,
	}
	if req.Type != nil {
		typ, err := enums.ParseStorageType(strings.TrimSpace(*req.Type))
		if err != nil {
			return catalog.StoragePatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		patch.Type = &typ
	}
	if req.Technology != nil {
		technology, err := enums.ParseStorageTechnology(strings.TrimSpace(*req.Technology))
		if err != nil {
			return catalog.StoragePatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid technology")
		}
		patch.Technology = &technology
	}
	if req.Features != nil {
		features := types.FeatureList(*req.Features)
		patch.Features = &features
	}
	return patch, nil
}

func StorageCreate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createStorageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.InsertStorage(r.Context(), row); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func StorageUpdate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var payload updateStorageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := repo.UpdateStorage(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !updated {
			responses.WriteError(r.Context(), logg, w, notFound(id))
			return
		}

		row, err := repo.GetStorage(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// Accessories

type createAccessoryRequest struct {
	Name           string         `json:"name" validate:"required"`
	Category       string         `json:"category" validate:"required"`
	Manufacturer   string         `json:"manufacturer" validate:"required"`
	Model          string         `json:"model" validate:"required"`
	Power          float64        `json:"power" validate:"gte=0"`
	Price          float64        `json:"price" validate:"gte=0"`
	Features       []string       `json:"features,omitempty"`
	Description    string         `json:"description"`
	Specifications map[string]any `json:"specifications,omitempty"`
}

func (req createAccessoryRequest) toModel() (*models.Accessory, error) {
	category, err := enums.ParseAccessoryCategory(strings.TrimSpace(req.Category))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
	}
	return &models.Accessory{
		Name:           req.Name,
		Category:       category,
		Manufacturer:   req.Manufacturer,
		Model:          req.Model,
		Power:          req.Power,
		Price:          req.Price,
		Features:       types.FeatureList(req.Features),
		Description:    req.Description,
		Specifications: types.SpecMap(req.Specifications),
	}, nil
}

type updateAccessoryRequest struct {
	Name           *string         `json:"name,omitempty"`
	Category       *string         `json:"category,omitempty"`
	Manufacturer   *string         `json:"manufacturer,omitempty"`
	Model          *string         `json:"model,omitempty"`
	Power          *float64        `json:"power,omitempty" validate:"omitempty,gte=0"`
	Price          *float64        `json:"price,omitempty" validate:"omitempty,gte=0"`
	Features       *[]string       `json:"features,omitempty"`
	Description    *string         `json:"description,omitempty"`
	Specifications *map[string]any `json:"specifications,omitempty"`
}

func (req updateAccessoryRequest) toPatch() (catalog.AccessoryPatch, error) {
	patch := catalog.AccessoryPatch{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		Power:        req.Power,
		Price:        req.Price,
		Description:  req.Description,
	}
	if req.Category != nil {
		category, err := enums.ParseAccessoryCategory(strings.TrimSpace(*req.Category))
		if err != nil {
			return catalog.AccessoryPatch{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category")
		}
		patch.Category = &category
	}
	if req.Features != nil {
		features := types.FeatureList(*req.Features)
		patch.Features = &features
	}
	if req.Specifications != nil {
		specs := types.SpecMap(*req.Specifications)
		patch.Specifications = &specs
	}
	return patch, nil
}

func AccessoryCreate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createAccessoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row, err := payload.toModel()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := repo.InsertAccessory(r.Context(), row); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func AccessoryUpdate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var payload updateAccessoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		patch, err := payload.toPatch()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := repo.UpdateAccessory(r.Context(), id, patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !updated {
			responses.WriteError(r.Context(), logg, w, notFound(id))
			return
		}

		row, err := repo.GetAccessory(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

// Companies

type createCompanyRequest struct {
	Name              string  `json:"name" validate:"required"`
	Street            string  `json:"street" validate:"required"`
	City              string  `json:"city" validate:"required"`
	ZipCode           string  `json:"zipCode" validate:"required"`
	Phone             string  `json:"phone" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Website           *string `json:"website,omitempty"`
	LogoBase64        *string `json:"logoBase64,omitempty"`
	UmsatzsteuerNr    *string `json:"umsatzsteuerNr,omitempty"`
	Handelsregister   *string `json:"handelsregister,omitempty"`
	Geschaeftsfuehrer *string `json:"geschaeftsfuehrer,omitempty"`
	BankName          *string `json:"bankName,omitempty"`
	IBAN              *string `json:"iban,omitempty"`
	BIC               *string `json:"bic,omitempty"`
}

func (req createCompanyRequest) toModel() *models.Company {
	return &models.Company{
		Name:              req.Name,
		Street:            req.Street,
		City:              req.City,
		ZipCode:           req.ZipCode,
		Phone:             req.Phone,
		Email:             req.Email,
		Website:           req.Website,
		LogoBase64:        req.LogoBase64,
		UmsatzsteuerNr:    req.UmsatzsteuerNr,
		Handelsregister:   req.Handelsregister,
		Geschaeftsfuehrer: req.Geschaeftsfuehrer,
		BankName:          req.BankName,
		IBAN:              req.IBAN,
		BIC:               req.BIC,
	}
}

type updateCompanyRequest struct {
	Name              *string `json:"name,omitempty"`
	Street            *string `json:"street,omitempty"`
	City              *string `json:"city,omitempty"`
	ZipCode           *string `json:"zipCode,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	Website           *string `json:"website,omitempty"`
	LogoBase64        *string `json:"logoBase64,omitempty"`
	UmsatzsteuerNr    *string `json:"umsatzsteuerNr,omitempty"`
	Handelsregister   *string `json:"handelsregister,omitempty"`
	Geschaeftsfuehrer *string `json:"geschaeftsfuehrer,omitempty"`
	BankName          *string `json:"bankName,omitempty"`
	IBAN              *string `json:"iban,omitempty"`
	BIC               *string `json:"bic,omitempty"`
}

func (req updateCompanyRequest) toPatch() catalog.CompanyPatch {
	return catalog.CompanyPatch{
		Name:              req.Name,
		Street:            req.Street,
		City:              req.City,
		ZipCode:           req.ZipCode,
		Phone:             req.Phone,
		Email:             req.Email,
		Website:           req.Website,
		LogoBase64:        req.LogoBase64,
		UmsatzsteuerNr:    req.UmsatzsteuerNr,
		Handelsregister:   req.Handelsregister,
		Geschaeftsfuehrer: req.Geschaeftsfuehrer,
		BankName:          req.BankName,
		IBAN:              req.IBAN,
		BIC:               req.BIC,
	}
}

func CompanyCreate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createCompanyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		row := payload.toModel()
		if err := repo.InsertCompany(r.Context(), row); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, row)
	}
}

func CompanyUpdate(repo *catalog.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var payload updateCompanyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := repo.UpdateCompany(r.Context(), id, payload.toPatch())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !updated {
			responses.WriteError(r.Context(), logg, w, notFound(id))
			return
		}

		row, err := repo.GetCompany(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, row)
	}
}

func notFound(id string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "record "+id+" not found")
}

package calc

// The engine speaks snake_case JSON on both streams. These types are the
// request/response contract; unknown response keys are ignored.

// CustomerData identifies the customer an offer is calculated for.
type CustomerData struct {
	CustomerName    string  `json:"customer_name"`
	Street          string  `json:"street"`
	City            string  `json:"city"`
	ZipCode         string  `json:"zip_code"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	AdditionalNotes *string `json:"additional_notes,omitempty"`
}

// ProjectDetails describes the configured PV system.
type ProjectDetails struct {
	AnlageKwp              float64  `json:"anlage_kwp"`
	ModuleQuantity         int      `json:"module_quantity"`
	SelectedModule         *string  `json:"selected_module,omitempty"`
	SelectedInverter       *string  `json:"selected_inverter,omitempty"`
	RoofOrientation        float64  `json:"roof_orientation"`
	RoofTilt               float64  `json:"roof_tilt"`
	RoofArea               *float64 `json:"roof_area,omitempty"`
	InstallationType       string   `json:"installation_type,omitempty"`
	ShadowingFactor        *float64 `json:"shadowing_factor,omitempty"`
	StorageCapacityKwh     *float64 `json:"storage_capacity_kwh,omitempty"`
	SelectedStorage        *string  `json:"selected_storage,omitempty"`
	StorageType            *string  `json:"storage_type,omitempty"`
	Latitude               *float64 `json:"latitude,omitempty"`
	Longitude              *float64 `json:"longitude,omitempty"`
	AnnualConsumptionKwhYr float64  `json:"annual_consumption_kwh_yr"`
	ElectricityPriceKwh    float64  `json:"electricity_price_kwh"`
	HasOptimizers          bool     `json:"has_optimizers,omitempty"`
	HasWallbox             bool     `json:"has_wallbox,omitempty"`
	WallboxCount           *int     `json:"wallbox_count,omitempty"`
	AdditionalComponents   []string `json:"additional_components,omitempty"`
}

// EconomicData carries the financial assumptions for the simulation.
type EconomicData struct {
	CurrentElectricityPrice       float64  `json:"current_electricity_price"`
	ElectricityPriceIncrease      float64  `json:"electricity_price_increase"`
	Einspeiseverguetung           float64  `json:"einspeiseverguetung"`
	EinspeiseverguetungDuration   int      `json:"einspeiseverguetung_duration"`
	EinspeiseverguetungPostPeriod *float64 `json:"einspeiseverguetung_post_period,omitempty"`
	DiscountRate                  float64  `json:"discount_rate"`
	AnalysisHorizon               int      `json:"analysis_horizon"`
	AnnualConsumptionKwh          float64  `json:"annual_consumption_kwh"`
	FinancingType                 string   `json:"financing_type,omitempty"`
	LoanInterestRate              *float64 `json:"loan_interest_rate,omitempty"`
	LoanDuration                  *int     `json:"loan_duration,omitempty"`
	DownPayment                   *float64 `json:"down_payment,omitempty"`
	SubsidyAmount                 *float64 `json:"subsidy_amount,omitempty"`
	AnnualMaintenanceCostPercent  *float64 `json:"annual_maintenance_cost_percent,omitempty"`
	InsuranceCostAnnual           *float64 `json:"insurance_cost_annual,omitempty"`
}

// ProjectData is the single JSON document written to the engine's stdin.
type ProjectData struct {
	CustomerData                CustomerData   `json:"customer_data"`
	ProjectDetails              ProjectDetails `json:"project_details"`
	EconomicData                EconomicData   `json:"economic_data"`
	IncludeAdvancedCalculations bool           `json:"include_advanced_calculations,omitempty"`
}

// AnalysisResults holds the KPI block the engine produces on success.
type AnalysisResults struct {
	AnlageKwp      float64 `json:"anlage_kwp"`
	ModuleQuantity int     `json:"module_quantity"`

	AnnualPvProductionKwh  float64   `json:"annual_pv_production_kwh"`
	MonthlyProductionsSim  []float64 `json:"monthly_productions_sim,omitempty"`
	AnnualProductionsSim   []float64 `json:"annual_productions_sim,omitempty"`
	SpecificYieldKwhPerKwp float64   `json:"specific_yield_kwh_per_kwp"`

	AnnualConsumptionKwh   float64   `json:"annual_consumption_kwh"`
	MonthlyConsumptionSim  []float64 `json:"monthly_consumption_sim,omitempty"`
	SelfConsumptionKwh     float64   `json:"self_consumption_kwh"`
	SelfConsumptionPercent float64   `json:"self_consumption_percent"`
	GridFeedInKwh          float64   `json:"grid_feed_in_kwh"`
	GridPurchaseKwh        float64   `json:"grid_purchase_kwh"`
	AutarkyPercent         float64   `json:"autarky_percent"`

	BaseMatrixPriceNetto            float64  `json:"base_matrix_price_netto"`
	CostModulesAufpreisNetto        float64  `json:"cost_modules_aufpreis_netto"`
	CostInverterAufpreisNetto       float64  `json:"cost_inverter_aufpreis_netto"`
	CostStorageAufpreisProductNetto float64  `json:"cost_storage_aufpreis_product_db_netto"`
	CostOptimizersNetto             *float64 `json:"cost_optimizers_netto,omitempty"`
	CostWallboxNetto                *float64 `json:"cost_wallbox_netto,omitempty"`
	CostInstallationNetto           float64  `json:"cost_installation_netto"`
	TotalAdditionalCostsNetto       float64  `json:"total_additional_costs_netto"`
	SubtotalNetto                   float64  `json:"subtotal_netto"`
	MwstAmount                      float64  `json:"mwst_amount"`
	TotalInvestmentNetto            float64  `json:"total_investment_netto"`
	TotalInvestmentBrutto           float64  `json:"total_investment_brutto"`

	EinspeiseverguetungTotal   float64 `json:"einspeiseverguetung_total"`
	EinspeiseverguetungAnnual  float64 `json:"einspeiseverguetung_annual"`
	EinspeiseverguetungMonthly float64 `json:"einspeiseverguetung_monthly"`
	EinspeiseverguetungPerKwh  float64 `json:"einspeiseverguetung_per_kwh"`

	AnnualElectricitySavings  float64 `json:"annual_electricity_savings"`
	MonthlyElectricitySavings float64 `json:"monthly_electricity_savings"`
	TotalSavings20Years       float64 `json:"total_savings_20_years"`

	NpvValue              float64 `json:"npv_value"`
	IrrPercent            float64 `json:"irr_percent"`
	LcoeEuroPerKwh        float64 `json:"lcoe_euro_per_kwh"`
	AmortizationTimeYears float64 `json:"amortization_time_years"`
	ProfitabilityIndex    float64 `json:"profitability_index"`

	AnnualSavingsSim       []float64 `json:"annual_savings_sim,omitempty"`
	CumulativeSavingsSim   []float64 `json:"cumulative_savings_sim,omitempty"`
	CumulativeCashFlowsSim []float64 `json:"cumulative_cash_flows_sim,omitempty"`
	GridPurchaseCostsSim   []float64 `json:"grid_purchase_costs_sim,omitempty"`
	FeedInRevenuesSim      []float64 `json:"feed_in_revenues_sim,omitempty"`
	MaintenanceCostsSim    []float64 `json:"maintenance_costs_sim,omitempty"`

	StorageCapacityKwh               *float64 `json:"storage_capacity_kwh,omitempty"`
	StorageCyclesPerYear             *float64 `json:"storage_cycles_per_year,omitempty"`
	StorageEfficiency                *float64 `json:"storage_efficiency,omitempty"`
	StorageAdditionalSelfConsumption *float64 `json:"storage_additional_self_consumption,omitempty"`
	StorageAnnualSavings             *float64 `json:"storage_annual_savings,omitempty"`

	Co2AvoidancePerYearTons  float64 `json:"co2_avoidance_per_year_tons"`
	Co2AvoidanceTotal20Years float64 `json:"co2_avoidance_total_20_years"`
	Co2CostSavingsAnnual     float64 `json:"co2_cost_savings_annual"`
	Co2PricePerTon           float64 `json:"co2_price_per_ton"`

	CalculationTimestamp   string   `json:"calculation_timestamp,omitempty"`
	PvgisDataSource        *string  `json:"pvgis_data_source,omitempty"`
	SystemLossPercent      *float64 `json:"system_loss_percent,omitempty"`
	DegradationRatePerYear *float64 `json:"degradation_rate_per_year,omitempty"`
}

// Result is what the engine prints on stdout: a success flag plus either a
// data block or diagnostic text.
type Result struct {
	Success              bool             `json:"success"`
	Data                 *AnalysisResults `json:"data,omitempty"`
	Errors               []string         `json:"errors,omitempty"`
	Error                string           `json:"error,omitempty"`
	Message              string           `json:"message,omitempty"`
	CalculationTimestamp string           `json:"calculation_timestamp,omitempty"`
	EngineVersion        string           `json:"python_version,omitempty"`
	DatabaseAvailable    bool             `json:"database_available,omitempty"`
}

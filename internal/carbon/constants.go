// Package carbon provides the avoidance, offset, and footprint calculators.
// All functions are pure: identical inputs always give identical outputs.
package carbon

const (
	// BrazilEmissionFactor is the clean grid mix used by the avoidance
	// calculator when no other country applies, in kg CO2 per kWh.
	BrazilEmissionFactor = 0.13

	// DefaultCountryCode is the country the avoidance calculator assumes.
	DefaultCountryCode = "BRA"

	// TonsToKg converts metric tons to kilograms.
	TonsToKg = 1000.0
)

// Equivalency constants for presenting results.
const (
	// TreeAbsorptionKgPerYear is kg CO2 absorbed by one mature tree per year.
	TreeAbsorptionKgPerYear = 22.0

	// FlightEmissionsKg is the kg CO2 of the reference flight used to express offsets.
	FlightEmissionsKg = 1500.0
)

// Footprint emission factors in kg CO2 per unit.
const (
	// Energy & home.
	ElectricityFactor = 0.5   // per kWh
	NaturalGasFactor  = 5.3   // per therm
	HeatingOilFactor  = 10.15 // per gallon
	PropaneFactor     = 5.68  // per gallon
	CoalFactor        = 2.07  // per kg

	// PublicTransportFactor is per passenger mile.
	PublicTransportFactor = 0.089

	// Food, per serving.
	MeatFactor       = 6.61
	DairyFactor      = 3.2
	VegetablesFactor = 0.43
	ProcessedFactor  = 2.5

	// Lifestyle.
	WasteFactor     = 1.44  // per lb
	RecyclingFactor = -0.89 // per lb; recycling is a credit
	ShoppingFactor  = 5.5   // per $100 spent
	PaperFactor     = 1.32  // per ream

	// ShoppingUnitDollars is the spend that ShoppingFactor applies to.
	ShoppingUnitDollars = 100.0
)

// CarFactors maps car types to kg CO2 per mile.
var CarFactors = map[CarType]float64{
	CarCompact:  0.31,
	CarAverage:  0.4,
	CarSUV:      0.5,
	CarTruck:    0.6,
	CarHybrid:   0.2,
	CarElectric: 0.15,
}

// FlightFactors maps flight types to kg CO2 per passenger mile.
var FlightFactors = map[FlightType]float64{
	FlightDomestic:      0.255,
	FlightInternational: 0.195,
}

// Simplified footprint factors in kg CO2 per unit.
const (
	SimpleCarFactor         = 0.21  // per km
	SimplePlaneFactor       = 0.255 // per km
	SimpleTrainFactor       = 0.041 // per km
	SimpleBusFactor         = 0.089 // per km
	SimpleElectricityFactor = 0.5   // per kWh
	SimpleGasFactor         = 2.3   // per m³
	SimpleHeatingFactor     = 2.5   // per liter
)

// OffsetMethods is the fixed table of offset project types.
var OffsetMethods = map[OffsetMethod]OffsetMethodSpec{
	OffsetTrees: {
		Name:       "Tree planting",
		CostPerTon: 25,
		Conversion: 22, // kg CO2 per tree per year
		Unit:       "trees",
	},
	OffsetRenewable: {
		Name:       "Renewable energy",
		CostPerTon: 15,
		Conversion: 0.5, // kg CO2 per kWh
		Unit:       "kWh",
	},
	OffsetConservation: {
		Name:       "Forest conservation",
		CostPerTon: 12,
		Conversion: 200, // tons CO2 per hectare per year
		Unit:       "hectares",
	},
	OffsetMethane: {
		Name:       "Methane capture",
		CostPerTon: 20,
		Conversion: 1000, // kg CO2 per project
		Unit:       "projects",
	},
}

package carbon

// CarType selects a per-mile car emission factor.
type CarType string

const (
	CarCompact  CarType = "compact"
	CarAverage  CarType = "average"
	CarSUV      CarType = "suv"
	CarTruck    CarType = "truck"
	CarHybrid   CarType = "hybrid"
	CarElectric CarType = "electric"
)

// FlightType selects a per-mile flight emission factor.
type FlightType string

const (
	FlightDomestic      FlightType = "domestic"
	FlightInternational FlightType = "international"
)

// Category groups footprint contributions.
type Category string

const (
	CategoryEnergy         Category = "energy"
	CategoryTransportation Category = "transportation"
	CategoryFood           Category = "food"
	CategoryLifestyle      Category = "lifestyle"
)

// FootprintInput contains the usage figures for the full footprint calculator.
// Zero values contribute nothing.
type FootprintInput struct {
	// Energy & home.
	Electricity float64 `json:"electricity"` // kWh
	NaturalGas  float64 `json:"naturalGas"`  // therms
	HeatingOil  float64 `json:"heatingOil"`  // gallons
	Propane     float64 `json:"propane"`     // gallons
	Coal        float64 `json:"coal"`        // kg

	// Transportation, miles. CarType defaults to average and FlightType to domestic.
	CarMiles        float64    `json:"carMiles"`
	CarType         CarType    `json:"carType"`
	PublicTransport float64    `json:"publicTransport"`
	FlightMiles     float64    `json:"flights"`
	FlightType      FlightType `json:"flightType"`

	// Food, servings.
	Meat       float64 `json:"meat"`
	Dairy      float64 `json:"dairy"`
	Vegetables float64 `json:"vegetables"`
	Processed  float64 `json:"processed"`

	// Lifestyle.
	Waste     float64 `json:"waste"`     // lb
	Recycling float64 `json:"recycling"` // lb
	Shopping  float64 `json:"shopping"`  // dollars
	Paper     float64 `json:"paper"`     // reams
}

// SimpleFootprintInput contains the usage figures for the simplified calculator.
type SimpleFootprintInput struct {
	CarKm          float64 `json:"carKm"`
	PlaneKm        float64 `json:"planeKm"`
	TrainKm        float64 `json:"trainKm"`
	BusKm          float64 `json:"busKm"`
	ElectricityKWh float64 `json:"electricityKWh"`
	GasM3          float64 `json:"gasM3"`
	HeatingLiters  float64 `json:"heatingLiters"`
}

// Footprint is a calculated footprint in kg CO2.
type Footprint struct {
	Total     float64              `json:"total"`
	Breakdown map[Category]float64 `json:"breakdown"`
}

// OffsetMethod names an offset project type.
type OffsetMethod string

const (
	OffsetTrees        OffsetMethod = "trees"
	OffsetRenewable    OffsetMethod = "renewable"
	OffsetConservation OffsetMethod = "conservation"
	OffsetMethane      OffsetMethod = "methane"
)

// OffsetMethodSpec describes the pricing and unit conversion of an offset method.
type OffsetMethodSpec struct {
	Name       string
	CostPerTon float64 // USD per ton CO2
	Conversion float64 // method-specific, see OffsetMethods
	Unit       string
}

// OffsetQuote is the cost and size of offsetting a footprint with one method.
type OffsetQuote struct {
	Method      OffsetMethod `json:"method"`
	Name        string       `json:"name"`
	FootprintKg float64      `json:"footprintKg"`
	Tons        float64      `json:"tons"`
	Cost        float64      `json:"cost"`
	Quantity    float64      `json:"quantity"`
	Unit        string       `json:"unit"`
}

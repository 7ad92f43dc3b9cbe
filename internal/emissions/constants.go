package emissions

const (
	// ReferenceYear is the dataset year used by the fixed-year lookups
	// (country selection list and per-capita intensity).
	ReferenceYear = 2023

	// AverageAnnualKWhPerCapita is the assumed yearly electricity use per person,
	// used to turn per-capita emissions into a per-kWh intensity.
	AverageAnnualKWhPerCapita = 3000.0

	// TonsToKg converts metric tons to kilograms.
	TonsToKg = 1000.0
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrDuplicateISOCode indicates two dataset records share an ISO code.
	ErrDuplicateISOCode = constError("duplicate iso code in dataset")

	// ErrUnknownMetric indicates an unrecognized metric name.
	ErrUnknownMetric = constError("unknown metric")
)

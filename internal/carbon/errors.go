package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrUnknownCarType indicates a car type missing from CarFactors.
	ErrUnknownCarType = constError("unknown car type")

	// ErrUnknownFlightType indicates a flight type missing from FlightFactors.
	ErrUnknownFlightType = constError("unknown flight type")

	// ErrUnknownOffsetMethod indicates a method missing from OffsetMethods.
	ErrUnknownOffsetMethod = constError("unknown offset method")
)

package carbon

import "fmt"

// CalculateFootprint sums the energy, transportation, food, and lifestyle
// contributions of in, each computed as amount × factor.
//
// Returns ErrUnknownCarType or ErrUnknownFlightType when a type is not in the
// factor tables. Negative amounts are not rejected.
func CalculateFootprint(in FootprintInput) (Footprint, error) {
	carType := in.CarType
	if carType == "" {
		carType = CarAverage
	}
	carFactor, ok := CarFactors[carType]
	if !ok {
		return Footprint{}, fmt.Errorf("%w: %q", ErrUnknownCarType, carType)
	}

	flightType := in.FlightType
	if flightType == "" {
		flightType = FlightDomestic
	}
	flightFactor, ok := FlightFactors[flightType]
	if !ok {
		return Footprint{}, fmt.Errorf("%w: %q", ErrUnknownFlightType, flightType)
	}

	energy := in.Electricity*ElectricityFactor +
		in.NaturalGas*NaturalGasFactor +
		in.HeatingOil*HeatingOilFactor +
		in.Propane*PropaneFactor +
		in.Coal*CoalFactor

	transportation := in.CarMiles*carFactor +
		in.PublicTransport*PublicTransportFactor +
		in.FlightMiles*flightFactor

	food := in.Meat*MeatFactor +
		in.Dairy*DairyFactor +
		in.Vegetables*VegetablesFactor +
		in.Processed*ProcessedFactor

	lifestyle := in.Waste*WasteFactor +
		in.Recycling*RecyclingFactor +
		in.Shopping*ShoppingFactor/ShoppingUnitDollars +
		in.Paper*PaperFactor

	return newFootprint(map[Category]float64{
		CategoryEnergy:         energy,
		CategoryTransportation: transportation,
		CategoryFood:           food,
		CategoryLifestyle:      lifestyle,
	}), nil
}

// CalculateSimpleFootprint applies the simplified factor set: per-km travel
// modes plus electricity, gas, and heating oil.
func CalculateSimpleFootprint(in SimpleFootprintInput) Footprint {
	transportation := in.CarKm*SimpleCarFactor +
		in.PlaneKm*SimplePlaneFactor +
		in.TrainKm*SimpleTrainFactor +
		in.BusKm*SimpleBusFactor

	energy := in.ElectricityKWh*SimpleElectricityFactor +
		in.GasM3*SimpleGasFactor +
		in.HeatingLiters*SimpleHeatingFactor

	return newFootprint(map[Category]float64{
		CategoryTransportation: transportation,
		CategoryEnergy:         energy,
	})
}

func newFootprint(breakdown map[Category]float64) Footprint {
	// Sum in a fixed order so the total is reproducible bit for bit.
	var total float64
	for _, c := range []Category{CategoryEnergy, CategoryTransportation, CategoryFood, CategoryLifestyle} {
		total += breakdown[c]
	}
	return Footprint{Total: total, Breakdown: breakdown}
}

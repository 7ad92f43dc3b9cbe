package carbon

import (
	"fmt"
	"math"
	"sort"
)

// QuoteOffset prices offsetting footprintKg with method.
//
// Cost is tons × CostPerTon. Quantity depends on the method:
//   - trees: ceil(kg / 22) trees for one year
//   - renewable: ceil(kg / 0.5) kWh of clean generation
//   - conservation: tons / 200 hectares protected for one year
//   - methane: ceil(kg / 1000) capture projects
func QuoteOffset(footprintKg float64, method OffsetMethod) (OffsetQuote, error) {
	spec, ok := OffsetMethods[method]
	if !ok {
		return OffsetQuote{}, fmt.Errorf("%w: %q", ErrUnknownOffsetMethod, method)
	}

	tons := footprintKg / TonsToKg

	var quantity float64
	switch method {
	case OffsetConservation:
		quantity = tons / spec.Conversion
	default:
		quantity = math.Ceil(footprintKg / spec.Conversion)
	}

	return OffsetQuote{
		Method:      method,
		Name:        spec.Name,
		FootprintKg: footprintKg,
		Tons:        tons,
		Cost:        tons * spec.CostPerTon,
		Quantity:    quantity,
		Unit:        spec.Unit,
	}, nil
}

// QuoteAllOffsets returns a quote for every method, cheapest first.
func QuoteAllOffsets(footprintKg float64) []OffsetQuote {
	quotes := make([]OffsetQuote, 0, len(OffsetMethods))
	for method := range OffsetMethods {
		q, err := QuoteOffset(footprintKg, method)
		if err != nil {
			continue
		}
		quotes = append(quotes, q)
	}
	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].Cost != quotes[j].Cost {
			return quotes[i].Cost < quotes[j].Cost
		}
		return quotes[i].Method < quotes[j].Method
	})
	return quotes
}

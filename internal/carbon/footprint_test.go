package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFootprint(t *testing.T) {
	tests := []struct {
		name      string
		input     FootprintInput
		wantTotal float64
		want      map[Category]float64
	}{
		{
			name:      "electricity and average car",
			input:     FootprintInput{Electricity: 900, CarMiles: 12000, CarType: CarAverage},
			wantTotal: 5250,
			want: map[Category]float64{
				CategoryEnergy:         450,
				CategoryTransportation: 4800,
				CategoryFood:           0,
				CategoryLifestyle:      0,
			},
		},
		{
			name:      "car type defaults to average",
			input:     FootprintInput{CarMiles: 1000},
			wantTotal: 400,
			want: map[Category]float64{
				CategoryTransportation: 400,
			},
		},
		{
			name: "all energy sources",
			input: FootprintInput{
				Electricity: 100, NaturalGas: 10, HeatingOil: 2, Propane: 3, Coal: 4,
			},
			// 50 + 53 + 20.3 + 17.04 + 8.28
			wantTotal: 148.62,
			want: map[Category]float64{
				CategoryEnergy: 148.62,
			},
		},
		{
			name: "international flights and transit",
			input: FootprintInput{
				FlightMiles: 1000, FlightType: FlightInternational,
				PublicTransport: 500, CarMiles: 100, CarType: CarElectric,
			},
			// 195 + 44.5 + 15
			wantTotal: 254.5,
			want: map[Category]float64{
				CategoryTransportation: 254.5,
			},
		},
		{
			name:      "food servings",
			input:     FootprintInput{Meat: 10, Dairy: 10, Vegetables: 10, Processed: 10},
			wantTotal: 127.4,
			want: map[Category]float64{
				CategoryFood: 127.4,
			},
		},
		{
			name:  "recycling is a credit and shopping is per $100",
			input: FootprintInput{Waste: 10, Recycling: 20, Shopping: 200, Paper: 1},
			// 14.4 - 17.8 + 11 + 1.32
			wantTotal: 8.92,
			want: map[Category]float64{
				CategoryLifestyle: 8.92,
			},
		},
		{
			name:      "zero input",
			input:     FootprintInput{},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateFootprint(tt.input)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantTotal, got.Total, 1e-9)
			assert.Len(t, got.Breakdown, 4, "every category should be reported")
			for category, want := range tt.want {
				assert.InDelta(t, want, got.Breakdown[category], 1e-9, "category %s", category)
			}
		})
	}
}

func TestCalculateFootprint_UnknownTypes(t *testing.T) {
	_, err := CalculateFootprint(FootprintInput{CarType: "hovercraft"})
	assert.ErrorIs(t, err, ErrUnknownCarType)

	_, err = CalculateFootprint(FootprintInput{FlightType: "orbital"})
	assert.ErrorIs(t, err, ErrUnknownFlightType)
}

func TestCalculateSimpleFootprint(t *testing.T) {
	got := CalculateSimpleFootprint(SimpleFootprintInput{
		CarKm:          1000,
		PlaneKm:        2000,
		TrainKm:        100,
		BusKm:          100,
		ElectricityKWh: 300,
		GasM3:          10,
		HeatingLiters:  4,
	})

	// 210 + 510 + 4.1 + 8.9
	assert.InDelta(t, 733, got.Breakdown[CategoryTransportation], 1e-9)
	// 150 + 23 + 10
	assert.InDelta(t, 183, got.Breakdown[CategoryEnergy], 1e-9)
	assert.InDelta(t, 916, got.Total, 1e-9)
	assert.Len(t, got.Breakdown, 2)
}

func TestFactorTables(t *testing.T) {
	assert.Equal(t, map[CarType]float64{
		CarCompact: 0.31, CarAverage: 0.4, CarSUV: 0.5,
		CarTruck: 0.6, CarHybrid: 0.2, CarElectric: 0.15,
	}, CarFactors)

	assert.Equal(t, map[FlightType]float64{
		FlightDomestic: 0.255, FlightInternational: 0.195,
	}, FlightFactors)

	assert.Less(t, RecyclingFactor, 0.0, "recycling must reduce the footprint")
}

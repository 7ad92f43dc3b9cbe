package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/solarwise/solarwise-carbon/internal/carbon"
	"github.com/solarwise/solarwise-carbon/internal/emissions"
)

type avoidanceResponse struct {
	AvoidedCO2     float64 `json:"avoidedCO2"`
	Unit           string  `json:"unit"`
	EmissionFactor float64 `json:"emissionFactor"`
	Year           int     `json:"year"`
	CountryCode    string  `json:"countryCode"`
}

type offsetResponse struct {
	UserKWh     float64 `json:"userKWh"`
	SolarKWh    float64 `json:"solarKWh"`
	DirtyFactor float64 `json:"dirtyFactor"`
	CleanFactor float64 `json:"cleanFactor"`
	OffsetCO2   float64 `json:"offsetCO2"`
}

type intensityResponse struct {
	CO2PerUnitEnergy float64 `json:"co2_per_unit_energy"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Countries int    `json:"countries"`
}

// handleAvoidance computes CO2 avoided by clean generation. Unknown countries
// fall back to the Brazilian grid factor.
func (s *Server) handleAvoidance(c echo.Context) error {
	p, err := decodePayload(c)
	if err != nil {
		return err
	}

	kWh, ok := p.number("kWh")
	if !ok {
		return validationError("Invalid input: kWh must be a number")
	}

	code, ok := p.str("countryCode")
	if !ok {
		code = carbon.DefaultCountryCode
	}

	factor, resolved := carbon.AvoidanceFactor(s.store, code)
	if !resolved && code != carbon.DefaultCountryCode {
		zerolog.Ctx(c.Request().Context()).Debug().
			Str("iso_code", code).
			Msg("no electricity factor, using default")
	}

	return c.JSON(http.StatusOK, avoidanceResponse{
		AvoidedCO2:     carbon.AvoidedCO2(kWh, factor),
		Unit:           "kg CO2",
		EmissionFactor: factor,
		Year:           emissions.ReferenceYear,
		CountryCode:    code,
	})
}

func (s *Server) handleOffsetCountries(c echo.Context) error {
	countries := s.store.AvailableCountries()
	if countries == nil {
		countries = []emissions.Country{}
	}
	return c.JSON(http.StatusOK, countries)
}

// handleOffset uses the production-aware formula with the co2_per_unit_energy
// factors of both countries.
func (s *Server) handleOffset(c echo.Context) error {
	p, err := decodePayload(c)
	if err != nil {
		return err
	}

	userKWh, okUser := p.number("userKWh")
	solarKWh, okSolar := p.number("solarKWh")
	dirtyCode, okDirty := p.str("dirtyCountryCode")
	cleanCode, okClean := p.str("cleanCountryCode")
	if !okUser || !okSolar || !okDirty || !okClean {
		return validationError("Missing or invalid input fields")
	}

	if _, ok := s.store.Lookup(dirtyCode); !ok {
		return notFoundError("Country not found in dataset")
	}
	if _, ok := s.store.Lookup(cleanCode); !ok {
		return notFoundError("Country not found in dataset")
	}

	dirty, okDirty := s.store.CO2PerUnitEnergy(dirtyCode)
	clean, okClean := s.store.CO2PerUnitEnergy(cleanCode)
	if !okDirty || !okClean {
		return notFoundError("Emission factors not found")
	}

	return c.JSON(http.StatusOK, offsetResponse{
		UserKWh:     userKWh,
		SolarKWh:    solarKWh,
		DirtyFactor: dirty,
		CleanFactor: clean,
		OffsetCO2:   carbon.ProductionAwareOffset(userKWh, dirty, clean, solarKWh),
	})
}

func (s *Server) handleCountryIntensity(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return validationError("Country code required")
	}

	v, ok := s.store.LatestCO2Intensity(code)
	if !ok || v == 0 {
		return notFoundError("Country not found or no data available")
	}
	return c.JSON(http.StatusOK, intensityResponse{CO2PerUnitEnergy: v})
}

func (s *Server) handleFootprint(c echo.Context) error {
	var in carbon.FootprintInput
	if err := decodeInto(c, &in); err != nil {
		return err
	}

	fp, err := carbon.CalculateFootprint(in)
	if err != nil {
		if errors.Is(err, carbon.ErrUnknownCarType) || errors.Is(err, carbon.ErrUnknownFlightType) {
			return validationError(err.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, fp)
}

func (s *Server) handleSimpleFootprint(c echo.Context) error {
	var in carbon.SimpleFootprintInput
	if err := decodeInto(c, &in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, carbon.CalculateSimpleFootprint(in))
}

// handleOffsetOptions returns one quote when a method is named, otherwise
// quotes for every method ordered by cost.
func (s *Server) handleOffsetOptions(c echo.Context) error {
	p, err := decodePayload(c)
	if err != nil {
		return err
	}

	footprintKg, ok := p.number("footprintKg")
	if !ok {
		return validationError("Invalid input: footprintKg must be a number")
	}

	method, ok := p.str("method")
	if !ok {
		return c.JSON(http.StatusOK, carbon.QuoteAllOffsets(footprintKg))
	}

	quote, err := carbon.QuoteOffset(footprintKg, carbon.OffsetMethod(method))
	if err != nil {
		if errors.Is(err, carbon.ErrUnknownOffsetMethod) {
			return validationError(err.Error())
		}
		return err
	}
	return c.JSON(http.StatusOK, quote)
}

func (s *Server) handleFactors(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.LatestFactors())
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Countries: s.store.Len()})
}

package emissions

import (
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-json"
)

// TrimOptions selects which yearly entries survive Trim.
// Zero values disable the corresponding filter.
type TrimOptions struct {
	// Years keeps only the listed years.
	Years []int

	// FromYear and ToYear bound the kept years, inclusive.
	FromYear int
	ToYear   int

	// RequireMetric drops entries without a value for this metric.
	RequireMetric *Metric
}

func (o TrimOptions) keep(e YearEntry) bool {
	if len(o.Years) > 0 && !slices.Contains(o.Years, e.Year) {
		return false
	}
	if o.FromYear != 0 && e.Year < o.FromYear {
		return false
	}
	if o.ToYear != 0 && e.Year > o.ToYear {
		return false
	}
	if o.RequireMetric != nil {
		if _, ok := e.Value(*o.RequireMetric); !ok {
			return false
		}
	}
	return !e.empty()
}

// Trim reduces a raw dataset to the entries selected by opts.
// Countries left without entries are dropped; a missing country name is
// filled from the dataset key. raw is not modified.
func Trim(raw map[string]CountryRecord, opts TrimOptions) map[string]CountryRecord {
	out := make(map[string]CountryRecord)
	for key, rec := range raw {
		var kept []YearEntry
		for _, e := range rec.YearlyData {
			if opts.keep(e) {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			continue
		}
		name := rec.Name
		if name == "" {
			name = key
		}
		out[key] = CountryRecord{ISOCode: rec.ISOCode, Name: name, YearlyData: kept}
	}
	return out
}

// DecodeRaw decodes a dataset without building a Store, keeping aggregates
// and unsorted entries as they appear in the source.
func DecodeRaw(r io.Reader) (map[string]CountryRecord, error) {
	var raw map[string]CountryRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return raw, nil
}

// EncodeRaw writes a dataset as indented JSON.
func EncodeRaw(w io.Writer, raw map[string]CountryRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}
	return nil
}

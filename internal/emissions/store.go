package emissions

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Bundled dataset, trimmed from the OWID CO2 data with tools/trim-dataset.
//
//go:embed data/owid-co2-data.json
var bundledDataset []byte

// Store is the in-memory emission factor table keyed by ISO code.
// A Store is never mutated after Load returns, so concurrent readers need no locking.
type Store struct {
	countries map[string]CountryRecord
	codes     []string
	available []Country
}

var (
	defaultStore     *Store
	defaultStoreErr  error
	defaultStoreOnce sync.Once
)

// Default returns the Store built from the bundled dataset.
// The dataset is decoded on first use and the result is shared by all callers.
func Default() (*Store, error) {
	defaultStoreOnce.Do(func() {
		defaultStore, defaultStoreErr = Load(bytes.NewReader(bundledDataset))
		if defaultStoreErr != nil {
			defaultStoreErr = fmt.Errorf("failed to parse bundled dataset: %w", defaultStoreErr)
		}
	})
	return defaultStore, defaultStoreErr
}

// Open returns the bundled Store when path is empty and loads path otherwise.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads a dataset file from disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return s, nil
}

// Load decodes a dataset: a JSON object whose values are CountryRecords.
//
// Records without an ISO code (regional aggregates such as "World") are skipped.
// A record without a name takes the object key as its name. Each record's
// entries are sorted by year and entries without any metric are dropped.
func Load(r io.Reader) (*Store, error) {
	var raw map[string]CountryRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return newStore(raw)
}

func newStore(raw map[string]CountryRecord) (*Store, error) {
	s := &Store{countries: make(map[string]CountryRecord, len(raw))}

	// Iterate keys in order so duplicate detection is deterministic.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rec := raw[key]
		if rec.ISOCode == "" {
			continue
		}
		if _, dup := s.countries[rec.ISOCode]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateISOCode, rec.ISOCode)
		}
		if rec.Name == "" {
			rec.Name = key
		}
		rec.YearlyData = normalizeEntries(rec.YearlyData)
		s.countries[rec.ISOCode] = rec
		s.codes = append(s.codes, rec.ISOCode)
	}
	sort.Strings(s.codes)

	s.available = s.buildAvailable()
	return s, nil
}

// normalizeEntries returns a year-ascending copy of entries without empty years.
func normalizeEntries(entries []YearEntry) []YearEntry {
	out := make([]YearEntry, 0, len(entries))
	for _, e := range entries {
		if e.empty() {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// buildAvailable collects countries with an electricity factor for ReferenceYear,
// ordered by name the way a locale-aware comparison would order them.
func (s *Store) buildAvailable() []Country {
	var list []Country
	for _, code := range s.codes {
		rec := s.countries[code]
		entry, ok := rec.entryForYear(ReferenceYear)
		if !ok {
			continue
		}
		if _, ok := entry.Value(MetricElectricityFactor); !ok {
			continue
		}
		list = append(list, Country{Name: rec.Name, ISOCode: rec.ISOCode})
	}

	coll := collate.New(language.English)
	sort.SliceStable(list, func(i, j int) bool {
		if c := coll.CompareString(list[i].Name, list[j].Name); c != 0 {
			return c < 0
		}
		return list[i].ISOCode < list[j].ISOCode
	})
	return list
}

func (r CountryRecord) entryForYear(year int) (YearEntry, bool) {
	for _, e := range r.YearlyData {
		if e.Year == year {
			return e, true
		}
	}
	return YearEntry{}, false
}

// Len returns the number of countries in the Store.
func (s *Store) Len() int {
	return len(s.countries)
}

// Codes returns every ISO code in the Store, sorted.
func (s *Store) Codes() []string {
	return slices.Clone(s.codes)
}

// Lookup returns the record for code. The returned YearlyData must not be modified.
func (s *Store) Lookup(code string) (CountryRecord, bool) {
	rec, ok := s.countries[code]
	return rec, ok
}

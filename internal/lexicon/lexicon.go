// Package lexicon holds the static matching tables that drive prompt
// parsing: the city gazetteer plus the keyword-to-concept maps for
// sources, dimensions, aggregations, chart types, sizes and hint words.
//
// Everything here is loaded once and never mutated, so it is safe for
// unlimited concurrent readers.
package lexicon

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed gazetteer.toml
var gazetteerTOML []byte

// CityRecord is one immutable gazetteer entry. The lookup key is the
// lowercased Name.
type CityRecord struct {
	Name     string  `toml:"name"`
	Timezone string  `toml:"timezone"`
	Lat      float64 `toml:"lat"`
	Lon      float64 `toml:"lon"`
	Country  string  `toml:"country"`
}

type gazetteer struct {
	cities    map[string]CityRecord
	shorthand map[string]string
	keys      []string // sorted, for deterministic fuzzy scans
}

type gazetteerFile struct {
	Cities    []CityRecord      `toml:"city"`
	Shorthand map[string]string `toml:"shorthand"`
}

var gaz = mustLoadGazetteer()

func mustLoadGazetteer() *gazetteer {
	var file gazetteerFile
	if err := toml.Unmarshal(gazetteerTOML, &file); err != nil {
		panic(fmt.Sprintf("lexicon: bad embedded gazetteer: %v", err))
	}

	g := &gazetteer{
		cities:    make(map[string]CityRecord, len(file.Cities)),
		shorthand: file.Shorthand,
		keys:      make([]string, 0, len(file.Cities)),
	}
	for _, c := range file.Cities {
		key := strings.ToLower(c.Name)
		g.cities[key] = c
		g.keys = append(g.keys, key)
	}
	sort.Strings(g.keys)

	for from, to := range file.Shorthand {
		if _, ok := g.cities[to]; !ok {
			panic(fmt.Sprintf("lexicon: shorthand %q points at unknown city %q", from, to))
		}
	}
	return g
}

// LookupCity returns the gazetteer record for a lowercased city name.
func LookupCity(key string) (CityRecord, bool) {
	c, ok := gaz.cities[key]
	return c, ok
}

// LookupShorthand resolves a country or region word to its stand-in city.
func LookupShorthand(key string) (CityRecord, bool) {
	target, ok := gaz.shorthand[key]
	if !ok {
		return CityRecord{}, false
	}
	return LookupCity(target)
}

// CityKeys returns every gazetteer key in sorted order. Fuzzy scans
// iterate this slice so their results do not depend on map order.
func CityKeys() []string {
	return gaz.keys
}

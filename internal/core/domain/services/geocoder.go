package services

import (
	"strings"
	"unicode"
)

// stopTokens are address tokens carrying no city information: street-type words
// and numbering suffixes common in French postal addresses.
var stopTokens = map[string]struct{}{
	"rue":       {},
	"avenue":    {},
	"boulevard": {},
	"place":     {},
	"chemin":    {},
	"impasse":   {},
	"allée":     {},
	"bis":       {},
	"ter":       {},
	"france":    {},
}

// cityAliases maps common short forms to canonical city keys.
var cityAliases = map[string]string{
	"aix":        "aix-en-provence",
	"st-etienne": "saint-etienne",
	"etienne":    "saint-etienne",
}

// Geocoder resolves a free-text postal address to a canonical lowercase city key.
// Resolution is a best-effort heuristic over a static city table; no network
// geocoding is performed. When no known city can be identified, the longest
// surviving address token is returned so that callers downstream can still
// estimate a route for it, and the empty string is returned only when nothing
// usable remains in the address.
type Geocoder struct {
	cities  map[string]struct{}
	ordered []string
}

// NewGeocoder creates a Geocoder over the static city table shared with the
// distance estimator.
func NewGeocoder() Geocoder {
	ordered := cityNames()
	cities := make(map[string]struct{}, len(ordered))
	for _, name := range ordered {
		cities[name] = struct{}{}
	}
	return Geocoder{cities: cities, ordered: ordered}
}

// CityKey extracts a city key from a free-text address.
//
// The address is lowercased, digits and punctuation are stripped, street-type
// tokens and the country name are discarded, and tokens of two characters or
// fewer are dropped. The remaining tokens are resolved in order:
//
//  1. exact match against the city table
//  2. substring match in either direction between a token and a city name
//  3. the alias table (e.g. "aix" -> "aix-en-provence")
//  4. fallback: the longest remaining token, even if it is not a known city
func (g Geocoder) CityKey(address string) string {
	tokens := g.tokenize(address)
	if len(tokens) == 0 {
		return ""
	}

	for _, token := range tokens {
		if _, ok := g.cities[token]; ok {
			return token
		}
	}

	for _, token := range tokens {
		for _, city := range g.ordered {
			if strings.Contains(city, token) || strings.Contains(token, city) {
				return city
			}
		}
	}

	for _, token := range tokens {
		if city, ok := cityAliases[token]; ok {
			return city
		}
	}

	longest := tokens[0]
	for _, token := range tokens[1:] {
		if len(token) > len(longest) {
			longest = token
		}
	}
	return longest
}

// tokenize normalizes the address into candidate city tokens.
func (g Geocoder) tokenize(address string) []string {
	lowered := strings.ToLower(address)

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsDigit(r):
			return ' '
		case unicode.IsLetter(r):
			return r
		case r == '-':
			// hyphens join multi-word city names and are kept
			return r
		default:
			return ' '
		}
	}, lowered)

	var tokens []string
	for _, token := range strings.Fields(cleaned) {
		token = strings.Trim(token, "-")
		if len([]rune(token)) <= 2 {
			continue
		}
		if _, ok := stopTokens[token]; ok {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

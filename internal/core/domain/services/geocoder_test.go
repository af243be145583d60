package services_test

import (
	"testing"

	"marketplace/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestGeocoder_CityKey(t *testing.T) {
	geocoder := services.NewGeocoder()

	t.Run("should resolve known cities from full postal addresses", func(t *testing.T) {
		testCases := []struct {
			address  string
			expected string
		}{
			{"12 rue de Rivoli, 75001 Paris", "paris"},
			{"5 place Bellecour, 69002 Lyon, France", "lyon"},
			{"1 boulevard Longchamp 13001 MARSEILLE", "marseille"},
			{"33 avenue Jean Jaurès, Toulouse", "toulouse"},
			{"Nantes", "nantes"},
			{"10 bis rue Faidherbe, Lille", "lille"},
		}

		for _, tc := range testCases {
			t.Run(tc.address, func(t *testing.T) {
				assert.Equal(t, tc.expected, geocoder.CityKey(tc.address))
			})
		}
	})

	t.Run("should resolve hyphenated multi-word city names", func(t *testing.T) {
		assert.Equal(t, "aix-en-provence", geocoder.CityKey("2 cours Mirabeau, Aix-en-Provence"))
		assert.Equal(t, "saint-etienne", geocoder.CityKey("7 rue Gambetta, Saint-Etienne"))
	})

	t.Run("should resolve aliases and partial names", func(t *testing.T) {
		assert.Equal(t, "aix-en-provence", geocoder.CityKey("3 rue Espariat, Aix"))
		assert.Equal(t, "saint-etienne", geocoder.CityKey("quartier Etienne"))
	})

	t.Run("should ignore street tokens and digits", func(t *testing.T) {
		// "rue", "de" (too short) and the numbers must not shadow the city
		assert.Equal(t, "paris", geocoder.CityKey("221 rue de la Convention 75015 Paris"))
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		assert.Equal(t, "bordeaux", geocoder.CityKey("BORDEAUX"))
		assert.Equal(t, "bordeaux", geocoder.CityKey("bOrDeAuX"))
	})

	t.Run("should fall back to the longest token for unknown cities", func(t *testing.T) {
		assert.Equal(t, "villeneuve", geocoder.CityKey("4 rue Courte, Villeneuve"))
	})

	t.Run("should return empty for unusable addresses", func(t *testing.T) {
		for _, address := range []string{"", "   ", "12 34 56", "a b c"} {
			assert.Empty(t, geocoder.CityKey(address))
		}
	})
}

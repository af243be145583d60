package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetProviderBookingsQuery(t *testing.T) {
	t.Run("should create query with valid provider id", func(t *testing.T) {
		providerID := kernel.NewUUID()

		query, err := queries.NewGetProviderBookingsQuery(providerID)

		require.NoError(t, err)
		assert.True(t, query.ProviderID().IsEqual(providerID))
		assert.NoError(t, query.Validate())
	})

	t.Run("should reject zero provider id", func(t *testing.T) {
		_, err := queries.NewGetProviderBookingsQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject query not created via constructor", func(t *testing.T) {
		query := queries.GetProviderBookingsQuery{}

		err := query.Validate()

		require.ErrorIs(t, err, queries.ErrGetProviderBookingsQueryIsNotConstructed)
	})
}

func TestNewGetAvailableBoxesQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetAvailableBoxesQuery()

		assert.NoError(t, query.Validate())
	})

	t.Run("should reject query not created via constructor", func(t *testing.T) {
		query := queries.GetAvailableBoxesQuery{}

		err := query.Validate()

		require.ErrorIs(t, err, queries.ErrGetAvailableBoxesQueryIsNotConstructed)
	})
}

package kernel_test

import (
	"testing"

	"gasline/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create valid geo point", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(6.5244, 3.3792, "Ikeja, Lagos")

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 6.5244, point.Latitude(), 1e-9)
		assert.InDelta(t, 3.3792, point.Longitude(), 1e-9)
		assert.Equal(t, "Ikeja, Lagos", point.Address())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{-90, -180},
			{90, 180},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1], "somewhere")
			assert.NoError(t, err, "%v", coords)
		}
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		for _, lat := range []float64{-90.001, 90.001, 181} {
			_, err := kernel.NewGeoPoint(lat, 0, "somewhere")
			require.Error(t, err, "%v", lat)
			assert.Contains(t, err.Error(), "latitude")
		}
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		for _, lng := range []float64{-180.001, 180.001} {
			_, err := kernel.NewGeoPoint(0, lng, "somewhere")
			require.Error(t, err, "%v", lng)
			assert.Contains(t, err.Error(), "longitude")
		}
	})

	t.Run("should require an address", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(6.5, 3.3, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
	})
}

func TestGeoPointValidate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var point kernel.GeoPoint

		assert.ErrorIs(t, point.Validate(), kernel.ErrGeoPointIsNotConstructed)
	})
}

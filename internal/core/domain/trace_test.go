package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSamples(t *testing.T) {
	samples := []PositionSample{
		{Point: Point{Lat: 17.385, Lon: 78.4867}, Timestamp: "1700000000"},
		{Point: Point{Lat: 17.3861, Lon: -78.5}, Timestamp: "1700000030"},
	}

	locs, times := EncodeSamples(samples)
	assert.Equal(t, "17.385:78.4867*17.3861:-78.5*", locs)
	assert.Equal(t, "1700000000*1700000030*", times)

	decoded, err := DecodeSamples(locs, times)
	require.NoError(t, err)
	assert.Equal(t, samples, decoded)
}

func TestDecodeSamples(t *testing.T) {
	t.Run("without trailing delimiter", func(t *testing.T) {
		samples, err := DecodeSamples("1:2*3:4", "a*b")
		require.NoError(t, err)
		require.Len(t, samples, 2)
		assert.Equal(t, Point{Lat: 3, Lon: 4}, samples[1].Point)
		assert.Equal(t, "b", samples[1].Timestamp)
	})

	t.Run("empty tokens are dropped", func(t *testing.T) {
		samples, err := DecodeSamples("1:2**3:4***", "a**b*")
		require.NoError(t, err)
		assert.Len(t, samples, 2)
	})

	t.Run("empty payload", func(t *testing.T) {
		samples, err := DecodeSamples("", "")
		require.NoError(t, err)
		assert.Empty(t, samples)

		samples, err = DecodeSamples("*", "**")
		require.NoError(t, err)
		assert.Empty(t, samples)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := DecodeSamples("1:2*3:4*", "a*")
		assert.ErrorIs(t, err, ErrLengthMismatch)

		var de *DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "times", de.Field)
	})

	t.Run("malformed tokens", func(t *testing.T) {
		for _, locs := range []string{"12*", "a:b*", "1:x*", "95:0*", "NaN:0*"} {
			_, err := DecodeSamples(locs, "t*")
			var de *DecodeError
			require.True(t, errors.As(err, &de), locs)
			assert.Equal(t, "locs", de.Field, locs)
		}
	})
}

func TestRouteTraceSamplesCarriesRouteID(t *testing.T) {
	trace := RouteTrace{ID: 42, Locs: "1:2*", Times: ""}

	_, err := trace.Samples()
	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, int64(42), de.RouteID)
	assert.Contains(t, err.Error(), "route 42")
}

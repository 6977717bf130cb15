package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteDistance(t *testing.T) {
	assert.Zero(t, RouteDistance(nil))

	single := []PositionSample{{Point: Point{Lat: 10, Lon: 10}}}
	assert.Equal(t, SinglePingDistanceKm, RouteDistance(single))

	equator := []PositionSample{
		{Point: Point{Lat: 0, Lon: 0}},
		{Point: Point{Lat: 0, Lon: 1}},
	}
	assert.InDelta(t, 111.19, RouteDistance(equator), 1e-9)

	// Each leg is rounded before summing: 3 x 111.19, not round(333.58).
	path := []PositionSample{
		{Point: Point{Lat: 0, Lon: 0}},
		{Point: Point{Lat: 0, Lon: 1}},
		{Point: Point{Lat: 0, Lon: 2}},
		{Point: Point{Lat: 0, Lon: 3}},
	}
	assert.InDelta(t, 333.57, RouteDistance(path), 1e-9)
}

func TestElapsedSeconds(t *testing.T) {
	assert.Equal(t, int64(0), ElapsedSeconds(0))
	assert.Equal(t, int64(30000), ElapsedSeconds(1000))
}

func TestBuildLedger(t *testing.T) {
	locs, times := EncodeSamples([]PositionSample{
		{Point: Point{Lat: 0, Lon: 0}, Timestamp: "t1"},
		{Point: Point{Lat: 0, Lon: 1}, Timestamp: "t2"},
	})
	traces := []RouteTrace{
		{ID: 1, UnitID: "u1", CampaignID: 7, Locs: locs, Times: times},
		{ID: 2, UnitID: "u1", CampaignID: 7, Locs: "5:5*", Times: "t*"},
		{ID: 3, UnitID: "u1", CampaignID: 7, Locs: "", Times: ""},
		{ID: 4, UnitID: "u1", CampaignID: 7, Locs: "5:5*6:6*", Times: "t*"},
	}

	ledger, err := BuildLedger(traces)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, int64(1), ledger.Entries[0].RouteID)
	assert.InDelta(t, 111.19, ledger.Entries[0].DistanceKm, 1e-9)
	assert.Equal(t, int64(60), ledger.Entries[0].ElapsedSeconds)
	assert.Equal(t, int64(2), ledger.Entries[1].RouteID)
	assert.Equal(t, SinglePingDistanceKm, ledger.Entries[1].DistanceKm)

	assert.InDelta(t, 111.39, ledger.TotalDistanceKm, 1e-9)
	assert.Equal(t, int64(90), ledger.TotalElapsedSeconds)
	assert.Equal(t, []int64{4}, ledger.Rejected)
}

func TestBuildLedgerEmpty(t *testing.T) {
	ledger, err := BuildLedger(nil)
	require.NoError(t, err)
	assert.Empty(t, ledger.Entries)
	assert.Zero(t, ledger.TotalDistanceKm)
	assert.Zero(t, ledger.TotalElapsedSeconds)
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 2.675, want: 2.67}, // stored just below the tie
		{in: 1.005, want: 1.0},  // likewise
		{in: 0.125, want: 0.12}, // exact tie, even neighbour
		{in: 0.375, want: 0.38}, // exact tie, even neighbour
		{in: 111.19492664455873, want: 111.19},
		{in: 0, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round2(tt.in), "round2(%v)", tt.in)
	}
}

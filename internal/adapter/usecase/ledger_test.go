package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port/mocks"
)

func equatorTrace(id int64, unitID string, campaignID int64) domain.RouteTrace {
	locs, times := domain.EncodeSamples([]domain.PositionSample{
		{Point: domain.Point{Lat: 0, Lon: 0}, Timestamp: "t1"},
		{Point: domain.Point{Lat: 0, Lon: 1}, Timestamp: "t2"},
	})
	return domain.RouteTrace{ID: id, UnitID: unitID, CampaignID: campaignID, Locs: locs, Times: times}
}

func TestLedgerByCampaign(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	traces := mocks.NewMockTraceRepository(t)

	c := campaign(7, here, 10)
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(&c, nil)
	traces.EXPECT().ListTracesByCampaign(mock.Anything, int64(7)).Return([]domain.RouteTrace{
		equatorTrace(1, "u1", 7),
		{ID: 2, UnitID: "u2", CampaignID: 7, Locs: "5:5*", Times: "t*"},
		{ID: 3, UnitID: "u2", CampaignID: 7, Locs: "bad*", Times: "t*"},
	}, nil)

	svc := newTestUseCase(campaigns, traces)
	ledger, err := svc.LedgerByCampaign(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 2)
	assert.Equal(t, "creative-7", ledger.CreativeRef)
	for _, e := range ledger.Entries {
		assert.Equal(t, "creative-7", e.CreativeRef)
	}
	assert.InDelta(t, 111.39, ledger.TotalDistanceKm, 1e-9)
	assert.Equal(t, int64(90), ledger.TotalElapsedSeconds)
	assert.Equal(t, []int64{3}, ledger.Rejected)
}

func TestLedgerByCampaignNotFound(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	traces := mocks.NewMockTraceRepository(t)

	campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(nil, nil)
	traces.EXPECT().ListTracesByCampaign(mock.Anything, int64(7)).Return(nil, nil)

	svc := newTestUseCase(campaigns, traces)
	_, err := svc.LedgerByCampaign(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedgerByCampaignStoreError(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	traces := mocks.NewMockTraceRepository(t)
	storeErr := errors.New("boom")

	c := campaign(7, here, 10)
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(&c, nil)
	traces.EXPECT().ListTracesByCampaign(mock.Anything, int64(7)).Return(nil, storeErr)

	svc := newTestUseCase(campaigns, traces)
	_, err := svc.LedgerByCampaign(context.Background(), 7)
	assert.ErrorIs(t, err, storeErr)
}

func TestLedgerByUnit(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	traces := mocks.NewMockTraceRepository(t)

	c7 := campaign(7, here, 10)
	traces.EXPECT().ListTracesByUnit(mock.Anything, "u1").Return([]domain.RouteTrace{
		equatorTrace(1, "u1", 7),
		equatorTrace(2, "u1", 7),
		equatorTrace(3, "u1", 9),
		equatorTrace(4, "u1", 0),
	}, nil)
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(7)).Return(&c7, nil).Once()
	campaigns.EXPECT().GetCampaign(mock.Anything, int64(9)).Return(nil, nil).Once()

	svc := newTestUseCase(campaigns, traces)
	ledger, err := svc.LedgerByUnit(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, ledger.Entries, 4)
	assert.Equal(t, "creative-7", ledger.Entries[0].CreativeRef)
	assert.Equal(t, "creative-7", ledger.Entries[1].CreativeRef)
	assert.Empty(t, ledger.Entries[2].CreativeRef)
	assert.Empty(t, ledger.Entries[3].CreativeRef)
	assert.Empty(t, ledger.CreativeRef)
	assert.InDelta(t, 444.76, ledger.TotalDistanceKm, 1e-9)
	assert.Equal(t, int64(240), ledger.TotalElapsedSeconds)
}

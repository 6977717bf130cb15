package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port"
	"mooh-ads/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockFleetUseCase, http.Handler) {
	svc := mocks.NewMockFleetUseCase(t)
	h := NewHandler(svc, slog.New(slog.DiscardHandler), nil, 1<<20)
	return svc, h.Router()
}

func do(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestReportSelection(t *testing.T) {
	svc, router := newTestHandler(t)

	runTime := int64(12)
	want := domain.PositionReport{
		UnitID:          "u1",
		CampaignID:      3,
		RunTime:         &runTime,
		Locs:            "0:0*0:1*",
		Times:           "t1*t2*",
		CurrentLocation: domain.Point{Lat: 17.385, Lon: 78.4867},
	}
	svc.EXPECT().HandleReport(mock.Anything, want).Return(&port.ReportResult{
		Selection: port.Selection{
			DispatchToken: "2c4b8f0e-0000-4000-8000-000000000000",
			CampaignID:    5,
			Center:        domain.Point{Lat: 17.4, Lon: 78.5},
			RadiusKm:      3,
			RunTime:       90,
			CreativeRef:   "creative.png",
		},
		RouteEntry: &domain.LedgerEntry{
			RouteID:        8,
			UnitID:         "u1",
			CampaignID:     3,
			DistanceKm:     111.19,
			ElapsedSeconds: 60,
			Samples: []domain.PositionSample{
				{Point: domain.Point{Lat: 0, Lon: 0}, Timestamp: "t1"},
				{Point: domain.Point{Lat: 0, Lon: 1}, Timestamp: "t2"},
			},
		},
	}, nil)

	rec := do(router, http.MethodPost, "/api/v1/reports", `{
		"unit_id": "u1", "campaign_id": 3, "run_time": 12,
		"locs": "0:0*0:1*", "times": "t1*t2*",
		"current_location": [17.385, 78.4867]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp selectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Ad sent", resp.Message)
	assert.False(t, resp.Fallback)
	require.NotNil(t, resp.CampaignID)
	assert.Equal(t, int64(5), *resp.CampaignID)
	assert.Equal(t, [2]float64{17.4, 78.5}, resp.Center)
	assert.Equal(t, int64(90), resp.RunTime)
	require.NotNil(t, resp.Route)
	assert.Equal(t, [][2]float64{{0, 0}, {0, 1}}, resp.Route.Locs)
	assert.Equal(t, int64(60), resp.Route.ElapsedSeconds)
}

func TestReportFallback(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.EXPECT().HandleReport(mock.Anything, mock.Anything).Return(&port.ReportResult{
		Selection: port.Selection{
			Fallback:    true,
			Center:      domain.Point{Lat: 1, Lon: 2},
			RadiusKm:    600,
			RunTime:     100,
			CreativeRef: "fallback.png",
		},
		TraceErr: &domain.DecodeError{Field: "times", Err: domain.ErrLengthMismatch},
	}, nil)

	rec := do(router, http.MethodPost, "/api/v1/reports", `{"unit_id":"u1","current_location":[1,2]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, "Fallback sent", raw["message"])
	assert.Equal(t, true, raw["fallback"])
	assert.NotContains(t, raw, "campaign_id")
	assert.NotContains(t, raw, "route")
	assert.Contains(t, raw["trace_error"], "differ in length")
}

func TestReportBadRequest(t *testing.T) {
	_, router := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid JSON", body: `{"unit_id":`},
		{name: "missing location", body: `{"unit_id":"u1"}`},
		{name: "latitude out of range", body: `{"unit_id":"u1","current_location":[95,0]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/api/v1/reports", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestReportErrors(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.EXPECT().HandleReport(mock.Anything, mock.MatchedBy(func(r domain.PositionReport) bool {
		return r.UnitID == ""
	})).Return(nil, &domain.PreconditionError{Field: "unit_id", Value: `""`})
	svc.EXPECT().HandleReport(mock.Anything, mock.MatchedBy(func(r domain.PositionReport) bool {
		return r.UnitID == "u1"
	})).Return(nil, &domain.StoreError{Op: "list pending campaigns", Err: errors.New("password authentication failed")})

	rec := do(router, http.MethodPost, "/api/v1/reports", `{"current_location":[1,2]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(router, http.MethodPost, "/api/v1/reports", `{"unit_id":"u1","current_location":[1,2]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestSaveCampaign(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.EXPECT().
		SaveCampaign(mock.Anything, mock.MatchedBy(func(u domain.CampaignUpsert) bool {
			return u.Owner == "acme" && len(u.Windows) == 1 &&
				u.Windows[0].StartTime == 9*time.Hour &&
				u.RadiusKm != nil && *u.RadiusKm == 2.5 &&
				u.RunTime != nil && *u.RunTime == 300
		})).
		Return(int64(17), nil)

	rec := do(router, http.MethodPost, "/api/v1/campaigns", `{
		"owner": "acme", "contact": "ads@acme.test", "creative_ref": "acme.png",
		"center": [17.385, 78.4867], "radius": 2.5, "run_time": 300,
		"from_dates": ["2024-11-23"], "from_times": ["09:00"],
		"to_dates": ["2024-11-30"], "to_times": ["21:00"]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":17}`, rec.Body.String())
}

func TestSaveCampaignInvalidWindows(t *testing.T) {
	_, router := newTestHandler(t)

	rec := do(router, http.MethodPost, "/api/v1/campaigns", `{
		"owner": "acme", "creative_ref": "acme.png", "center": [17.385, 78.4867],
		"from_dates": ["2024-11-23"], "from_times": ["09:00"],
		"to_dates": [], "to_times": ["21:00"]
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unequal lengths")
}

func TestGetCampaign(t *testing.T) {
	svc, router := newTestHandler(t)

	c := &domain.Campaign{
		ID:          4,
		Owner:       "acme",
		CreativeRef: "acme.png",
		Center:      domain.Point{Lat: 17.385, Lon: 78.4867},
		RadiusKm:    2,
		RunTime:     10,
		Windows: []domain.Window{{
			StartDate: time.Date(2024, 11, 23, 0, 0, 0, 0, time.UTC),
			StartTime: 9 * time.Hour,
			EndDate:   time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			EndTime:   21*time.Hour + 30*time.Minute,
		}},
	}
	svc.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(c, nil)
	svc.EXPECT().GetCampaign(mock.Anything, int64(5)).Return(nil, domain.ErrNotFound)

	rec := do(router, http.MethodGet, "/api/v1/campaigns/4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp campaignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2024-11-23"}, resp.FromDates)
	assert.Equal(t, []string{"21:30"}, resp.ToTimes)

	rec = do(router, http.MethodGet, "/api/v1/campaigns/5", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodGet, "/api/v1/campaigns/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLedgerEndpoints(t *testing.T) {
	svc, router := newTestHandler(t)

	ledger := &domain.Ledger{
		Entries: []domain.LedgerEntry{{
			RouteID: 1, UnitID: "u1", CampaignID: 7, CreativeRef: "acme.png",
			DistanceKm: 0.2, ElapsedSeconds: 30,
			Samples: []domain.PositionSample{{Point: domain.Point{Lat: 5, Lon: 5}, Timestamp: "t"}},
		}},
		TotalDistanceKm:     0.2,
		TotalElapsedSeconds: 30,
		CreativeRef:         "acme.png",
		Rejected:            []int64{2},
	}
	svc.EXPECT().LedgerByCampaign(mock.Anything, int64(7)).Return(ledger, nil)
	svc.EXPECT().LedgerByCampaign(mock.Anything, int64(8)).Return(nil, domain.ErrNotFound)
	svc.EXPECT().LedgerByUnit(mock.Anything, "u1").Return(&domain.Ledger{}, nil)

	rec := do(router, http.MethodGet, "/api/v1/ledger/campaigns/7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"routes": [{
			"route_id": 1, "unit_id": "u1", "campaign_id": 7, "creative_ref": "acme.png",
			"distance_km": 0.2, "elapsed_seconds": 30,
			"locs": [[5, 5]], "times": ["t"]
		}],
		"total_distance_km": 0.2,
		"total_elapsed_seconds": 30,
		"creative_ref": "acme.png",
		"rejected": [2]
	}`, rec.Body.String())

	rec = do(router, http.MethodGet, "/api/v1/ledger/campaigns/8", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(router, http.MethodGet, "/api/v1/ledger/units/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"routes":[],"total_distance_km":0,"total_elapsed_seconds":0}`, rec.Body.String())
}

func TestStatsOverview(t *testing.T) {
	svc, router := newTestHandler(t)

	svc.EXPECT().
		GetStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
			return req.CampaignID != nil && *req.CampaignID == 3 &&
				req.From.Equal(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)) &&
				req.To.Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return(&port.StatsResp{Dispatches: 12, Traces: 40}, nil)

	rec := do(router, http.MethodGet,
		"/api/v1/stats/overview?from=2024-11-01T00:00:00Z&to=2024-12-01T00:00:00Z&campaign_id=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dispatches":12,"traces":40}`, rec.Body.String())

	rec = do(router, http.MethodGet, "/api/v1/stats/overview?from=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

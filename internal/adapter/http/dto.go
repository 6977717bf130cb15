package httpadapter

import (
	"fmt"
	"time"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port"
)

// coords is a [lat, lon] pair on the wire.
type coords []float64

func (c coords) point(field string) (domain.Point, error) {
	if len(c) != 2 {
		return domain.Point{}, &domain.PreconditionError{Field: field, Value: fmt.Sprint([]float64(c))}
	}
	p := domain.Point{Lat: c[0], Lon: c[1]}
	if err := p.Validate(); err != nil {
		return domain.Point{}, err
	}
	return p, nil
}

func pointCoords(p domain.Point) [2]float64 {
	return [2]float64{p.Lat, p.Lon}
}

type reportRequest struct {
	UnitID          string `json:"unit_id"`
	CampaignID      int64  `json:"campaign_id"`
	RunTime         *int64 `json:"run_time"`
	Locs            string `json:"locs"`
	Times           string `json:"times"`
	CurrentLocation coords `json:"current_location"`
}

func (r reportRequest) toDomain() (domain.PositionReport, error) {
	pos, err := r.CurrentLocation.point("current_location")
	if err != nil {
		return domain.PositionReport{}, err
	}
	return domain.PositionReport{
		UnitID:          r.UnitID,
		CampaignID:      r.CampaignID,
		RunTime:         r.RunTime,
		Locs:            r.Locs,
		Times:           r.Times,
		CurrentLocation: pos,
	}, nil
}

// selectionResponse is the answer to a position report. A fallback carries
// no campaign id; its center, radius and run time are logging defaults.
type selectionResponse struct {
	Status        string               `json:"status"`
	Message       string               `json:"message"`
	Fallback      bool                 `json:"fallback"`
	DispatchToken string               `json:"dispatch_token,omitempty"`
	CampaignID    *int64               `json:"campaign_id,omitempty"`
	Center        [2]float64           `json:"center"`
	Radius        float64              `json:"radius"`
	RunTime       int64                `json:"run_time"`
	CreativeRef   string               `json:"creative_ref"`
	AssetURL      string               `json:"asset_url,omitempty"`
	Route         *LedgerEntryResponse `json:"route,omitempty"`
	TraceError    string               `json:"trace_error,omitempty"`
}

func newSelectionResponse(res *port.ReportResult) selectionResponse {
	sel := res.Selection
	resp := selectionResponse{
		Status:        "success",
		Message:       "Ad sent",
		Fallback:      sel.Fallback,
		DispatchToken: sel.DispatchToken,
		Center:        pointCoords(sel.Center),
		Radius:        sel.RadiusKm,
		RunTime:       sel.RunTime,
		CreativeRef:   sel.CreativeRef,
		AssetURL:      sel.AssetURL,
	}
	if sel.Fallback {
		resp.Message = "Fallback sent"
	} else {
		id := sel.CampaignID
		resp.CampaignID = &id
	}
	if res.RouteEntry != nil {
		e := newLedgerEntry(*res.RouteEntry)
		resp.Route = &e
	}
	if res.TraceErr != nil {
		resp.TraceError = res.TraceErr.Error()
	}
	return resp
}

type campaignRequest struct {
	Owner       string   `json:"owner"`
	Contact     string   `json:"contact"`
	CreativeRef string   `json:"creative_ref"`
	Center      coords   `json:"center"`
	Radius      *float64 `json:"radius"`
	RunTime     *int64   `json:"run_time"`
	domain.WindowArrays
}

func (r campaignRequest) toDomain() (domain.CampaignUpsert, error) {
	center, err := r.Center.point("center")
	if err != nil {
		return domain.CampaignUpsert{}, err
	}
	u := domain.CampaignUpsert{
		Owner:       r.Owner,
		Contact:     r.Contact,
		CreativeRef: r.CreativeRef,
		Center:      center,
		RadiusKm:    r.Radius,
		RunTime:     r.RunTime,
	}
	if !r.WindowArrays.Empty() {
		if u.Windows, err = domain.ParseWindows(r.WindowArrays); err != nil {
			return domain.CampaignUpsert{}, err
		}
	}
	return u, nil
}

type campaignResponse struct {
	ID          int64      `json:"id"`
	Owner       string     `json:"owner"`
	Contact     string     `json:"contact"`
	CreativeRef string     `json:"creative_ref"`
	Center      [2]float64 `json:"center"`
	Radius      float64    `json:"radius"`
	RunTime     int64      `json:"run_time"`
	domain.WindowArrays
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:           c.ID,
		Owner:        c.Owner,
		Contact:      c.Contact,
		CreativeRef:  c.CreativeRef,
		Center:       pointCoords(c.Center),
		Radius:       c.RadiusKm,
		RunTime:      c.RunTime,
		WindowArrays: domain.FormatWindows(c.Windows),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// LedgerEntryResponse is the JSON form of one route of a ledger.
type LedgerEntryResponse struct {
	RouteID        int64        `json:"route_id"`
	UnitID         string       `json:"unit_id"`
	CampaignID     int64        `json:"campaign_id"`
	CreativeRef    string       `json:"creative_ref,omitempty"`
	DistanceKm     float64      `json:"distance_km"`
	ElapsedSeconds int64        `json:"elapsed_seconds"`
	Locs           [][2]float64 `json:"locs"`
	Times          []string     `json:"times"`
}

func newLedgerEntry(e domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		RouteID:        e.RouteID,
		UnitID:         e.UnitID,
		CampaignID:     e.CampaignID,
		CreativeRef:    e.CreativeRef,
		DistanceKm:     e.DistanceKm,
		ElapsedSeconds: e.ElapsedSeconds,
		Locs:           make([][2]float64, 0, len(e.Samples)),
		Times:          make([]string, 0, len(e.Samples)),
	}
	for _, s := range e.Samples {
		resp.Locs = append(resp.Locs, pointCoords(s.Point))
		resp.Times = append(resp.Times, s.Timestamp)
	}
	return resp
}

// LedgerResponse is the JSON form of a ledger.
type LedgerResponse struct {
	Routes              []LedgerEntryResponse `json:"routes"`
	TotalDistanceKm     float64               `json:"total_distance_km"`
	TotalElapsedSeconds int64                 `json:"total_elapsed_seconds"`
	CreativeRef         string                `json:"creative_ref,omitempty"`
	Rejected            []int64               `json:"rejected,omitempty"`
}

// NewLedgerResponse renders a ledger in its JSON wire form.
func NewLedgerResponse(l *domain.Ledger) LedgerResponse {
	resp := LedgerResponse{
		Routes:              make([]LedgerEntryResponse, 0, len(l.Entries)),
		TotalDistanceKm:     l.TotalDistanceKm,
		TotalElapsedSeconds: l.TotalElapsedSeconds,
		CreativeRef:         l.CreativeRef,
		Rejected:            l.Rejected,
	}
	for _, e := range l.Entries {
		resp.Routes = append(resp.Routes, newLedgerEntry(e))
	}
	return resp
}

package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port"
)

// seedCenter is the city the demo campaigns are placed around.
var seedCenter = domain.Point{Lat: 17.385, Lon: 78.4867}

// Seed inserts demo campaigns and route traces.
func Seed(ctx context.Context, campaigns port.CampaignRepository, traces port.TraceRepository) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	for i := 1; i <= 5; i++ {
		radius := float64(5 * i)
		runTime := int64(r.Intn(10) + 1)
		center := domain.Point{
			Lat: seedCenter.Lat + (r.Float64()-0.5)*0.2,
			Lon: seedCenter.Lon + (r.Float64()-0.5)*0.2,
		}
		id, err := campaigns.UpsertCampaign(ctx, domain.CampaignUpsert{
			Owner:       fmt.Sprintf("advertiser-%d", i),
			Contact:     fmt.Sprintf("advertiser-%d@example.com", i),
			CreativeRef: fmt.Sprintf("ads/%d/poster.jpg", i),
			Center:      center,
			Windows: []domain.Window{{
				StartDate: today,
				StartTime: 9 * time.Hour,
				EndDate:   today.AddDate(0, 1, 0),
				EndTime:   21 * time.Hour,
			}},
			RadiusKm: &radius,
			RunTime:  &runTime,
		})
		if err != nil {
			return err
		}

		// a few routes per campaign, each a short random walk
		for j := 0; j < 3; j++ {
			unit := fmt.Sprintf("car-%d", r.Intn(10)+1)
			samples := make([]domain.PositionSample, r.Intn(20)+1)
			pos := center
			at := time.Now().Add(-time.Duration(r.Intn(72)) * time.Hour)
			for k := range samples {
				pos.Lat += (r.Float64() - 0.5) * 0.01
				pos.Lon += (r.Float64() - 0.5) * 0.01
				samples[k] = domain.PositionSample{Point: pos, Timestamp: at.Format("15:04:05")}
				at = at.Add(domain.SampleDwellSeconds * time.Second)
			}
			locs, times := domain.EncodeSamples(samples)
			if err = traces.InsertTrace(ctx, &domain.RouteTrace{
				UnitID:     unit,
				CampaignID: id,
				Locs:       locs,
				Times:      times,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

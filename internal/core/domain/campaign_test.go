package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testCampaign(id int64, center Point, runTime int64) Campaign {
	return Campaign{
		ID:          id,
		CreativeRef: "creative.png",
		Center:      center,
		RadiusKm:    5,
		RunTime:     runTime,
		Windows: []Window{{
			StartDate: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
			StartTime: 9 * time.Hour,
			EndDate:   time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
			EndTime:   21 * time.Hour,
		}},
	}
}

func TestSelectEligible(t *testing.T) {
	now := time.Date(2024, 11, 23, 10, 0, 0, 0, time.UTC)
	here := Point{Lat: 17.385, Lon: 78.4867}
	far := Point{Lat: 12.9716, Lon: 77.5946}

	t.Run("first match wins", func(t *testing.T) {
		pool := []Campaign{
			testCampaign(1, far, 10),
			testCampaign(2, here, 10),
			testCampaign(3, here, 10),
		}
		assert.Equal(t, 1, SelectEligible(now, here, pool))
	})

	t.Run("exhausted campaigns never match", func(t *testing.T) {
		pool := []Campaign{
			testCampaign(1, here, 0),
			testCampaign(2, here, 3),
		}
		assert.Equal(t, 1, SelectEligible(now, here, pool))
	})

	t.Run("outside window", func(t *testing.T) {
		pool := []Campaign{testCampaign(1, here, 10)}
		assert.Equal(t, -1, SelectEligible(now.Add(12*time.Hour), here, pool))
	})

	t.Run("empty pool", func(t *testing.T) {
		assert.Equal(t, -1, SelectEligible(now, here, nil))
	})
}

func TestCampaignUpsertValidate(t *testing.T) {
	radius := 5.0
	runTime := int64(100)
	negative := -1.0
	base := CampaignUpsert{
		Owner:       "acme",
		CreativeRef: "creative.png",
		Center:      Point{Lat: 17.385, Lon: 78.4867},
	}

	assert.NoError(t, base.Validate())
	assert.False(t, base.HasUpdates())
	assert.ErrorIs(t, base.ValidateInsert(), ErrInvalidCampaign)

	full := base
	full.RadiusKm = &radius
	full.RunTime = &runTime
	full.Windows = testCampaign(0, base.Center, 1).Windows
	assert.True(t, full.HasUpdates())
	assert.NoError(t, full.ValidateInsert())

	noOwner := full
	noOwner.Owner = ""
	assert.ErrorIs(t, noOwner.Validate(), ErrInvalidCampaign)

	badRadius := full
	badRadius.RadiusKm = &negative
	assert.ErrorIs(t, badRadius.Validate(), ErrInvalidCampaign)

	badCenter := full
	badCenter.Center = Point{Lat: 100}
	assert.ErrorIs(t, badCenter.Validate(), ErrInvalidCampaign)
}

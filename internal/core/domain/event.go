package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dispatch is a record of a campaign being sent to a reporting unit.
type Dispatch struct {
	ID         int64
	Token      uuid.UUID
	CampaignID int64
	UnitID     string
	Position   Point
	RunTime    int64 // quota at the time of the match
	CreatedAt  time.Time
}

// PositionReport is what a reporting unit submits periodically. CampaignID
// and RunTime describe the campaign the unit was last showing; CampaignID 0
// means none.
type PositionReport struct {
	UnitID          string
	CampaignID      int64
	RunTime         *int64
	Locs            string
	Times           string
	CurrentLocation Point
}

package domain

import (
	"fmt"
	"time"
)

// Campaign is a unit of advertising inventory shown on the display fleet.
// RunTime is the remaining display quota: > 0 is pending, 0 is exhausted.
type Campaign struct {
	ID          int64
	Owner       string
	Contact     string
	CreativeRef string // opaque handle of the creative asset
	Center      Point
	RadiusKm    float64
	Windows     []Window
	RunTime     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Pending reports whether the campaign still has quota left.
func (c Campaign) Pending() bool {
	return c.RunTime > 0
}

// Eligible reports whether the campaign may be shown at pos at time now.
// Quota is checked first so exhausted campaigns never match.
func (c Campaign) Eligible(now time.Time, pos Point) bool {
	if !c.Pending() {
		return false
	}
	return WithinAnyWindow(now, c.Windows) && WithinRadius(c.Center, pos, c.RadiusKm)
}

// CampaignUpsert carries a submitted campaign. Owner, Center and CreativeRef
// form the uniqueness key. Nil Windows, RadiusKm or RunTime mean "not
// supplied" and leave the stored value untouched on update.
type CampaignUpsert struct {
	Owner       string
	Contact     string
	CreativeRef string
	Center      Point
	Windows     []Window
	RadiusKm    *float64
	RunTime     *int64
}

// HasUpdates reports whether any mutable field was supplied.
func (u CampaignUpsert) HasUpdates() bool {
	return u.Windows != nil || u.RadiusKm != nil || u.RunTime != nil
}

// Validate checks the fields that are always required and the values of
// optional fields that were supplied.
func (u CampaignUpsert) Validate() error {
	if u.Owner == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidCampaign)
	}
	if u.CreativeRef == "" {
		return fmt.Errorf("%w: creative reference is required", ErrInvalidCampaign)
	}
	if err := u.Center.Validate(); err != nil {
		return fmt.Errorf("%w: center: %v", ErrInvalidCampaign, err)
	}
	if u.RadiusKm != nil && *u.RadiusKm < 0 {
		return fmt.Errorf("%w: radius must not be negative", ErrInvalidCampaign)
	}
	if u.RunTime != nil && *u.RunTime < 0 {
		return fmt.Errorf("%w: run time must not be negative", ErrInvalidCampaign)
	}
	return nil
}

// ValidateInsert additionally requires everything a new record needs.
func (u CampaignUpsert) ValidateInsert() error {
	if err := u.Validate(); err != nil {
		return err
	}
	if len(u.Windows) == 0 {
		return fmt.Errorf("%w: at least one window is required", ErrInvalidCampaign)
	}
	if u.RadiusKm == nil {
		return fmt.Errorf("%w: radius is required", ErrInvalidCampaign)
	}
	if u.RunTime == nil {
		return fmt.Errorf("%w: run time is required", ErrInvalidCampaign)
	}
	return nil
}

// SelectEligible returns the index of the first campaign in pool that is
// eligible at pos and now, or -1. Pool order decides ties; later candidates
// are not evaluated once one matches.
func SelectEligible(now time.Time, pos Point, pool []Campaign) int {
	for i := range pool {
		if pool[i].Eligible(now, pos) {
			return i
		}
	}
	return -1
}

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// SinglePingDistanceKm is the distance credited to a route made of a
	// single sample.
	SinglePingDistanceKm = 0.2
	// SampleDwellSeconds is the elapsed time credited per timestamp token.
	SampleDwellSeconds = 30
)

// LedgerEntry is the derived distance/time summary of one route trace.
type LedgerEntry struct {
	RouteID        int64
	UnitID         string
	CampaignID     int64
	CreativeRef    string
	DistanceKm     float64
	ElapsedSeconds int64
	Samples        []PositionSample
}

// Ledger aggregates the entries of a set of traces. Rejected lists the
// routes whose payload failed to decode.
type Ledger struct {
	Entries             []LedgerEntry
	TotalDistanceKm     float64
	TotalElapsedSeconds int64
	CreativeRef         string
	Rejected            []int64
}

// RouteDistance sums the great-circle distances of consecutive samples,
// rounding each leg and the total to two decimals. A single sample counts
// as SinglePingDistanceKm, no samples as zero.
func RouteDistance(samples []PositionSample) float64 {
	switch len(samples) {
	case 0:
		return 0
	case 1:
		return SinglePingDistanceKm
	}
	var total float64
	for i := 0; i+1 < len(samples); i++ {
		total += round2(GreatCircleDistance(samples[i].Point, samples[i+1].Point))
	}
	return round2(total)
}

// round2 rounds the exact binary value of f to two decimals, ties to even.
// 2.675 is stored as 2.67499999... and so becomes 2.67.
func round2(f float64) float64 {
	return decimal.NewFromFloatWithExponent(f, -1074).RoundBank(2).InexactFloat64()
}

// ElapsedSeconds credits a fixed dwell per timestamp token. Token content
// is not inspected.
func ElapsedSeconds(timestamps int) int64 {
	return int64(timestamps) * SampleDwellSeconds
}

// NewLedgerEntry derives the ledger entry of a trace. ok is false when the
// trace decodes to no samples and therefore contributes nothing.
func NewLedgerEntry(trace RouteTrace) (entry LedgerEntry, ok bool, err error) {
	samples, err := trace.Samples()
	if err != nil {
		return LedgerEntry{}, false, err
	}
	if len(samples) == 0 {
		return LedgerEntry{}, false, nil
	}
	return LedgerEntry{
		RouteID:        trace.ID,
		UnitID:         trace.UnitID,
		CampaignID:     trace.CampaignID,
		DistanceKm:     RouteDistance(samples),
		ElapsedSeconds: ElapsedSeconds(len(samples)),
		Samples:        samples,
	}, true, nil
}

// BuildLedger folds traces into a ledger. A trace that fails to decode is
// left out and recorded in Rejected; the joined decode errors are returned
// alongside the otherwise complete ledger.
func BuildLedger(traces []RouteTrace) (Ledger, error) {
	var (
		ledger Ledger
		errs   []error
		total  float64
	)
	for _, trace := range traces {
		entry, ok, err := NewLedgerEntry(trace)
		if err != nil {
			ledger.Rejected = append(ledger.Rejected, trace.ID)
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		ledger.Entries = append(ledger.Entries, entry)
		total += entry.DistanceKm
		ledger.TotalElapsedSeconds += entry.ElapsedSeconds
	}
	ledger.TotalDistanceKm = round2(total)
	return ledger, errors.Join(errs...)
}

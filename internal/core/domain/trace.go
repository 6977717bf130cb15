package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// TokenDelimiter terminates every token of an encoded sequence.
	TokenDelimiter = "*"
	// CoordSeparator splits latitude from longitude inside a position token.
	CoordSeparator = ":"
)

// PositionSample is one reported position with its opaque timestamp token.
type PositionSample struct {
	Point
	Timestamp string
}

// RouteTrace is one batch of samples submitted by a reporting unit. Samples
// are kept in their wire encoding, exactly as stored.
type RouteTrace struct {
	ID         int64
	UnitID     string
	CampaignID int64
	Locs       string
	Times      string
	CreatedAt  time.Time
}

// Samples decodes the trace payload. Decode errors carry the route id.
func (t RouteTrace) Samples() ([]PositionSample, error) {
	samples, err := DecodeSamples(t.Locs, t.Times)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.RouteID = t.ID
		}
		return nil, err
	}
	return samples, nil
}

// EncodeSamples renders samples as two parallel, trailing-delimited
// sequences: "lat:lon*lat:lon*" and "t1*t2*".
func EncodeSamples(samples []PositionSample) (locs, times string) {
	var lb, tb strings.Builder
	for _, s := range samples {
		lb.WriteString(strconv.FormatFloat(s.Lat, 'f', -1, 64))
		lb.WriteString(CoordSeparator)
		lb.WriteString(strconv.FormatFloat(s.Lon, 'f', -1, 64))
		lb.WriteString(TokenDelimiter)

		tb.WriteString(s.Timestamp)
		tb.WriteString(TokenDelimiter)
	}
	return lb.String(), tb.String()
}

// DecodeSamples parses the two parallel sequences produced by EncodeSamples.
// Empty tokens are dropped. Both sequences must decode to the same length.
func DecodeSamples(locs, times string) ([]PositionSample, error) {
	posTokens := splitTokens(locs)
	timeTokens := splitTokens(times)
	if len(posTokens) != len(timeTokens) {
		return nil, &DecodeError{Field: "times", Err: ErrLengthMismatch}
	}

	samples := make([]PositionSample, 0, len(posTokens))
	for i, tok := range posTokens {
		p, err := parsePoint(tok)
		if err != nil {
			return nil, &DecodeError{Field: "locs", Token: tok, Err: err}
		}
		samples = append(samples, PositionSample{Point: p, Timestamp: timeTokens[i]})
	}
	return samples, nil
}

func splitTokens(s string) []string {
	s = strings.TrimRight(s, TokenDelimiter)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, TokenDelimiter)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

func parsePoint(tok string) (Point, error) {
	latStr, lonStr, ok := strings.Cut(tok, CoordSeparator)
	if !ok {
		return Point{}, strconv.ErrSyntax
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return Point{}, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return Point{}, err
	}
	p := Point{Lat: lat, Lon: lon}
	if err = p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

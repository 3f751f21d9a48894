package service

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// CallsignSource lists the callsigns already in the log.
type CallsignSource interface {
	Callsigns(ctx context.Context) ([]string, error)
}

// Match is a worked-before candidate for a callsign being entered.
type Match struct {
	Callsign string
	Distance int
}

// DupeChecker ranks logged callsigns by edit distance against the one the
// operator is typing, so near-misses (busted calls, portable suffixes)
// surface before the record is saved.
type DupeChecker struct {
	Log CallsignSource
}

// WorkedBefore returns up to limit close matches for callsign, nearest
// first. An exact match always ranks first. Candidates further than 40%
// of the longer string are discarded: past that the call is a different
// station, not a busted copy of one already in the log.
func (d *DupeChecker) WorkedBefore(ctx context.Context, callsign string, limit int) ([]Match, error) {
	target := strings.ToUpper(strings.TrimSpace(callsign))
	if target == "" || limit <= 0 {
		return nil, nil
	}
	known, err := d.Log.Callsigns(ctx)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for _, c := range known {
		candidate := strings.ToUpper(c)
		dist := levenshtein.ComputeDistance(target, candidate)
		maxlen := len(target)
		if len(candidate) > maxlen {
			maxlen = len(candidate)
		}
		if maxlen == 0 || float64(dist)/float64(maxlen) >= 0.4 {
			continue
		}
		matches = append(matches, Match{Callsign: candidate, Distance: dist})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

package service

import (
	"context"
	"errors"
	"testing"
)

type staticLog struct {
	calls []string
	err   error
}

func (s staticLog) Callsigns(ctx context.Context) ([]string, error) {
	return s.calls, s.err
}

func TestWorkedBeforeRanksExactMatchFirst(t *testing.T) {
	d := &DupeChecker{Log: staticLog{calls: []string{"M0XYZ", "G4ABC", "M0XYA"}}}
	matches, err := d.WorkedBefore(context.Background(), "m0xyz", 5)
	if err != nil {
		t.Fatalf("WorkedBefore: %v", err)
	}
	if len(matches) < 2 {
		t.Fatalf("expected exact and near matches, got %v", matches)
	}
	if matches[0].Callsign != "M0XYZ" || matches[0].Distance != 0 {
		t.Fatalf("expected exact match first, got %+v", matches[0])
	}
	if matches[1].Callsign != "M0XYA" {
		t.Fatalf("expected near match second, got %+v", matches[1])
	}
}

func TestWorkedBeforeDiscardsFarCandidates(t *testing.T) {
	d := &DupeChecker{Log: staticLog{calls: []string{"JA1ZZZ"}}}
	matches, err := d.WorkedBefore(context.Background(), "M0XYZ", 5)
	if err != nil {
		t.Fatalf("WorkedBefore: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches past the distance cutoff, got %v", matches)
	}
}

func TestWorkedBeforeHonorsLimit(t *testing.T) {
	d := &DupeChecker{Log: staticLog{calls: []string{"M0XYA", "M0XYB", "M0XYC", "M0XYD"}}}
	matches, err := d.WorkedBefore(context.Background(), "M0XYZ", 2)
	if err != nil {
		t.Fatalf("WorkedBefore: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("limit ignored: %v", matches)
	}
}

func TestWorkedBeforeEmptyInput(t *testing.T) {
	d := &DupeChecker{Log: staticLog{calls: []string{"M0XYZ"}}}
	matches, err := d.WorkedBefore(context.Background(), "   ", 5)
	if err != nil || matches != nil {
		t.Fatalf("expected nil result for blank callsign, got %v, %v", matches, err)
	}
}

func TestWorkedBeforePropagatesSourceError(t *testing.T) {
	boom := errors.New("db gone")
	d := &DupeChecker{Log: staticLog{err: boom}}
	if _, err := d.WorkedBefore(context.Background(), "M0XYZ", 5); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

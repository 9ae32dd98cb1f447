package main

import (
	"testing"

	"github.com/calder-james/wayfind/internal/game"
)

func TestAggregate_SumsAndMeans(t *testing.T) {
	all := []runStats{
		{runIndex: 1, seed: 1, report: game.Report{
			PathsComputed: 10, PathsFound: 8, FailedSearches: 2,
			Replans: 1, Arrivals: 7, TilesWalked: 120, StuckAgents: 1,
			MeanPathCost: 20,
		}},
		{runIndex: 2, seed: 2, report: game.Report{
			PathsComputed: 20, PathsFound: 20, FailedSearches: 0,
			Replans: 3, Arrivals: 18, TilesWalked: 300, StuckAgents: 0,
			MeanPathCost: 10,
		}},
	}

	agg := aggregate(all)
	if agg.runs != 2 {
		t.Fatalf("expected 2 runs, got %d", agg.runs)
	}
	if agg.pathsComputed != 30 || agg.pathsFound != 28 || agg.failedSearches != 2 {
		t.Fatalf("bad path sums: computed=%d found=%d failed=%d",
			agg.pathsComputed, agg.pathsFound, agg.failedSearches)
	}
	if agg.tilesWalked != 420 || agg.arrivals != 25 || agg.stuckAgents != 1 {
		t.Fatalf("bad sums: walked=%d arrivals=%d stuck=%d",
			agg.tilesWalked, agg.arrivals, agg.stuckAgents)
	}
	// Mean of 0.8 and 1.0 success rates.
	if agg.meanSuccessRate < 0.899 || agg.meanSuccessRate > 0.901 {
		t.Fatalf("expected mean success 0.9, got %f", agg.meanSuccessRate)
	}
	if agg.meanPathCost != 15 {
		t.Fatalf("expected mean path cost 15, got %f", agg.meanPathCost)
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg := aggregate(nil)
	if agg.runs != 0 || agg.meanSuccessRate != 0 {
		t.Fatalf("empty aggregate should be zero, got %+v", agg)
	}
}

func TestRunOnce_Deterministic(t *testing.T) {
	a, err := runOnce(1, 99, 300, 24, 24, 4)
	if err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	b, err := runOnce(2, 99, 300, 24, 24, 4)
	if err != nil {
		t.Fatalf("runOnce: %v", err)
	}
	if a.report != b.report {
		t.Fatalf("identical seeds should give identical reports:\n%+v\n%+v", a.report, b.report)
	}
}

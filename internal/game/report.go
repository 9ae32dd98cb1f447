package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// Report aggregates pathfinding statistics across all agents of one run.
type Report struct {
	Ticks          int
	Agents         int
	PathsComputed  int
	PathsFound     int
	FailedSearches int
	Replans        int
	Arrivals       int
	TilesWalked    int
	StuckAgents    int
	MeanPathCost   float64 // mean planned cost per successful search
}

// BuildReport summarises the current state of a simulation.
func BuildReport(s *Sim) Report {
	r := Report{
		Ticks:  s.Tick,
		Agents: len(s.Agents),
	}
	totalCost := 0.0
	for _, a := range s.Agents {
		r.PathsComputed += a.PathsComputed
		r.FailedSearches += a.FailedSearches
		r.Replans += a.Replans
		r.Arrivals += a.Arrivals
		r.TilesWalked += a.TilesWalked
		totalCost += a.PathCostTotal
		if a.State() == AgentStuck {
			r.StuckAgents++
		}
	}
	r.PathsFound = r.PathsComputed - r.FailedSearches
	if r.PathsFound > 0 {
		r.MeanPathCost = totalCost / float64(r.PathsFound)
	}
	return r
}

// SuccessRate returns the fraction of searches that found a route.
func (r Report) SuccessRate() float64 {
	if r.PathsComputed == 0 {
		return 0
	}
	return float64(r.PathsFound) / float64(r.PathsComputed)
}

// FormatReport renders the report as a fixed-width text block.
func FormatReport(r Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Pathfinding Report ===\n")
	fmt.Fprintf(&b, "ticks=%d agents=%d\n", r.Ticks, r.Agents)
	fmt.Fprintf(&b, "%-18s %d\n", "paths computed", r.PathsComputed)
	fmt.Fprintf(&b, "%-18s %d\n", "paths found", r.PathsFound)
	fmt.Fprintf(&b, "%-18s %d\n", "failed searches", r.FailedSearches)
	fmt.Fprintf(&b, "%-18s %.1f%%\n", "success rate", r.SuccessRate()*100)
	fmt.Fprintf(&b, "%-18s %d\n", "replans", r.Replans)
	fmt.Fprintf(&b, "%-18s %d\n", "arrivals", r.Arrivals)
	fmt.Fprintf(&b, "%-18s %d\n", "tiles walked", r.TilesWalked)
	fmt.Fprintf(&b, "%-18s %d\n", "stuck agents", r.StuckAgents)
	fmt.Fprintf(&b, "%-18s %.2f\n", "mean path cost", r.MeanPathCost)
	return b.String()
}

// CopyReport puts the formatted report on the system clipboard.
func CopyReport(r Report) error {
	return clipboard.WriteAll(FormatReport(r))
}

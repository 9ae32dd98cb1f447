package main

import (
	"flag"
	"fmt"

	"github.com/calder-james/wayfind/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	report   game.Report
}

type aggStats struct {
	runs            int
	pathsComputed   int
	pathsFound      int
	failedSearches  int
	replans         int
	arrivals        int
	tilesWalked     int
	stuckAgents     int
	meanSuccessRate float64
	meanPathCost    float64
}

func main() {
	var runs int
	var ticks int
	var cols int
	var rows int
	var agents int
	var seedBase int64
	var seedStep int64

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.IntVar(&cols, "cols", 56, "world width in tiles")
	flag.IntVar(&rows, "rows", 40, "world height in tiles")
	flag.IntVar(&agents, "agents", 8, "agents per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if cols < 8 || rows < 8 {
		fmt.Println("error: world must be at least 8x8 tiles")
		return
	}

	fmt.Printf("=== Headless Pathfinding Report ===\n")
	fmt.Printf("runs=%d ticks=%d world=%dx%d agents=%d seed_base=%d seed_step=%d\n\n",
		runs, ticks, cols, rows, agents, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runOnce(i+1, seed, ticks, cols, rows, agents)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(aggregate(all))
}

func runOnce(runIndex int, seed int64, ticks, cols, rows, agents int) (runStats, error) {
	sim, err := game.NewSim(
		game.WithSize(cols, rows),
		game.WithSeed(seed),
		game.WithAgents(agents),
	)
	if err != nil {
		return runStats{}, err
	}
	sim.Run(ticks)
	return runStats{
		runIndex: runIndex,
		seed:     seed,
		report:   game.BuildReport(sim),
	}, nil
}

func aggregate(all []runStats) aggStats {
	agg := aggStats{runs: len(all)}
	if len(all) == 0 {
		return agg
	}
	sumRate := 0.0
	sumCost := 0.0
	for _, rs := range all {
		r := rs.report
		agg.pathsComputed += r.PathsComputed
		agg.pathsFound += r.PathsFound
		agg.failedSearches += r.FailedSearches
		agg.replans += r.Replans
		agg.arrivals += r.Arrivals
		agg.tilesWalked += r.TilesWalked
		agg.stuckAgents += r.StuckAgents
		sumRate += r.SuccessRate()
		sumCost += r.MeanPathCost
	}
	agg.meanSuccessRate = sumRate / float64(len(all))
	agg.meanPathCost = sumCost / float64(len(all))
	return agg
}

func printRun(rs runStats) {
	r := rs.report
	fmt.Printf("--- run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("paths=%d found=%d failed=%d success=%.1f%%\n",
		r.PathsComputed, r.PathsFound, r.FailedSearches, r.SuccessRate()*100)
	fmt.Printf("arrivals=%d replans=%d tiles_walked=%d stuck=%d mean_cost=%.2f\n\n",
		r.Arrivals, r.Replans, r.TilesWalked, r.StuckAgents, r.MeanPathCost)
}

func printAggregate(agg aggStats) {
	fmt.Printf("=== Aggregate over %d runs ===\n", agg.runs)
	fmt.Printf("%-18s %d\n", "paths computed", agg.pathsComputed)
	fmt.Printf("%-18s %d\n", "paths found", agg.pathsFound)
	fmt.Printf("%-18s %d\n", "failed searches", agg.failedSearches)
	fmt.Printf("%-18s %.1f%%\n", "mean success", agg.meanSuccessRate*100)
	fmt.Printf("%-18s %d\n", "replans", agg.replans)
	fmt.Printf("%-18s %d\n", "arrivals", agg.arrivals)
	fmt.Printf("%-18s %d\n", "tiles walked", agg.tilesWalked)
	fmt.Printf("%-18s %d\n", "stuck agents", agg.stuckAgents)
	fmt.Printf("%-18s %.2f\n", "mean path cost", agg.meanPathCost)
}

package game

import (
	"strings"
	"testing"
)

func TestNewSim_SpawnsAgentsOnOpenTiles(t *testing.T) {
	s, err := NewSim(WithSeed(11), WithAgents(5))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if len(s.Agents) != 5 {
		t.Fatalf("expected 5 agents, got %d", len(s.Agents))
	}
	for _, a := range s.Agents {
		n, ok := s.PathMap.NodeAt(a.Col, a.Row)
		if !ok || n.Wall {
			t.Fatalf("agent %s spawned on a wall at (%d,%d)", a.Label(), a.Col, a.Row)
		}
	}
}

func TestSim_AgentsWanderOnOpenMap(t *testing.T) {
	// Featureless map: every goal is reachable, so no search may fail.
	s, err := NewSim(WithSize(20, 20), WithSeed(3), WithMapConfig(MapConfig{}), WithAgents(3))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	s.Run(200)

	r := BuildReport(s)
	if r.FailedSearches != 0 {
		t.Fatalf("open map should never fail a search, got %d failures", r.FailedSearches)
	}
	if r.TilesWalked == 0 {
		t.Fatal("agents should have moved in 200 ticks")
	}
	if r.PathsComputed == 0 {
		t.Fatal("agents should have requested paths")
	}
	if len(s.Log.Filter("path", "path_found")) == 0 {
		t.Fatal("expected path_found log entries")
	}
}

func TestSim_DeterministicWithSeed(t *testing.T) {
	run := func() Report {
		s, err := NewSim(WithSize(24, 24), WithSeed(17), WithAgents(4))
		if err != nil {
			t.Fatalf("NewSim: %v", err)
		}
		s.Run(300)
		return BuildReport(s)
	}
	if a, b := run(), run(); a != b {
		t.Fatalf("identical seeds should replay identically:\n%+v\n%+v", a, b)
	}
}

func TestSim_BoxedAgentGoesStuck(t *testing.T) {
	s, err := NewSim(WithSize(12, 12), WithSeed(2), WithMapConfig(MapConfig{}), WithAgentAt(5, 5))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	// Wall the agent in, then rebuild so searches see the new terrain.
	for _, d := range [][2]int{{4, 5}, {6, 5}, {5, 4}, {5, 6}} {
		s.TileMap.SetObject(d[0], d[1], ObjectCrate)
	}
	if err := s.RebuildPathMap(); err != nil {
		t.Fatalf("RebuildPathMap: %v", err)
	}

	s.Run(5)
	a := s.Agents[0]
	if a.State() != AgentStuck {
		t.Fatalf("boxed agent should be stuck, got %v", a.State())
	}
	if a.TilesWalked != 0 {
		t.Fatalf("boxed agent should not move, walked %d", a.TilesWalked)
	}
	if len(s.Log.Filter("path", "agent_stuck")) == 0 {
		t.Fatal("expected an agent_stuck log entry")
	}
	if len(s.Log.Filter("world", "pathmap_rebuilt")) != 1 {
		t.Fatal("expected a pathmap_rebuilt log entry")
	}
}

func TestBuildReport_SumsAgentCounters(t *testing.T) {
	s, err := NewSim(WithSize(10, 10), WithSeed(1), WithMapConfig(MapConfig{}), WithAgentAt(0, 0), WithAgentAt(9, 9))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	s.Agents[0].PathsComputed = 4
	s.Agents[0].FailedSearches = 1
	s.Agents[0].TilesWalked = 10
	s.Agents[0].PathCostTotal = 30
	s.Agents[1].PathsComputed = 6
	s.Agents[1].TilesWalked = 20
	s.Agents[1].PathCostTotal = 60

	r := BuildReport(s)
	if r.PathsComputed != 10 || r.PathsFound != 9 || r.TilesWalked != 30 {
		t.Fatalf("bad sums: %+v", r)
	}
	if r.MeanPathCost != 10 {
		t.Fatalf("expected mean path cost 10, got %f", r.MeanPathCost)
	}
	if rate := r.SuccessRate(); rate != 0.9 {
		t.Fatalf("expected success rate 0.9, got %f", rate)
	}
}

func TestFormatReport_ContainsFields(t *testing.T) {
	out := FormatReport(Report{
		Ticks: 100, Agents: 2, PathsComputed: 8, PathsFound: 7,
		FailedSearches: 1, TilesWalked: 55, MeanPathCost: 12.5,
	})
	for _, want := range []string{"paths computed", "failed searches", "mean path cost", "12.50"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestSimLog_FilterAndFormat(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(7, "A0", "path", "path_found", "(0,0)->(3,3) len=7", 7)
	sl.Add(9, "A1", "goal", "arrived", "at (3,3)", 0)
	sl.AddVerbose(9, "A1", "move", "stepped", "(2,3)->(3,3)", 0)

	if got := len(sl.Entries()); got != 2 {
		t.Fatalf("verbose entry should be dropped, got %d entries", got)
	}
	if got := len(sl.Filter("path", "")); got != 1 {
		t.Fatalf("expected 1 path entry, got %d", got)
	}
	if got := len(sl.Filter("", "arrived")); got != 1 {
		t.Fatalf("expected 1 arrived entry, got %d", got)
	}
	line := sl.Entries()[0].String()
	if !strings.HasPrefix(line, "[T=007] A0") {
		t.Fatalf("unexpected log line format: %q", line)
	}
	sv := NewSimLog(true)
	sv.AddVerbose(1, "A0", "move", "stepped", "", 0)
	if len(sv.Entries()) != 1 {
		t.Fatal("verbose log should keep verbose entries")
	}
}

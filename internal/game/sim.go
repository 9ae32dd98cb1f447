package game

import (
	"fmt"
	"math/rand"

	"github.com/calder-james/wayfind/internal/pathing"
)

// stuckRetryInterval is how many ticks a stuck agent waits before asking for
// a fresh destination.
const stuckRetryInterval = 60

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // size, seed, map config — applied first
	simOptAgent                      // add agents — applied after the map is built
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithSize sets the world dimensions in tiles.
func WithSize(cols, rows int) SimOption {
	return SimOption{kind: simOptInfra, fn: func(s *Sim) {
		s.Cols, s.Rows = cols, rows
	}}
}

// WithSeed sets the RNG seed so a run can be reproduced exactly.
func WithSeed(seed int64) SimOption {
	return SimOption{kind: simOptInfra, fn: func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed))
	}}
}

// WithMapConfig overrides the world generation parameters.
func WithMapConfig(cfg MapConfig) SimOption {
	return SimOption{kind: simOptInfra, fn: func(s *Sim) {
		s.mapCfg = cfg
	}}
}

// WithVerboseLog records per-tick movement entries as well as events.
func WithVerboseLog() SimOption {
	return SimOption{kind: simOptInfra, fn: func(s *Sim) {
		s.verbose = true
	}}
}

// WithAgents spawns n agents on random open tiles.
func WithAgents(n int) SimOption {
	return SimOption{kind: simOptAgent, fn: func(s *Sim) {
		for i := 0; i < n; i++ {
			s.spawnAgent()
		}
	}}
}

// WithAgentAt spawns one agent at an exact tile, for deterministic tests.
func WithAgentAt(col, row int) SimOption {
	return SimOption{kind: simOptAgent, fn: func(s *Sim) {
		a := NewAgent(s.nextID, col, row)
		s.nextID++
		s.Agents = append(s.Agents, a)
	}}
}

// Sim is the headless simulation: a generated world, its path map, and
// agents wandering between random destinations. It has no rendering
// dependency so tests and the report CLI can drive it directly.
type Sim struct {
	Cols, Rows int
	TileMap    *TileMap
	PathMap    *pathing.PathMap
	Agents     []*Agent
	Log        *SimLog
	Tick       int

	rng     *rand.Rand
	mapCfg  MapConfig
	verbose bool
	nextID  int
}

// NewSim builds a world and its agents. Infrastructure options (size, seed,
// map config) apply before generation; agent options after.
func NewSim(opts ...SimOption) (*Sim, error) {
	s := &Sim{
		Cols:   40,
		Rows:   30,
		rng:    rand.New(rand.NewSource(1)),
		mapCfg: DefaultMapConfig,
	}
	for _, opt := range opts {
		if opt.kind == simOptInfra {
			opt.fn(s)
		}
	}

	s.TileMap = GenerateMap(s.Cols, s.Rows, s.rng, s.mapCfg)
	pm, err := s.TileMap.BuildPathMap()
	if err != nil {
		return nil, fmt.Errorf("build path map: %w", err)
	}
	s.PathMap = pm
	s.Log = NewSimLog(s.verbose)

	for _, opt := range opts {
		if opt.kind == simOptAgent {
			opt.fn(s)
		}
	}
	return s, nil
}

// RebuildPathMap replaces the path map after terrain edits. Must not run
// while agents are being stepped; searches only ever see a finished map.
func (s *Sim) RebuildPathMap() error {
	pm, err := s.TileMap.BuildPathMap()
	if err != nil {
		return fmt.Errorf("rebuild path map: %w", err)
	}
	s.PathMap = pm
	s.Log.Add(s.Tick, "--", "world", "pathmap_rebuilt", "", 0)
	return nil
}

// spawnAgent places a new agent on a random open tile.
func (s *Sim) spawnAgent() {
	col, row, ok := s.randomOpenTile()
	if !ok {
		return
	}
	a := NewAgent(s.nextID, col, row)
	s.nextID++
	s.Agents = append(s.Agents, a)
}

// randomOpenTile picks a uniformly random non-wall tile.
func (s *Sim) randomOpenTile() (col, row int, ok bool) {
	for attempt := 0; attempt < 1000; attempt++ {
		c := s.rng.Intn(s.Cols)
		r := s.rng.Intn(s.Rows)
		if n, found := s.PathMap.NodeAt(c, r); found && !n.Wall {
			return c, r, true
		}
	}
	return 0, 0, false
}

// assignGoal sends an agent toward a fresh random destination.
func (s *Sim) assignGoal(a *Agent) {
	for attempt := 0; attempt < 20; attempt++ {
		col, row, ok := s.randomOpenTile()
		if !ok {
			break
		}
		if col == a.Col && row == a.Row {
			continue
		}
		goal := pathing.Point{X: col, Y: row}
		if a.SetGoal(goal, s.PathMap) {
			s.Log.Add(s.Tick, a.Label(), "path", "path_found",
				fmt.Sprintf("(%d,%d)->(%d,%d) len=%d", a.Col, a.Row, col, row, len(a.Path())),
				float64(len(a.Path())))
			return
		}
		s.Log.Add(s.Tick, a.Label(), "path", "path_failed",
			fmt.Sprintf("(%d,%d)->(%d,%d)", a.Col, a.Row, col, row), 0)
	}
	s.Log.Add(s.Tick, a.Label(), "path", "agent_stuck",
		fmt.Sprintf("at (%d,%d)", a.Col, a.Row), 0)
}

// Step advances the simulation by one tick.
func (s *Sim) Step() {
	s.Tick++
	for _, a := range s.Agents {
		switch a.State() {
		case AgentIdle:
			s.assignGoal(a)
		case AgentStuck:
			if s.Tick%stuckRetryInterval == 0 {
				s.assignGoal(a)
			}
		}

		wasMoving := a.State() == AgentMoving
		prevCol, prevRow := a.Col, a.Row
		a.Step(s.TileMap)
		if a.Col != prevCol || a.Row != prevRow {
			s.Log.AddVerbose(s.Tick, a.Label(), "move", "stepped",
				fmt.Sprintf("(%d,%d)->(%d,%d)", prevCol, prevRow, a.Col, a.Row), 0)
		}
		if wasMoving && a.State() == AgentIdle {
			s.Log.Add(s.Tick, a.Label(), "goal", "arrived",
				fmt.Sprintf("at (%d,%d)", a.Col, a.Row), 0)
		}
	}
}

// Run advances the simulation by the given number of ticks.
func (s *Sim) Run(ticks int) {
	for i := 0; i < ticks; i++ {
		s.Step()
	}
}

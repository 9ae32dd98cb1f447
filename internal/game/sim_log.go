package game

import "fmt"

// SimLogEntry is one recorded event during a headless simulation.
type SimLogEntry struct {
	Tick     int
	Agent    string  // label e.g. "A0", or "--" for global events
	Category string  // path, move, goal, world
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] A0   path    path_found       (3,4)->(17,9) cost=21.5
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-7s %-16s %s",
		e.Tick, e.Agent, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a headless simulation. It is
// unbounded and machine-readable, for tests and the report CLI.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick movement entries
// are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, agent, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Agent:    agent,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, agent, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, agent, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

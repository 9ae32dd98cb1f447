package game

import "math/rand"

// MapConfig holds tuneable parameters for world generation.
type MapConfig struct {
	RoadCount     int // number of roads crossing the map
	RoadWidth     int // width in tiles (odd numbers centre nicely)
	BuildingCount int // walled buildings with a door gap
	BuildingMin   int // minimum building side length in tiles
	BuildingMax   int // maximum building side length in tiles
	PondCount     int // water blobs
	PondRadius    int // maximum pond radius in tiles
	MudPatches    int // mud blobs along ponds and roads
	TreeCount     int // scattered single-tile trees
}

// DefaultMapConfig is sized for maps of roughly 40x30 tiles and up.
var DefaultMapConfig = MapConfig{
	RoadCount:     2,
	RoadWidth:     3,
	BuildingCount: 5,
	BuildingMin:   5,
	BuildingMax:   9,
	PondCount:     3,
	PondRadius:    4,
	MudPatches:    4,
	TreeCount:     25,
}

// GenerateMap builds a deterministic world from the seed carried by rng.
// Stamp order matters: roads first, then buildings (kept off roads), then
// ponds, mud and trees in the remaining open ground.
func GenerateMap(cols, rows int, rng *rand.Rand, cfg MapConfig) *TileMap {
	tm := NewTileMap(cols, rows)

	for _, pos := range spreadSlots(rows, (cfg.RoadCount+1)/2, rng) {
		carveRoad(tm, true, pos, cfg.RoadWidth)
	}
	for _, pos := range spreadSlots(cols, cfg.RoadCount/2, rng) {
		carveRoad(tm, false, pos, cfg.RoadWidth)
	}
	for i := 0; i < cfg.BuildingCount; i++ {
		placeBuilding(tm, rng, cfg.BuildingMin, cfg.BuildingMax)
	}
	for i := 0; i < cfg.PondCount; i++ {
		placeBlob(tm, rng, GroundWater, cfg.PondRadius)
	}
	for i := 0; i < cfg.MudPatches; i++ {
		placeBlob(tm, rng, GroundMud, cfg.PondRadius/2+1)
	}
	for i := 0; i < cfg.TreeCount; i++ {
		col := rng.Intn(cols)
		row := rng.Intn(rows)
		if tm.Ground(col, row) == GroundGrass && tm.ObjectAt(col, row) == ObjectNone {
			tm.SetObject(col, row, ObjectTree)
		}
	}
	return tm
}

// spreadSlots distributes n slots evenly across mapSize with jitter.
func spreadSlots(mapSize, n int, rng *rand.Rand) []int {
	if n <= 0 {
		return nil
	}
	slots := make([]int, 0, n)
	margin := mapSize / 8
	usable := mapSize - 2*margin
	for i := 0; i < n; i++ {
		base := margin + (usable*(2*i+1))/(2*n)
		jitter := rng.Intn(maxInt(1, usable/(n*4))) - usable/(n*8)
		pos := clampInt(base+jitter, margin, mapSize-margin-1)
		slots = append(slots, pos)
	}
	return slots
}

// carveRoad stamps a straight road across the full map at the given
// cross-axis position, with dirt shoulders on both edges.
func carveRoad(tm *TileMap, horizontal bool, pos, width int) {
	hw := width / 2
	length := tm.Cols
	if !horizontal {
		length = tm.Rows
	}
	for along := 0; along < length; along++ {
		for d := -hw - 1; d <= hw+1; d++ {
			col, row := along, pos+d
			if !horizontal {
				col, row = pos+d, along
			}
			if !tm.inBounds(col, row) {
				continue
			}
			if d >= -hw && d <= hw {
				tm.SetGround(col, row, GroundRoad)
				tm.SetObject(col, row, ObjectNone)
			} else if tm.Ground(col, row) == GroundGrass {
				tm.SetGround(col, row, GroundDirt)
			}
		}
	}
}

// placeBuilding stamps a walled rectangle with a dirt floor and one door gap.
// Buildings refuse to overlap roads or water so every door stays reachable.
func placeBuilding(tm *TileMap, rng *rand.Rand, minSide, maxSide int) {
	w := minSide + rng.Intn(maxInt(1, maxSide-minSide+1))
	h := minSide + rng.Intn(maxInt(1, maxSide-minSide+1))
	if tm.Cols <= w+2 || tm.Rows <= h+2 {
		return
	}

	for attempt := 0; attempt < 20; attempt++ {
		col := 1 + rng.Intn(tm.Cols-w-2)
		row := 1 + rng.Intn(tm.Rows-h-2)
		if regionTouches(tm, col-1, row-1, w+2, h+2) {
			continue
		}
		for r := row; r < row+h; r++ {
			for c := col; c < col+w; c++ {
				onEdge := r == row || r == row+h-1 || c == col || c == col+w-1
				tm.SetGround(c, r, GroundDirt)
				if onEdge {
					tm.SetObject(c, r, ObjectWall)
				}
			}
		}
		// Door gap in the middle of a random side.
		switch rng.Intn(4) {
		case 0:
			tm.SetObject(col+w/2, row, ObjectNone)
		case 1:
			tm.SetObject(col+w/2, row+h-1, ObjectNone)
		case 2:
			tm.SetObject(col, row+h/2, ObjectNone)
		default:
			tm.SetObject(col+w-1, row+h/2, ObjectNone)
		}
		return
	}
}

// regionTouches reports whether any tile in the rect is road, water or built.
func regionTouches(tm *TileMap, col, row, w, h int) bool {
	for r := row; r < row+h; r++ {
		for c := col; c < col+w; c++ {
			if !tm.inBounds(c, r) {
				return true
			}
			if g := tm.Ground(c, r); g == GroundRoad || g == GroundWater {
				return true
			}
			if tm.ObjectAt(c, r) != ObjectNone {
				return true
			}
		}
	}
	return false
}

// placeBlob stamps a rough disc of ground type g, skipping built tiles.
func placeBlob(tm *TileMap, rng *rand.Rand, g GroundType, maxRadius int) {
	if maxRadius < 1 {
		maxRadius = 1
	}
	cx := rng.Intn(tm.Cols)
	cy := rng.Intn(tm.Rows)
	radius := 1 + rng.Intn(maxRadius)
	for row := cy - radius; row <= cy+radius; row++ {
		for col := cx - radius; col <= cx+radius; col++ {
			if !tm.inBounds(col, row) {
				continue
			}
			dc, dr := col-cx, row-cy
			if dc*dc+dr*dr > radius*radius {
				continue
			}
			if tm.ObjectAt(col, row) != ObjectNone || tm.Ground(col, row) == GroundRoad {
				continue
			}
			tm.SetGround(col, row, g)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

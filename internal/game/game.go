package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/calder-james/wayfind/internal/pathing"
)

const (
	tileSize    = 16 // pixels per tile
	borderWidth = 16 // gap between the window edge and the world
	hudHeight   = 40 // pixel strip above the world for HUD text
)

// groundBaseColour returns the base RGB colour for a ground type.
func groundBaseColour(g GroundType) color.RGBA {
	switch g {
	case GroundGrass:
		return color.RGBA{R: 30, G: 48, B: 30, A: 255}
	case GroundDirt:
		return color.RGBA{R: 48, G: 42, B: 34, A: 255}
	case GroundRoad:
		return color.RGBA{R: 52, G: 50, B: 46, A: 255}
	case GroundMud:
		return color.RGBA{R: 50, G: 40, B: 28, A: 255}
	case GroundWater:
		return color.RGBA{R: 28, G: 38, B: 55, A: 255}
	case GroundRubble:
		return color.RGBA{R: 52, G: 48, B: 40, A: 255}
	default:
		return color.RGBA{R: 30, G: 45, B: 30, A: 255}
	}
}

// objectColour returns the fill colour for an object, or ok=false for none.
func objectColour(o ObjectType) (color.RGBA, bool) {
	switch o {
	case ObjectWall:
		return color.RGBA{R: 90, G: 88, B: 84, A: 255}, true
	case ObjectTree:
		return color.RGBA{R: 26, G: 66, B: 30, A: 255}, true
	case ObjectCrate:
		return color.RGBA{R: 96, G: 72, B: 40, A: 255}, true
	case ObjectFence:
		return color.RGBA{R: 70, G: 58, B: 44, A: 255}, true
	default:
		return color.RGBA{}, false
	}
}

// Game is the windowed ebiten front end over a headless Sim. All world and
// pathfinding logic lives in the sim; this type only renders and routes input.
type Game struct {
	sim       *Sim
	width     int // window width in pixels
	height    int // window height in pixels
	selected  int // index of the agent receiving click orders
	showPaths bool

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool
}

// New creates a windowed game around a fresh simulation.
func New(opts ...SimOption) (*Game, error) {
	sim, err := NewSim(opts...)
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:       sim,
		width:     sim.Cols*tileSize + 2*borderWidth,
		height:    sim.Rows*tileSize + 2*borderWidth + hudHeight,
		showPaths: true,
		prevKeys:  make(map[ebiten.Key]bool),
	}, nil
}

// keyJustPressed edge-detects a key against the previous frame.
func (g *Game) keyJustPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = down
	return down && !was
}

func (g *Game) handleInput() {
	if g.keyJustPressed(ebiten.KeyP) {
		g.showPaths = !g.showPaths
	}
	if g.keyJustPressed(ebiten.KeyTab) && len(g.sim.Agents) > 0 {
		g.selected = (g.selected + 1) % len(g.sim.Agents)
	}
	if g.keyJustPressed(ebiten.KeyR) {
		if err := CopyReport(BuildReport(g.sim)); err != nil {
			log.Printf("copy report: %v", err)
		}
	}

	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !g.prevMouseLeft && len(g.sim.Agents) > 0 {
		mx, my := ebiten.CursorPosition()
		col := (mx - borderWidth) / tileSize
		row := (my - borderWidth - hudHeight) / tileSize
		if g.sim.TileMap.inBounds(col, row) {
			a := g.sim.Agents[g.selected]
			goal := pathing.Point{X: col, Y: row}
			if a.SetGoal(goal, g.sim.PathMap) {
				g.sim.Log.Add(g.sim.Tick, a.Label(), "goal", "ordered",
					fmt.Sprintf("(%d,%d)", col, row), 0)
			}
		}
	}
	g.prevMouseLeft = left
}

// Update runs one simulation tick per frame.
func (g *Game) Update() error {
	g.handleInput()
	g.sim.Step()
	return nil
}

// Draw renders the world, agent paths, agents, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	ox := float32(borderWidth)
	oy := float32(borderWidth + hudHeight)

	for row := 0; row < g.sim.Rows; row++ {
		for col := 0; col < g.sim.Cols; col++ {
			x := ox + float32(col*tileSize)
			y := oy + float32(row*tileSize)
			vector.FillRect(screen, x, y, tileSize, tileSize,
				groundBaseColour(g.sim.TileMap.Ground(col, row)), false)
			if c, ok := objectColour(g.sim.TileMap.ObjectAt(col, row)); ok {
				vector.FillRect(screen, x+1, y+1, tileSize-2, tileSize-2, c, false)
			}
		}
	}

	if g.showPaths {
		pathCol := color.RGBA{R: 240, G: 220, B: 80, A: 160}
		for _, a := range g.sim.Agents {
			wps := a.Path()
			for i := 1; i < len(wps); i++ {
				x0, y0 := tileCentre(wps[i-1], ox, oy)
				x1, y1 := tileCentre(wps[i], ox, oy)
				vector.StrokeLine(screen, x0, y0, x1, y1, 1.0, pathCol, false)
			}
		}
	}

	for i, a := range g.sim.Agents {
		cx := ox + float32(a.Col*tileSize) + tileSize/2
		cy := oy + float32(a.Row*tileSize) + tileSize/2
		body := color.RGBA{R: 200, G: 60, B: 50, A: 255}
		if a.State() == AgentStuck {
			body = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		}
		vector.DrawFilledCircle(screen, cx, cy, tileSize/2-2, body, true)
		if i == g.selected {
			vector.StrokeCircle(screen, cx, cy, tileSize/2, 1.0,
				color.RGBA{R: 255, G: 255, B: 255, A: 200}, true)
		}
	}

	worldW := float32(g.sim.Cols * tileSize)
	worldH := float32(g.sim.Rows * tileSize)
	vector.StrokeRect(screen, ox-1, oy-1, worldW+2, worldH+2, 2.0,
		color.RGBA{R: 70, G: 100, B: 70, A: 255}, false)

	text.Draw(screen, "Wayfind", basicfont.Face7x13, borderWidth, 18,
		color.RGBA{R: 220, G: 230, B: 210, A: 255})
	r := BuildReport(g.sim)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("tick=%d agent=A%d paths=%d failed=%d  [click] order  [tab] select  [p] paths  [r] copy report",
			g.sim.Tick, g.selected, r.PathsComputed, r.FailedSearches),
		borderWidth, 22)
}

// Layout reports the fixed window size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func tileCentre(p pathing.Point, ox, oy float32) (float32, float32) {
	return ox + float32(p.X*tileSize) + tileSize/2, oy + float32(p.Y*tileSize) + tileSize/2
}

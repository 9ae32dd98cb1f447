package main

import (
	"flag"
	"log"
	"time"

	"github.com/calder-james/wayfind/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var cols, rows, agents int
	var seed int64
	flag.IntVar(&cols, "cols", 56, "world width in tiles")
	flag.IntVar(&rows, "rows", 40, "world height in tiles")
	flag.IntVar(&agents, "agents", 6, "number of wandering agents")
	flag.Int64Var(&seed, "seed", 0, "world seed (0 = time-based)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(
		game.WithSize(cols, rows),
		game.WithSeed(seed),
		game.WithAgents(agents),
	)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Wayfind")
	ebiten.SetWindowSize(g.Layout(0, 0))
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

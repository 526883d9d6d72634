// Command chessrules is a two-player chess board built with Ebitengine.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessrules/internal/ui"
)

var (
	dataDir   = flag.String("data", "", "data directory (default: platform data directory)")
	noStorage = flag.Bool("no-store", false, "do not load or save preferences and statistics")
	mute      = flag.Bool("no-sound", false, "start with sound off")
	verbose   = flag.Bool("v", false, "log every move to stderr")
)

func main() {
	flag.Parse()

	cfg := ui.Config{
		DataDir:   *dataDir,
		NoStorage: *noStorage,
		Mute:      *mute,
	}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "", log.Ltime)
	}

	game := ui.NewGame(cfg)
	defer func() {
		if err := game.Close(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Chess")

	if err := ebiten.RunGame(game); err != nil {
		log.Print(err)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"drainage/internal/app"
	"drainage/internal/config"
	"drainage/internal/logging"
	"drainage/internal/tile"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	file, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Println(err)
	}
	if err := cfg.Apply(flag.CommandLine, &file); err != nil {
		log.Fatalf("flags: %v", err)
	}
	logger := logging.Setup(file.Log.Path, "drainage ")

	gen, err := tile.NewGenerator(file.Drainage)
	if err != nil {
		log.Fatalf("config %s: %v", cfg.ConfigPath, err)
	}
	loader := tile.NewLoader(gen, file.Loader, logger)
	game := app.New(loader, file.Viewer.Scale, cfg.Width, cfg.Height, logger)
	defer game.Close()

	if cfg.Watch {
		w, err := config.Watch(cfg.ConfigPath, logger, func(f config.File) {
			game.SetConfig(f.Drainage)
		})
		if err != nil {
			log.Printf("not watching %s: %v", cfg.ConfigPath, err)
		} else {
			defer w.Close()
		}
	}

	ebiten.SetWindowTitle("drainage")
	ebiten.SetTPS(file.Viewer.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

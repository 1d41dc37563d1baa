package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dd0wney/cluso-opsdeck/pkg/config"
	"github.com/dd0wney/cluso-opsdeck/pkg/deck"
	"github.com/dd0wney/cluso-opsdeck/pkg/export"
	"github.com/dd0wney/cluso-opsdeck/pkg/graphview"
)

// snapshot viewport, in pixels for raster/vector output
var snapshotViewport = graphview.Viewport{Width: 1200, Height: 800}

func runSnapshot(out string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	gen := deck.NewGenerator(flagSeed)
	spaces := gen.Spaces(5)
	agents := gen.Agents(9, spaces)
	ledgers := gen.Ledgers(24)
	entities, edges := deck.Graph(agents, ledgers, spaces)

	engine := graphview.NewEngine(graphview.WithColorScheme(cfg.ColorScheme()))
	engine.SetThreeD(cfg.ThreeD)
	engine.Resize(snapshotViewport.Width, snapshotViewport.Height)
	engine.SetData(entities, edges)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	scene := engine.Scene()
	switch filepath.Ext(out) {
	case ".json":
		data, err := export.JSON(scene)
		if err != nil {
			return err
		}
		_, err = f.Write(data)
		return err
	case ".png":
		return export.PNG(f, scene, engine.Camera(), "", snapshotViewport)
	case ".svg":
		return export.SVG(f, scene, engine.Camera(), "", snapshotViewport)
	default:
		return fmt.Errorf("unsupported snapshot format %q", filepath.Ext(out))
	}
}

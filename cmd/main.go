package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/smasonuk/gowire3d"
	"github.com/smasonuk/gowire3d/termview"
	"github.com/smasonuk/gowire3d/viewer"
)

func main() {
	configFile := flag.String("config", "", "TOML config file")
	meshFile := flag.String("mesh", "", "mesh text file")
	out := flag.String("out", "", "output image (.png, .bmp, .tif)")
	width := flag.Int("width", 0, "canvas width in pixels")
	height := flag.Int("height", 0, "canvas height in pixels")
	lineColor := flag.String("color", "", "line colour, name or #rrggbb")
	background := flag.String("bg", "", "background colour, name or #rrggbb")
	frames := flag.Int("frames", 0, "turntable frames about the Y axis")
	workers := flag.Int("workers", 0, "concurrent renders")
	caption := flag.Bool("caption", false, "write mesh statistics onto each frame")
	view := flag.Bool("view", false, "open an interactive window")
	term := flag.Bool("term", false, "show the mesh in the terminal")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := gowire3d.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = gowire3d.LoadConfig(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mesh":
			cfg.Mesh = *meshFile
		case "out":
			cfg.Output = *out
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "color":
			cfg.Color = *lineColor
		case "bg":
			cfg.Background = *background
		case "frames":
			cfg.Frames = *frames
		case "workers":
			cfg.Workers = *workers
		case "caption":
			cfg.Caption = *caption
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Mesh == "" {
		fmt.Fprintln(os.Stderr, "a mesh file is required")
		flag.Usage()
		os.Exit(2)
	}

	logger.Info("loading mesh", "file", cfg.Mesh)
	mesh, err := gowire3d.LoadMeshFromFile(cfg.Mesh)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("mesh loaded", "vertices", mesh.NumVertices(), "faces", mesh.NumFaces())

	switch {
	case *view:
		err = viewer.Run(mesh, cfg, logger)
	case *term:
		err = runTerminal(mesh, cfg, logger)
	default:
		err = renderFiles(mesh, cfg, logger)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runTerminal(mesh *gowire3d.Mesh, cfg gowire3d.Config, logger *slog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()
	return termview.Run(s, mesh, cfg, logger)
}

func renderFiles(mesh *gowire3d.Mesh, cfg gowire3d.Config, logger *slog.Logger) error {
	job := gowire3d.RenderJob{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Color:      cfg.LineColor(),
		Background: cfg.BackgroundColor(),
	}
	imgs, err := gowire3d.RenderTurntable(context.Background(), mesh, cfg.Frames, cfg.Workers, job)
	if err != nil {
		return err
	}
	for i, img := range imgs {
		if cfg.Caption {
			gowire3d.DrawCaption(img, gowire3d.MeshCaption(mesh), cfg.LineColor())
		}
		name := gowire3d.FrameName(cfg.Output, i, len(imgs))
		if err := gowire3d.SaveImage(name, img); err != nil {
			return err
		}
		logger.Info("wrote frame", "file", name)
	}
	return nil
}

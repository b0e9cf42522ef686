// terramesh converts raster images into triangulated, biome-colored
// terrain meshes.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/terramesh/internal/config"
	"github.com/Faultbox/terramesh/internal/export"
	"github.com/Faultbox/terramesh/internal/logger"
	"github.com/Faultbox/terramesh/internal/procgen"
	"github.com/Faultbox/terramesh/internal/sampler"
	"github.com/Faultbox/terramesh/internal/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "mesh":
		cmdMesh(args)
	case "preview":
		cmdPreview(args)
	case "generate", "gen":
		cmdGenerate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terramesh - heightmap image to terrain mesh converter

Usage:
  terramesh <command> [options]

Commands:
  mesh <image>      Convert an image to a terrain mesh (OBJ)
  preview <image>   Render the biome classification to a PNG
  generate          Generate a default terrain mesh from seeded noise

Options (all commands):
  -config path      Config file path
  -resolution N     Grid resolution, vertices per side
  -scale S          Elevation height scale
  -seed N           Generator seed (generate only)
  -o path           Output file path
  -debug            Enable debug logging

Examples:
  terramesh mesh heightmap.png -o terrain.obj
  terramesh preview heightmap.png -resolution 256
  terramesh generate -seed 42 -scale 20`)
}

// setup loads config, applies flag overrides and initializes logging.
func setup(f *config.Flags) *config.Config {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		die(err)
	}
	f.Apply(cfg)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		die(err)
	}
	return cfg
}

func cmdMesh(args []string) {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	var f config.Flags
	f.Bind(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terramesh mesh <image> [options]")
		os.Exit(1)
	}
	input := fs.Arg(0)

	cfg := setup(&f)
	defer logger.Sync()

	buf := synthesizeImage(input, cfg)
	out := outputPath(f.Output, cfg.Export.OutputDir, input, ".obj")

	if err := export.SaveOBJ(out, buf); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}

	logger.Info("mesh written",
		zap.String("path", out),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("triangles", buf.TriangleCount()))
}

func cmdPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	var f config.Flags
	f.Bind(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terramesh preview <image> [options]")
		os.Exit(1)
	}
	input := fs.Arg(0)

	cfg := setup(&f)
	defer logger.Sync()

	buf := synthesizeImage(input, cfg)
	out := outputPath(f.Output, cfg.Export.OutputDir, input, ".png")

	img := export.Preview(buf, cfg.Pipeline.Resolution)
	if err := export.SavePNG(out, img); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}

	logger.Info("preview written", zap.String("path", out))
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var f config.Flags
	f.Bind(fs)
	fs.Parse(args)

	cfg := setup(&f)
	defer logger.Sync()

	gen := procgen.New(cfg.Generator.Seed)
	pixels := gen.Pixels(cfg.Pipeline.Resolution)

	buf, err := terrain.Synthesize(pixels, cfg.Pipeline.Resolution, cfg.Pipeline.HeightScale)
	if err != nil {
		logger.Fatal("synthesis failed", zap.Error(err))
	}

	out := f.Output
	if out == "" {
		out = filepath.Join(cfg.Export.OutputDir, "terrain.obj")
	}

	if err := export.SaveOBJ(out, buf); err != nil {
		logger.Fatal("export failed", zap.Error(err))
	}

	logger.Info("generated mesh written",
		zap.String("path", out),
		zap.Int64("seed", cfg.Generator.Seed),
		zap.Int("vertices", buf.VertexCount()))
}

// synthesizeImage runs the image through the full pipeline.
func synthesizeImage(path string, cfg *config.Config) *terrain.GeometryBuffer {
	img, err := sampler.Load(path)
	if err != nil {
		logger.Fatal("loading image failed", zap.Error(err))
	}

	pixels := sampler.Sample(img, cfg.Pipeline.Resolution)

	buf, err := terrain.Synthesize(pixels, cfg.Pipeline.Resolution, cfg.Pipeline.HeightScale)
	if err != nil {
		logger.Fatal("synthesis failed", zap.Error(err))
	}

	logger.Debug("synthesized geometry",
		zap.Int("resolution", cfg.Pipeline.Resolution),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("triangles", buf.TriangleCount()))

	return buf
}

// outputPath picks the output file: the explicit -o flag if given,
// otherwise the input's base name with the new extension in the
// configured output directory.
func outputPath(explicit, outDir, input, ext string) string {
	if explicit != "" {
		return explicit
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(outDir, base+ext)
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

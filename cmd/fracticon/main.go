package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard"
	"github.com/mrsinham/fracticon/internal/server"
	"github.com/mrsinham/fracticon/internal/sheet"
	"gopkg.in/yaml.v3"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// Check for subcommands (before flag.Parse)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "wizard":
			// Extract --from flag if present
			var fromConfig string
			for i, arg := range os.Args[2:] {
				if arg == "--from" && i+3 < len(os.Args) {
					fromConfig = os.Args[i+3]
				}
			}
			if err := wizard.Run(fromConfig); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			os.Exit(0)

		case "serve":
			runServe(os.Args[2:])
			os.Exit(0)

		case "sheet":
			runSheet(os.Args[2:])
			os.Exit(0)
		}
	}

	// Define command-line flags
	input := flag.String("input", "", "Text to derive the avatar from (required)")
	output := flag.String("output", "avatar.png", "Output file path")
	flag.StringVar(output, "o", "avatar.png", "Output file path (shortcut)")
	asSVG := flag.Bool("svg", false, "Write SVG markup instead of PNG")
	size := flag.Int("size", 128, "Image width and height in pixels")
	grid := flag.Int("grid", 64, "Fractal grid resolution")
	family := flag.String("family", "julia", "Fractal family: julia, mandelbrot, burning-ship, tricorn")
	preset := flag.String("preset", "", "Named constant preset (empty = seeded from input)")
	constant := flag.String("constant", "", "Explicit constant 're,im' (overrides preset and seed)")
	palette := flag.String("palette", "random", "Palette style (see -help for the list)")
	colors := flag.Int("colors", 5, "Number of colors in the palette ramp")
	circular := flag.Bool("circular", false, "Clip the avatar to a circle")
	meta := flag.Bool("meta", false, "Print generation metadata as YAML to stdout")
	quiet := flag.Bool("quiet", false, "Suppress banner and summary output")

	// Interactive wizard and config options
	interactive := flag.Bool("interactive", false, "Launch interactive wizard")
	flag.BoolVar(interactive, "i", false, "Launch interactive wizard (shortcut)")
	configFile := flag.String("config", "", "Load configuration from YAML file")
	saveConfig := flag.String("save-config", "", "Save configuration to YAML file (after generation)")

	help := flag.Bool("help", false, "Show help message")
	showVersion := flag.Bool("version", false, "Show version")

	flag.Parse()

	// Handle interactive mode
	if *interactive {
		if err := wizard.Run(""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Handle config file loading
	if *configFile != "" {
		job, err := wizard.LoadFromYAML(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		opts, err := wizard.ToOptions(job)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error converting config: %v\n", err)
			os.Exit(1)
		}

		if !*quiet {
			fmt.Println("fracticon")
			fmt.Println("=========")
			fmt.Printf("Loading config from %s\n\n", *configFile)
		}

		out := job.Output
		if out == "" {
			out = *output
		}
		if err := render(job.Input, out, job.Format == "svg", *meta, *quiet, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Show version
	if *showVersion {
		fmt.Printf("fracticon %s\n", version)
		os.Exit(0)
	}

	// Show help
	if *help {
		printHelp()
		os.Exit(0)
	}

	// Validate required arguments
	if *input == "" {
		fmt.Fprintf(os.Stderr, "Error: -input is required\n")
		printUsage()
		os.Exit(1)
	}

	if *size <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -size must be > 0\n")
		os.Exit(1)
	}

	if *grid <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -grid must be > 0\n")
		os.Exit(1)
	}

	if *colors <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -colors must be > 0\n")
		os.Exit(1)
	}

	// Validate family
	if !contains(fracticon.Families(), *family) {
		fmt.Fprintf(os.Stderr, "Error: invalid family %q, valid options: %v\n", *family, fracticon.Families())
		os.Exit(1)
	}

	// Validate preset
	if *preset != "" && !contains(fracticon.Presets(), *preset) {
		fmt.Fprintf(os.Stderr, "Error: invalid preset %q, valid options: %v\n", *preset, fracticon.Presets())
		os.Exit(1)
	}

	// Build generation options
	opts := &fracticon.Options{
		Size:      *size,
		GridSize:  *grid,
		Circular:  *circular,
		Family:    *family,
		Preset:    *preset,
		Palette:   *palette,
		NumColors: *colors,
	}

	if *constant != "" {
		c, err := fracticon.ParseConstant(*constant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Constant = &c
	}

	if !*quiet {
		fmt.Println("fracticon")
		fmt.Println("=========")
		fmt.Println()
	}

	if err := render(*input, *output, *asSVG, *meta, *quiet, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Save config if requested
	if *saveConfig != "" {
		format := "png"
		if *asSVG {
			format = "svg"
		}
		job := wizard.FromOptions(*input, *output, format, opts)
		if err := wizard.SaveToYAML(job, *saveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		} else if !*quiet {
			fmt.Printf("Configuration saved to %s\n", *saveConfig)
		}
	}
}

// render generates the avatar, writes it to outputPath and optionally
// prints the generation metadata as YAML.
func render(input, outputPath string, asSVG, showMeta, quiet bool, opts *fracticon.Options) error {
	var out []byte
	var md *fracticon.Metadata
	var err error

	switch {
	case asSVG:
		out, err = fracticon.GenerateSVG(input, opts)
	case showMeta:
		out, md, err = fracticon.GenerateWithMetadata(input, opts)
	default:
		out, err = fracticon.Generate(input, opts)
	}
	if err != nil {
		return err
	}

	// SVG output still gets metadata from the same deterministic pipeline
	if showMeta && md == nil {
		if _, md, err = fracticon.GenerateWithMetadata(input, opts); err != nil {
			return err
		}
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	if showMeta {
		y, err := yaml.Marshal(md)
		if err != nil {
			return fmt.Errorf("encoding metadata: %w", err)
		}
		fmt.Print(string(y))
	}

	if !quiet {
		fmt.Println("\n✓ Avatar written!")
		fmt.Printf("  Output: %s (%d bytes)\n", outputPath, len(out))
	}

	return nil
}

// runServe starts the HTTP avatar service.
func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)

	defaultAddr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		defaultAddr = ":" + p
	}

	addr := fs.String("addr", defaultAddr, "Listen address (env: PORT)")
	cacheDB := fs.String("cache-db", os.Getenv("CACHE_DB"), "SQLite file for the avatar cache, empty disables caching (env: CACHE_DB)")
	logLevel := fs.String("log-level", envOr("LOG_LEVEL", "info"), "Log level: debug, info, warn, error (env: LOG_LEVEL)")
	fs.Parse(args)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(server.Config{
		Addr:      *addr,
		CachePath: *cacheDB,
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer srv.Close()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runSheet renders a labeled contact sheet for several inputs at once.
func runSheet(args []string) {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)

	output := fs.String("o", "sheet.png", "Output file path")
	cols := fs.Int("cols", 0, "Columns in the sheet (0 = near-square layout)")
	size := fs.Int("size", 128, "Size of each avatar in pixels")
	grid := fs.Int("grid", 64, "Fractal grid resolution")
	family := fs.String("family", "julia", "Fractal family")
	preset := fs.String("preset", "", "Named constant preset")
	palette := fs.String("palette", "random", "Palette style")
	colors := fs.Int("colors", 5, "Number of colors in the palette ramp")
	circular := fs.Bool("circular", false, "Clip each avatar to a circle")
	fs.Parse(args)

	inputs := fs.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one input is required")
		fmt.Fprintln(os.Stderr, "\nUsage:")
		fmt.Fprintln(os.Stderr, "  fracticon sheet [options] <input> [input...]")
		fs.PrintDefaults()
		os.Exit(1)
	}

	opts := &fracticon.Options{
		Size:      *size,
		GridSize:  *grid,
		Circular:  *circular,
		Family:    *family,
		Preset:    *preset,
		Palette:   *palette,
		NumColors: *colors,
	}

	out, err := sheet.Render(inputs, opts, *cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing %s: %v\n", *output, err)
		os.Exit(1)
	}

	fmt.Printf("✓ Sheet with %d avatars written to %s\n", len(inputs), *output)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage:")
	fmt.Fprintln(os.Stderr, "  fracticon -input <TEXT> [options]")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
}

func printHelp() {
	fmt.Println("fracticon")
	fmt.Println("=========")
	fmt.Println()
	fmt.Println("Generate deterministic fractal avatars from any text.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fracticon -input <TEXT> [options]")
	fmt.Println("  fracticon wizard [--from <config.yaml>]")
	fmt.Println("  fracticon sheet [options] <input> [input...]")
	fmt.Println("  fracticon serve [options]")
	fmt.Println()
	fmt.Println("The same input always produces the same avatar. Inputs are")
	fmt.Println("hashed with SHA-256; hex strings of 16+ characters are used")
	fmt.Println("as a digest directly.")
	fmt.Println()
	fmt.Println("Required arguments:")
	fmt.Println("  -input <TEXT>         Text to derive the avatar from")
	fmt.Println()
	fmt.Println("Optional arguments:")
	fmt.Println("  -o, -output <FILE>    Output file path (default: 'avatar.png')")
	fmt.Println("  -svg                  Write SVG markup instead of PNG")
	fmt.Println("  -size <N>             Image width and height in pixels (default: 128)")
	fmt.Println("  -grid <N>             Fractal grid resolution (default: 64)")
	fmt.Println("  -circular             Clip the avatar to a circle")
	fmt.Println()
	fmt.Println("Look options:")
	fmt.Printf("  -family <NAME>        Fractal family: %s (default: julia)\n", strings.Join(fracticon.Families(), ", "))
	fmt.Println("  -preset <NAME>        Named constant, pins the shape across inputs:")
	fmt.Printf("                        %s\n", strings.Join(fracticon.Presets(), ", "))
	fmt.Println("  -constant <RE,IM>     Explicit constant (e.g. '-0.8,0.156'), overrides preset")
	fmt.Printf("  -palette <NAME>       Palette style: %s (default: random)\n", strings.Join(fracticon.PaletteStyles(), ", "))
	fmt.Println("  -colors <N>           Number of colors in the palette ramp (default: 5)")
	fmt.Println()
	fmt.Println("Output options:")
	fmt.Println("  -meta                 Print generation metadata as YAML to stdout")
	fmt.Println("  -quiet                Suppress banner and summary output")
	fmt.Println()
	fmt.Println("Config options:")
	fmt.Println("  -i, -interactive      Launch the interactive wizard")
	fmt.Println("  -config <FILE>        Load configuration from YAML file")
	fmt.Println("  -save-config <FILE>   Save configuration to YAML file (after generation)")
	fmt.Println()
	fmt.Println("  -help                 Show this help message")
	fmt.Println("  -version              Show version")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Avatar for a username")
	fmt.Println("  fracticon -input \"ada@example.org\"")
	fmt.Println()
	fmt.Println("  # Large circular avatar with a fixed palette")
	fmt.Println("  fracticon -input ada -size 512 -circular -palette ocean")
	fmt.Println()
	fmt.Println("  # Same silhouette for everyone, colors still per-input")
	fmt.Println("  fracticon -input ada -preset rabbit")
	fmt.Println()
	fmt.Println("  # Explicit Julia constant")
	fmt.Println("  fracticon -input ada -constant \"-0.8,0.156\"")
	fmt.Println()
	fmt.Println("  # Scalable SVG with generation details")
	fmt.Println("  fracticon -input ada -svg -o ada.svg -meta")
	fmt.Println()
	fmt.Println("  # Contact sheet for a whole team")
	fmt.Println("  fracticon sheet -size 96 -circular alice bob carol dave")
	fmt.Println()
	fmt.Println("  # HTTP service with a persistent cache")
	fmt.Println("  fracticon serve -addr :8080 -cache-db avatars.db")
	fmt.Println()
	fmt.Println("Output:")
	fmt.Println("  PNG files are RGBA with an optional transparent circular mask.")
	fmt.Println("  SVG files draw one rect per grid cell and scale losslessly.")
	fmt.Println()
	fmt.Println("Reproducibility:")
	fmt.Println("  The pipeline is fully deterministic: the input digest seeds the")
	fmt.Println("  PRNG that picks the fractal constant, zoom and palette, so the")
	fmt.Println("  same input and options reproduce the identical file anywhere.")
}

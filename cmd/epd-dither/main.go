// Command epd-dither renders an image into the palette of a colour e-paper
// display.
//
// Usage:
//
//	epd-dither photo.jpg photo.png
//	epd-dither -strategy octahedron-average -diffuse atkinson in.png out.png
//	epd-dither -noise bayer:4 -resize 800x480 in.jpg out.bmp
//	epd-dither -dither-palette naive -strategy bruteforce-favor-mix in.png out.png
//	epd-dither -palette-file panel.toml in.png out.png
//
// The output format follows the output file extension: png, jpg, gif, bmp
// or tiff.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"golang.org/x/term"

	dither "github.com/tphakala/go-epd-dither"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Parse command line flags
	noiseName := flag.String("noise", defaultNoise, "Noise source: "+strings.Join(dither.NoiseNames(), ", "))
	strategyName := flag.String("strategy", defaultStrategy, "Decomposition strategy: "+strings.Join(dither.StrategyNames(), ", "))
	kernelName := flag.String("diffuse", defaultKernel, "Diffusion kernel: "+strings.Join(dither.KernelNames(), ", "))
	ditherPalette := flag.String("dither-palette", defaultPalette, "Palette to decompose against: "+strings.Join(dither.PaletteNames(), ", "))
	outputPalette := flag.String("output-palette", defaultPalette, "Palette written to the output image")
	paletteFile := flag.String("palette-file", "", "TOML palette file used as dither palette (overrides -dither-palette)")
	fallback := flag.String("fallback", "", "Strategy used when -strategy cannot handle the palette")
	serpentine := flag.Bool("serpentine", true, "Alternate scan direction on odd rows")
	parallel := flag.Bool("parallel", true, "Decompose pixels on all CPUs before diffusion")
	resize := flag.String("resize", "", "Resize the input to WxH before dithering (e.g. 800x480)")
	workers := flag.Int("workers", 0, "Goroutines used with -parallel (0 = GOMAXPROCS)")
	verbose := new(bool)
	flag.BoolVar(verbose, "v", false, "Verbose output")
	flag.BoolVar(verbose, "verbose", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s photo.jpg photo.png                        # Spectra 6 defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -noise bayer:4 -diffuse none in.png out.png # Ordered dither only\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -resize 800x480 in.jpg out.bmp             # Fit a 7.3\" panel\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if *verbose {
		dither.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	inputPath := args[0]
	outputPath := args[1]

	config, err := buildConfig(options{
		noise:         *noiseName,
		strategy:      *strategyName,
		fallback:      *fallback,
		kernel:        *kernelName,
		ditherPalette: *ditherPalette,
		outputPalette: *outputPalette,
		paletteFile:   *paletteFile,
		serpentine:    *serpentine,
		parallel:      *parallel,
		workers:       *workers,
	})
	if err != nil {
		return err
	}

	d, err := dither.New(config)
	if err != nil {
		return fmt.Errorf("failed to create ditherer: %w", err)
	}

	if *verbose {
		colour := term.IsTerminal(int(os.Stderr.Fd()))
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Strategy: %s", d.Strategy())
		log.Printf("Kernel: %s", config.Kernel.Name)
		log.Printf("Dither palette:")
		for _, line := range paletteLines(config.DitherPalette, colour) {
			log.Print(line)
		}
	}

	img, err := openImage(inputPath)
	if err != nil {
		return err
	}

	if *resize != "" {
		w, h, err := parseSize(*resize)
		if err != nil {
			return err
		}
		img = resizeImage(img, w, h)
	}

	start := time.Now()
	out := d.Dither(img)
	elapsed := time.Since(start)

	if err := writeImage(outputPath, out); err != nil {
		return err
	}

	b := out.Bounds()
	fmt.Printf("Dithered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %dx%d pixels, %d colours, %s\n", b.Dx(), b.Dy(), len(out.Palette), d.Strategy())
	fmt.Printf("  Duration: %.2fs\n", elapsed.Seconds())
	return nil
}

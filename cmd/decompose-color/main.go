// Command decompose-color prints how colours split into palette weights.
//
// Usage:
//
//	decompose-color '#767A85' '#FF8000'
//	decompose-color -strategy all -palette naive '#808080'
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	dither "github.com/tphakala/go-epd-dither"
)

const (
	allStrategies  = "all"
	weightColWidth = 8
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	paletteName := flag.String("palette", "spectra6", "Palette: "+strings.Join(dither.PaletteNames(), ", "))
	paletteFile := flag.String("palette-file", "", "TOML palette file (overrides -palette)")
	strategyName := flag.String("strategy", allStrategies, "Strategy name, or \"all\" for every named strategy")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] color...\n\n", os.Args[0])
		flag.PrintDefaults()
		return fmt.Errorf("no colors given")
	}

	palette, err := loadPalette(*paletteName, *paletteFile)
	if err != nil {
		return err
	}
	strategies, err := strategiesFor(*strategyName)
	if err != nil {
		return err
	}

	ditherers := make([]*dither.Ditherer, 0, len(strategies))
	for _, s := range strategies {
		config := dither.DefaultConfig()
		config.DitherPalette = palette
		config.OutputPalette = nil
		config.Strategy = s
		d, err := dither.New(config)
		if err != nil {
			fmt.Printf("%-28s unavailable: %v\n", s, err)
			continue
		}
		ditherers = append(ditherers, d)
	}
	if len(ditherers) == 0 {
		return fmt.Errorf("no strategy can decompose this palette")
	}

	fmt.Printf("%-28s", "")
	for i := range palette {
		fmt.Printf("%*s", weightColWidth, palette.Hex(i))
	}
	fmt.Printf("%*s\n", weightColWidth+4, "error")

	for _, arg := range flag.Args() {
		c, err := dither.ParseHexColor(arg)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s\n", arg)

		want := r3.Vec{X: float64(c.R) / 255, Y: float64(c.G) / 255, Z: float64(c.B) / 255}
		for _, d := range ditherers {
			w := d.Decompose(c)
			fmt.Printf("  %-26s", d.Strategy())
			for _, v := range w {
				fmt.Printf("%*.4f", weightColWidth, v)
			}
			fmt.Printf("%*.2e\n", weightColWidth+4, r3.Norm(r3.Sub(d.Mix(w), want)))
		}
	}
	return nil
}

func loadPalette(name, file string) (dither.Palette, error) {
	if file != "" {
		return dither.LoadPaletteFile(file)
	}
	p, ok := dither.PaletteByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	return p, nil
}

func strategiesFor(name string) ([]dither.Strategy, error) {
	if name != allStrategies {
		s, err := dither.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		return []dither.Strategy{s}, nil
	}
	return []dither.Strategy{
		dither.StrategyOctahedronClosest,
		dither.StrategyOctahedronFurthest,
		dither.StrategyOctahedronAverage,
		dither.StrategyBruteforceMix,
		dither.StrategyBruteforceDominant,
		dither.StrategyNaiveMix,
		dither.StrategyNaiveDominant,
	}, nil
}

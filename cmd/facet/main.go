// Package main is the facet command line tool: it loads a theme, realizes
// its faces against a terminal-modeled surface, and prints the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/facet/internal/face"
	"github.com/dshills/facet/internal/face/attr"
	"github.com/dshills/facet/internal/face/device"
	"github.com/dshills/facet/internal/face/device/termdev"
	"github.com/dshills/facet/internal/face/realize"
	"github.com/dshills/facet/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	themePath string
	list      bool
	resolve   string
	colors    int
}

func run() int {
	opts, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("facet %s (%s)\n", version, commit)
		return 0
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	env := face.NewEnvironment(logger)

	if opts.themePath != "" {
		th, err := theme.Load(opts.themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load theme: %v\n", err)
			return 1
		}
		if th == nil {
			fmt.Fprintf(os.Stderr, "Error: unsupported theme format: %s\n", opts.themePath)
			return 1
		}
		if err := th.Apply(env); err != nil {
			fmt.Fprintf(os.Stderr, "Error: apply theme: %v\n", err)
			return 1
		}
	}

	colors := opts.colors
	if colors == 0 && !term.IsTerminal(int(os.Stdout.Fd())) {
		// Degrade to the smallest palette when piping output.
		colors = 16
	}
	surface, err := env.NewSurface(realize.Devices{
		Fonts:  nopFonts{},
		Colors: termdev.NewColors(colors, "white", "black"),
		Caps:   termdev.DefaultCaps,
	}, realize.Options{}, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: create surface: %v\n", err)
		return 1
	}

	switch {
	case opts.resolve != "":
		return resolveFace(surface, opts.resolve)
	case opts.list:
		return listFaces(env, surface)
	default:
		flag.Usage()
		return 2
	}
}

// nopFonts is the font resolver for terminal output, which has no font
// loading; realization falls back to defaulted font metrics.
type nopFonts struct{}

func (nopFonts) LoadFont(v *attr.Vector) (device.FontHandle, error) {
	return nil, device.ErrFontUnavailable
}

func (nopFonts) ReleaseFont(h device.FontHandle) {}

func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.themePath, "theme", "", "Theme file to load (.toml, .json, .lua)")
	flag.StringVar(&opts.themePath, "t", "", "Theme file to load (shorthand)")
	flag.BoolVar(&opts.list, "list", false, "List all defined faces")
	flag.StringVar(&opts.resolve, "resolve", "", "Resolve one face and print its realized attributes")
	flag.IntVar(&opts.colors, "colors", 0, "Palette size (0 = true color)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Facet - face attribute resolver\n\n")
		fmt.Fprintf(os.Stderr, "Usage: facet [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  facet -theme dusk.toml -list\n")
		fmt.Fprintf(os.Stderr, "  facet -theme dusk.toml -resolve warning\n")
	}
	flag.Parse()
	return opts, showVersion
}

func listFaces(env *face.Environment, s *face.Surface) int {
	names := env.Names()
	sort.Strings(names)
	for _, name := range names {
		v, ok := s.LookupNamedFace(name)
		if !ok {
			continue
		}
		fmt.Printf("%-24s %s\n", name, summarize(&v))
	}
	return 0
}

func resolveFace(s *face.Surface, name string) int {
	def, err := s.BasicFace(realize.BasicDefault)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	base := def.Attributes()
	f, err := s.Realize(name, &base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("face %s (id %d)\n", name, f.ID())
	fmt.Printf("  foreground %s%s\n", f.Foreground.RGB.Hex(), defaulted(f.Foreground.Defaulted))
	fmt.Printf("  background %s%s\n", f.Background.RGB.Hex(), defaulted(f.Background.Defaulted))
	for _, line := range []struct {
		name string
		on   bool
	}{
		{"bold", f.Bold},
		{"italic", f.Italic},
		{"underline", f.Underline},
		{"overline", f.Overline},
		{"strike-through", f.StrikeThrough},
		{"inverse", f.Inverse},
		{"overstrike", f.Overstrike},
	} {
		if line.on {
			fmt.Printf("  %s\n", line.name)
		}
	}
	if f.BoxLineWidth > 0 {
		fmt.Printf("  box %d %s\n", f.BoxLineWidth, f.BoxC.RGB.Hex())
	}
	return 0
}

func summarize(v *attr.Vector) string {
	var parts []string
	if fg, ok := v[attr.SlotForeground].Str(); ok {
		parts = append(parts, "fg="+fg)
	}
	if bg, ok := v[attr.SlotBackground].Str(); ok {
		parts = append(parts, "bg="+bg)
	}
	if w, ok := v[attr.SlotWeight].Weight(); ok {
		parts = append(parts, "weight="+w.String())
	}
	if s, ok := v[attr.SlotSlant].Slant(); ok && s != attr.SlantNormal {
		parts = append(parts, "slant="+s.String())
	}
	if h, ok := v[attr.SlotHeight].Int(); ok {
		parts = append(parts, fmt.Sprintf("height=%d", h))
	}
	if len(parts) == 0 {
		return "(unspecified)"
	}
	return strings.Join(parts, " ")
}

func defaulted(on bool) string {
	if on {
		return " (defaulted)"
	}
	return ""
}

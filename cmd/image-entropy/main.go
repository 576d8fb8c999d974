package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"image-entropy/internal/entropy"
	"image-entropy/internal/imaging"
	"image-entropy/internal/logger"
	"image-entropy/internal/render"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	input        string
	method       string
	kernelSize   int
	radius       int
	output       string
	noRender     bool
	gradientMode string
	combineMode  string
	invertOutput bool
	version      bool
}

func main() {
	prog := filepath.Base(os.Args[0])

	var opts options
	fs := flag.NewFlagSet(prog, flag.ExitOnError)
	fs.StringVar(&opts.input, "i", "", "path to input image file")
	fs.StringVar(&opts.input, "input", "", "path to input image file")
	fs.StringVar(&opts.method, "m", entropy.DefaultMethod,
		"method to use. possible values: "+strings.Join(entropy.Names(), ", "))
	fs.StringVar(&opts.method, "method", entropy.DefaultMethod,
		"method to use. possible values: "+strings.Join(entropy.Names(), ", "))
	fs.IntVar(&opts.kernelSize, "k", 11, "kernel size. must be a positive odd integer (minimum: 3)")
	fs.IntVar(&opts.kernelSize, "kernel-size", 11, "kernel size. must be a positive odd integer (minimum: 3)")
	fs.IntVar(&opts.radius, "r", 10, "disk radius for the regional disk method")
	fs.IntVar(&opts.radius, "radius", 10, "disk radius for the regional disk method")
	fs.StringVar(&opts.output, "o", "", "montage PNG destination (default: <input>-<method>.png)")
	fs.StringVar(&opts.output, "output", "", "montage PNG destination (default: <input>-<method>.png)")
	fs.BoolVar(&opts.noRender, "no-render", false, "compute and print only, write no montage")
	fs.StringVar(&opts.gradientMode, "gradient-mode", "real", "gradient scheme: real or kernel")
	fs.StringVar(&opts.combineMode, "combine-mode", "concave", "gradient display combination: convex or concave")
	fs.BoolVar(&opts.invertOutput, "invert-output", true, "bitwise-invert the delentropy gradient display")
	fs.BoolVar(&opts.version, "version", false, "print version information and exit")
	fs.Parse(os.Args[1:])

	if opts.version {
		fmt.Printf("image-entropy %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	method, params, err := validate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		fs.Usage()
		os.Exit(2)
	}

	if err := run(prog, opts, method, params); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		os.Exit(1)
	}
}

// validate checks every argument before any computation starts. Bad
// arguments are usage errors, distinct from runtime failures.
func validate(opts options) (entropy.Method, entropy.Params, error) {
	if opts.input == "" {
		return entropy.Method{}, entropy.Params{}, fmt.Errorf("no input image given (use --input)")
	}

	method, err := entropy.Lookup(opts.method)
	if err != nil {
		return entropy.Method{}, entropy.Params{}, err
	}

	params := entropy.DefaultParams()
	params.KernelSize = opts.kernelSize
	params.Radius = opts.radius
	params.InvertOutput = opts.invertOutput
	if params.GradientMode, err = entropy.ParseGradientMode(opts.gradientMode); err != nil {
		return entropy.Method{}, entropy.Params{}, err
	}
	if params.CombineMode, err = entropy.ParseCombineMode(opts.combineMode); err != nil {
		return entropy.Method{}, entropy.Params{}, err
	}
	if err := params.Validate(); err != nil {
		return entropy.Method{}, entropy.Params{}, err
	}
	return method, params, nil
}

func run(prog string, opts options, method entropy.Method, params entropy.Params) error {
	log := logger.FromEnv().With().Str("component", "cli").Logger()
	log.Debug().Str("version", Version).Str("commit", GitCommit).Msg("starting")

	log.Info().Str("path", opts.input).Msg("reading image")
	img, info, err := imaging.Load(opts.input)
	if err != nil {
		return err
	}
	log.Info().
		Int("width", info.Width).
		Int("height", info.Height).
		Str("format", info.Format).
		Str("depth", info.ColorDepth).
		Msg("image decoded")

	in := entropy.Input{Color: img, Grey: imaging.Intensity(img)}

	ev := log.Info().Str("method", method.Name)
	if method.UsesKernel {
		ev = ev.Int("kernel_size", params.KernelSize)
	}
	if method.UsesRadius {
		ev = ev.Int("radius", params.Radius)
	}
	if method.UsesGradient {
		ev = ev.Stringer("gradient_mode", params.GradientMode).
			Stringer("combine_mode", params.CombineMode)
	}
	ev.Msg("processing image")

	start := time.Now()
	res, err := method.Run(in, params)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("method finished")

	for _, s := range res.Stats {
		fmt.Printf("%s: %s\n", prog, s)
	}

	if opts.noRender {
		return nil
	}
	panels := render.Panels(res)
	if len(panels) == 0 {
		log.Debug().Msg("method has no visual output, skipping montage")
		return nil
	}

	out := opts.output
	if out == "" {
		stem := strings.TrimSuffix(opts.input, filepath.Ext(opts.input))
		out = stem + "-" + method.Name + ".png"
	}
	if err := render.Save(out, render.Compose(panels)); err != nil {
		return err
	}
	log.Info().Str("path", out).Int("panels", len(panels)).Msg("montage written")
	return nil
}

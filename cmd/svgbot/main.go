// Command svgbot draws the paths of an SVG file with the mouse pointer.
//
// The drawing area on screen is either given with --dest (or in the config
// file) or calibrated interactively: after a countdown the pointer position
// is read once for the top left and once for the bottom right corner.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/vasalvit/svgbot"
	"github.com/vasalvit/svgbot/xdotool"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "svgbot:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	config    string
	device    string
	button    int
	countdown int
	dest      string
	cont      bool
	dryRun    bool
	verbose   bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := pflag.NewFlagSet("svgbot", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: svgbot [flags] file.svg")
		fs.PrintDefaults()
	}
	fs.StringVarP(&opts.config, "config", "c", "", "TOML configuration file")
	fs.StringVar(&opts.device, "device", "xdotool", "device command prefix")
	fs.IntVar(&opts.button, "button", 1, "mouse button")
	fs.IntVar(&opts.countdown, "countdown", 3, "calibration countdown in seconds")
	fs.StringVar(&opts.dest, "dest", "", `destination area "left,top,right,bottom" (skips calibration)`)
	fs.BoolVar(&opts.cont, "continue", false, "keep drawing other shapes after a device failure")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "print pointer actions instead of driving the device")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one SVG file")
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	svgbot.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return err
	}

	path := fs.Arg(0)
	fmt.Fprintf(stdout, "path: %s\n", path)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	doc, err := svgbot.ParseSvgFromReader(f, path)
	f.Close()
	if err != nil {
		return err
	}

	var source svgbot.Rect
	if cfg.Source != nil {
		source, err = cfg.Source.Rect()
	} else {
		source, err = doc.Area()
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "SVG's width: %g, height: %g\n", source.Width, source.Height)

	shapes, err := doc.Shapes()
	if err != nil {
		return err
	}

	var (
		pointer svgbot.Pointer
		locator svgbot.Locator
	)
	if opts.dryRun {
		pointer = svgbot.Printer{W: stdout}
	} else {
		drv, err := xdotool.New(cfg.Device.Command, cfg.Device.Button)
		if err != nil {
			return err
		}
		pointer, locator = drv, drv
	}

	var destination svgbot.Rect
	switch {
	case cfg.Destination != nil:
		destination, err = cfg.Destination.Rect()
	case locator == nil:
		err = errors.New("a dry run needs a destination area, use --dest")
	default:
		c := &svgbot.Calibrator{Locator: locator, Out: stdout, Countdown: cfg.Calibration.Countdown}
		destination, err = c.Area()
	}
	if err != nil {
		return err
	}

	session := &svgbot.Session{
		Source:                source,
		Destination:           destination,
		Pointer:               pointer,
		ContinueOnDeviceError: cfg.ContinueOnDeviceError,
	}
	report, err := session.Draw(shapes)
	if report != nil {
		fmt.Fprintln(stdout, report)
	}
	return err
}

// loadConfig reads the config file, if any, and applies the flags that were
// set explicitly on top of it.
func loadConfig(fs *pflag.FlagSet, opts options) (svgbot.Config, error) {
	cfg := svgbot.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = svgbot.LoadConfig(opts.config); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("device") {
		cfg.Device.Command = opts.device
	}
	if fs.Changed("button") {
		cfg.Device.Button = opts.button
	}
	if fs.Changed("countdown") {
		cfg.Calibration.Countdown = opts.countdown
	}
	if fs.Changed("continue") {
		cfg.ContinueOnDeviceError = opts.cont
	}
	if fs.Changed("dest") {
		a, err := svgbot.ParseArea(opts.dest)
		if err != nil {
			return cfg, fmt.Errorf("--dest: %w", err)
		}
		cfg.Destination = &a
	}
	return cfg, cfg.Validate()
}

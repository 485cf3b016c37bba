// Package xdotool drives the X11 mouse pointer through the xdotool utility.
// Every action runs one xdotool process and waits for it to exit.
package xdotool

import (
	"bytes"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Runner runs the named program and returns what it wrote to stdout.
type Runner func(name string, args ...string) ([]byte, error)

// Driver is a pointer device backed by xdotool. It implements
// svgbot.Pointer and svgbot.Locator.
type Driver struct {
	command []string
	button  int
	run     Runner
}

// New returns a driver that runs command, which may carry extra arguments
// ("xdotool --sync" or "ssh box xdotool"), and presses the given button.
func New(command string, button int) (*Driver, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("error parsing device command %q: %w", command, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("device command %q is empty", command)
	}
	if button < 1 {
		return nil, fmt.Errorf("invalid mouse button %d", button)
	}
	return &Driver{command: args, button: button, run: run}, nil
}

// WithRunner replaces the process runner, mostly for tests.
func (d *Driver) WithRunner(r Runner) *Driver {
	d.run = r
	return d
}

func run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return out, fmt.Errorf("%w: %s", err, msg)
		}
		return out, err
	}
	return out, nil
}

func (d *Driver) exec(sub string, args ...string) ([]byte, error) {
	full := make([]string, 0, len(d.command)+len(args))
	full = append(full, d.command[1:]...)
	full = append(full, sub)
	full = append(full, args...)
	out, err := d.run(d.command[0], full...)
	if err != nil {
		return nil, fmt.Errorf("%s %s finished with failure: %w", d.command[0], sub, err)
	}
	return out, nil
}

// MoveTo moves the pointer to the nearest whole pixel.
func (d *Driver) MoveTo(x, y float64) error {
	_, err := d.exec("mousemove", pixel(x), pixel(y))
	return err
}

// Press holds the button down.
func (d *Driver) Press() error {
	_, err := d.exec("mousedown", strconv.Itoa(d.button))
	return err
}

// Release lets the button go.
func (d *Driver) Release() error {
	_, err := d.exec("mouseup", strconv.Itoa(d.button))
	return err
}

// Position returns the current pointer location.
func (d *Driver) Position() (x, y float64, err error) {
	out, err := d.exec("getmouselocation")
	if err != nil {
		return 0, 0, err
	}
	return parseLocation(string(out))
}

func pixel(v float64) string {
	return strconv.FormatInt(int64(math.Round(v)), 10)
}

// parseLocation reads output like "x:123 y:456 screen:0 window:1234".
func parseLocation(out string) (x, y float64, err error) {
	var xs, ys string
	for _, f := range strings.Fields(out) {
		switch {
		case strings.HasPrefix(f, "x:"):
			xs = f[2:]
		case strings.HasPrefix(f, "y:"):
			ys = f[2:]
		}
	}
	if xs == "" || ys == "" {
		return 0, 0, fmt.Errorf("xdotool getmouselocation returned invalid data: %q", out)
	}
	x, errx := strconv.ParseFloat(xs, 64)
	y, erry := strconv.ParseFloat(ys, 64)
	if errx != nil || erry != nil {
		return 0, 0, fmt.Errorf("couldn't parse coords returned by xdotool getmouselocation: %s %s", xs, ys)
	}
	return x, y, nil
}

package svgbot

import (
	"fmt"
	"io"
	"time"
)

// Calibrator asks the operator to point at the corners of the drawing area
// and samples the pointer position after a countdown.
type Calibrator struct {
	Locator   Locator
	Out       io.Writer
	Countdown int

	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Sample counts down and then reads the pointer position.
func (c *Calibrator) Sample(location string) (x, y float64, err error) {
	sleep := c.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	fmt.Fprintf(c.Out, "%s location will be read in:\n", location)
	for i := c.Countdown; i > 0; i-- {
		fmt.Fprintln(c.Out, i)
		sleep(time.Second)
	}
	x, y, err = c.Locator.Position()
	if err != nil {
		return 0, 0, fmt.Errorf("reading %s location: %w", location, err)
	}
	fmt.Fprintf(c.Out, "%s: %g, %g\n", location, x, y)
	return x, y, nil
}

// Area samples the top left and then the bottom right corner.
func (c *Calibrator) Area() (Rect, error) {
	left, top, err := c.Sample("Top left")
	if err != nil {
		return Rect{}, err
	}
	right, bottom, err := c.Sample("Bottom right")
	if err != nil {
		return Rect{}, err
	}
	r, err := RectFromCorners(left, top, right, bottom)
	if err != nil {
		return Rect{}, fmt.Errorf("calibration: %w", err)
	}
	return r, nil
}

package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Soundtrack tap
	VisualRingSize  = 8192
	SmoothingFactor = 0.6
	LevelWindow     = 2048

	// Page layout, in logical pixels
	ContentMaxWidth = 1100
	SectionPadding  = 96
	FeatureColumns  = 2
	FeatureCardH    = 170
	ShowcaseHeight  = 420
	TimelineItemH   = 110
	FooterHeight    = 80
	ScrollStep      = 60
	PageStep        = 480

	// Reveal on scroll
	RevealThreshold = 0.35
	RevealDuration  = 800 * time.Millisecond
	RevealOffset    = 40

	// Hero parallax
	ParallaxFactor    = 0.06
	ParallaxRotateDeg = -6

	// Terminal host: logical pixels per cell
	CellWidth  = 8
	CellHeight = 16
	DefaultFPS = 60
)

var (
	BackgroundColor = color.RGBA{R: 5, G: 4, B: 14, A: 255}
	TextColor       = color.RGBA{R: 236, G: 232, B: 255, A: 255}
	MutedTextColor  = color.RGBA{R: 170, G: 160, B: 210, A: 255}
	AccentColor     = color.RGBA{R: 255, G: 46, B: 196, A: 255}
	AccentAltColor  = color.RGBA{R: 0, G: 229, B: 255, A: 255}
	CardColor       = color.RGBA{R: 20, G: 16, B: 44, A: 220}
	CardBorderColor = color.RGBA{R: 90, G: 60, B: 160, A: 255}
	VideoColor      = color.RGBA{R: 8, G: 10, B: 24, A: 255}
)

// Mode selects which host runs the showcase.
type Mode string

const (
	ModeWindow   Mode = "window"
	ModeTerminal Mode = "terminal"
	ModeExport   Mode = "export"
)

var ErrInvalidOption = errors.New("invalid option")

// Options are the runtime settings collected from the command line.
type Options struct {
	Mode       Mode
	LogLevel   string
	Fullscreen bool

	Soundtrack     string
	PickSoundtrack bool
	Volume         float64

	// Export
	Output    string
	Width     int
	Height    int
	Density   float64
	TimeMS    float64
	Frames    int
	FrameStep float64 // milliseconds between exported frames

	// Terminal
	FPS int
}

// Validate checks option ranges and normalises case-insensitive values.
func (o *Options) Validate() error {
	o.Mode = Mode(strings.ToLower(string(o.Mode)))
	switch o.Mode {
	case ModeWindow, ModeTerminal, ModeExport:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidOption, o.Mode)
	}
	if _, err := ParseLevel(o.LogLevel); err != nil {
		return err
	}
	if o.Volume < -10 || o.Volume > 2 {
		return fmt.Errorf("%w: volume %v out of range [-10, 2]", ErrInvalidOption, o.Volume)
	}
	if o.Mode == ModeExport {
		if o.Output == "" {
			return fmt.Errorf("%w: export needs an output path", ErrInvalidOption)
		}
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("%w: export size %dx%d", ErrInvalidOption, o.Width, o.Height)
		}
		if o.Density <= 0 {
			return fmt.Errorf("%w: density %v must be positive", ErrInvalidOption, o.Density)
		}
		if o.Frames < 1 {
			return fmt.Errorf("%w: export needs at least one frame, got %d", ErrInvalidOption, o.Frames)
		}
	}
	if o.FPS <= 0 || o.FPS > 240 {
		return fmt.Errorf("%w: fps %d out of range (0, 240]", ErrInvalidOption, o.FPS)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidOption, s)
	}
	return l, nil
}

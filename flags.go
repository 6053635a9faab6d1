package main

import (
	"flag"

	"github.com/iburimskiy/pulse-drift/internal/config"
)

// Command-line flags. They are collected into config.Options by options().
var (
	// modeFlag picks the host: a desktop window, the terminal, or PNG export.
	modeFlag = flag.String("mode", string(config.ModeWindow), "host to run: window, terminal or export")

	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn or error")

	// fullscreenFlag starts the window host in fullscreen.
	fullscreenFlag = flag.Bool("fullscreen", false, "start the window fullscreen")

	// soundtrackFlag loops an audio file behind the showcase (wav, mp3 or flac).
	soundtrackFlag = flag.String("soundtrack", "", "audio file to loop in the window host")

	// pickSoundtrackFlag opens a file dialog at startup when no soundtrack is given.
	pickSoundtrackFlag = flag.Bool("pick-soundtrack", false, "choose the soundtrack in a file dialog at startup")

	volumeFlag = flag.Float64("volume", 0, "soundtrack gain in log2 steps, -10 (silent) to 2")

	// Export flags. Sizes are logical pixels; images are written at size × density.
	outputFlag    = flag.String("out", "pulse-drift.png", "export: output PNG path")
	widthFlag     = flag.Int("width", 1100, "export: canvas width in logical pixels")
	heightFlag    = flag.Int("height", config.ShowcaseHeight, "export: canvas height in logical pixels")
	densityFlag   = flag.Float64("density", 2, "export: device pixel ratio")
	timeFlag      = flag.Float64("time", 0, "export: animation time of the first frame, in milliseconds")
	framesFlag    = flag.Int("frames", 1, "export: number of frames to write")
	frameStepFlag = flag.Float64("frame-step", 1000.0/config.DefaultFPS, "export: milliseconds between frames")

	// fpsFlag sets the terminal host refresh rate.
	fpsFlag = flag.Int("fps", config.DefaultFPS, "terminal: frames per second")
)

func options() config.Options {
	return config.Options{
		Mode:           config.Mode(*modeFlag),
		LogLevel:       *logLevelFlag,
		Fullscreen:     *fullscreenFlag,
		Soundtrack:     *soundtrackFlag,
		PickSoundtrack: *pickSoundtrackFlag,
		Volume:         *volumeFlag,
		Output:         *outputFlag,
		Width:          *widthFlag,
		Height:         *heightFlag,
		Density:        *densityFlag,
		TimeMS:         *timeFlag,
		Frames:         *framesFlag,
		FrameStep:      *frameStepFlag,
		FPS:            *fpsFlag,
	}
}

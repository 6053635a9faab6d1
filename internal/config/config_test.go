package config

import (
	"errors"
	"log/slog"
	"testing"
)

func validOptions() Options {
	return Options{
		Mode:     ModeWindow,
		LogLevel: "info",
		Volume:   0,
		Output:   "frame.png",
		Width:    800,
		Height:   400,
		Density:  1,
		Frames:   1,
		FPS:      DefaultFPS,
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(*Options) {}, false},
		{"mode is case insensitive", func(o *Options) { o.Mode = "Terminal" }, false},
		{"unknown mode", func(o *Options) { o.Mode = "vr" }, true},
		{"bad log level", func(o *Options) { o.LogLevel = "loud" }, true},
		{"volume too loud", func(o *Options) { o.Volume = 3 }, true},
		{"export without output", func(o *Options) { o.Mode = ModeExport; o.Output = "" }, true},
		{"export zero width", func(o *Options) { o.Mode = ModeExport; o.Width = 0 }, true},
		{"export zero density", func(o *Options) { o.Mode = ModeExport; o.Density = 0 }, true},
		{"export zero frames", func(o *Options) { o.Mode = ModeExport; o.Frames = 0 }, true},
		{"export ok", func(o *Options) { o.Mode = ModeExport }, false},
		{"window ignores export size", func(o *Options) { o.Width = 0 }, false},
		{"fps zero", func(o *Options) { o.FPS = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOptions()
			tt.mutate(&o)
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidOption) {
				t.Errorf("error %v does not wrap ErrInvalidOption", err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
}

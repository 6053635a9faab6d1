package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/pulse-drift/internal/config"
)

// ErrUnsupportedFormat is returned for soundtrack files beep cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

const meterBands = 32

type decoder func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decoder{
	".wav": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(rc)
	},
	".mp3": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return mp3.Decode(rc)
	},
	".flac": func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return flac.Decode(rc)
	},
}

func decoderFor(path string) (decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	dec, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return dec, nil
}

// soundtrack plays one audio file on a loop through the shared speaker and
// exposes a smoothed level meter of what is currently audible.
type soundtrack struct {
	log *slog.Logger

	path     string
	format   beep.Format
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	tap      *visualTap
	levels   []float64

	speakerRate beep.SampleRate
	paused      bool
}

func newSoundtrack(log *slog.Logger) *soundtrack {
	return &soundtrack{log: log}
}

// Load decodes path and starts looping it at the given volume (log2 gain).
// Any previously playing file is stopped first.
func (s *soundtrack) Load(path string, volume float64) error {
	dec, err := decoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open soundtrack: %w", err)
	}
	streamer, format, err := dec(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode soundtrack %s: %w", filepath.Base(path), err)
	}

	// chain: streamer -> loop -> volume -> tap -> ctrl
	vol := &effects.Volume{Streamer: beep.Loop(-1, streamer), Base: 2, Volume: volume}
	tap := newVisualTap(vol, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: tap}

	if err := s.initSpeaker(format.SampleRate); err != nil {
		_ = streamer.Close()
		return err
	}

	s.Close()
	s.path = path
	s.format = format
	s.streamer = streamer
	s.volume = vol
	s.tap = tap
	s.ctrl = ctrl
	s.paused = false
	speaker.Play(ctrl)

	length := format.SampleRate.D(streamer.Len()).Round(time.Second)
	s.log.Info("soundtrack looping", "file", filepath.Base(path), "rate", int(format.SampleRate), "length", length)
	return nil
}

func (s *soundtrack) initSpeaker(rate beep.SampleRate) error {
	if s.speakerRate == rate {
		return nil
	}
	if s.speakerRate != 0 {
		speaker.Clear()
	}
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", int(rate), err)
	}
	s.speakerRate = rate
	return nil
}

// Pick opens a file dialog and loads the chosen file. A cancelled dialog is
// not an error.
func (s *soundtrack) Pick(volume float64) error {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose a soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("soundtrack dialog: %w", err)
	}
	return s.Load(filename, volume)
}

// Loaded reports whether a file is playing or paused.
func (s *soundtrack) Loaded() bool {
	return s.ctrl != nil
}

// TogglePause pauses or resumes playback.
func (s *soundtrack) TogglePause() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.paused = !s.paused
	s.ctrl.Paused = s.paused
	speaker.Unlock()
}

// AdjustVolume changes the gain by delta (log2 steps), clamped to [-10, 2].
func (s *soundtrack) AdjustVolume(delta float64) float64 {
	if s.volume == nil {
		return 0
	}
	speaker.Lock()
	v := s.volume.Volume + delta
	v = max(-10, min(v, 2))
	s.volume.Volume = v
	s.volume.Silent = v <= -10
	speaker.Unlock()
	return v
}

// Position reports how far into the current loop playback is and the
// length of the file.
func (s *soundtrack) Position() (pos, length time.Duration) {
	if s.streamer == nil {
		return 0, 0
	}
	speaker.Lock()
	p, n := s.streamer.Position(), s.streamer.Len()
	speaker.Unlock()
	return s.format.SampleRate.D(p), s.format.SampleRate.D(n)
}

// Update refreshes the level meter from the tap.
func (s *soundtrack) Update() {
	if s.tap == nil || s.paused {
		s.levels = bands(nil, meterBands, s.levels, config.SmoothingFactor)
		for i := range s.levels {
			s.levels[i] *= config.SmoothingFactor
		}
		return
	}
	s.levels = bands(s.tap.snapshot(config.LevelWindow), meterBands, s.levels, config.SmoothingFactor)
}

// Levels returns the smoothed band levels in [0, 1].
func (s *soundtrack) Levels() []float64 {
	return s.levels
}

// Close stops playback and releases the decoder. Safe to call repeatedly.
func (s *soundtrack) Close() {
	if s.ctrl == nil {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
	if err := s.streamer.Close(); err != nil {
		s.log.Warn("close soundtrack", "file", filepath.Base(s.path), "err", err)
	}
	s.streamer = nil
	s.ctrl = nil
	s.tap = nil
	s.volume = nil
}

package cue

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/maruel/natural"

	"github.com/exerun/exerun/internal/pathutil"
)

// SampleRate is the rate the speaker is initialised with.
const SampleRate beep.SampleRate = 44100

// Off disables a cue sound.
const Off = "off"

type note struct {
	freq float64
	dur  time.Duration
}

// tones are the built-in cue sounds, generated rather than shipped as files.
var tones = map[string][]note{
	"tick": {
		{freq: 880, dur: 120 * time.Millisecond},
	},
	"go": {
		{freq: 1320, dur: 450 * time.Millisecond},
	},
	"bell": {
		{freq: 660, dur: 180 * time.Millisecond},
		{freq: 990, dur: 260 * time.Millisecond},
	},
	"whistle": {
		{freq: 1760, dur: 150 * time.Millisecond},
		{freq: 0, dur: 80 * time.Millisecond},
		{freq: 1760, dur: 150 * time.Millisecond},
	},
	"gong": {
		{freq: 440, dur: 300 * time.Millisecond},
		{freq: 330, dur: 300 * time.Millisecond},
		{freq: 220, dur: 600 * time.Millisecond},
	},
}

var soundExts = []string{".ogg", ".mp3", ".flac", ".wav"}

// BuiltIn returns the names of the generated tones.
func BuiltIn() []string {
	names := make([]string, 0, len(tones))
	for k := range tones {
		names = append(names, k)
	}

	sort.Sort(natural.StringSlice(names))

	return names
}

// Custom returns the sound files found in dir without their extension,
// naturally sorted. A missing dir yields no names.
func Custom(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if slices.Contains(soundExts, strings.ToLower(filepath.Ext(e.Name()))) {
			names = append(names, pathutil.StripExtension(e.Name()))
		}
	}

	sort.Sort(natural.StringSlice(names))

	return names, nil
}

// generate renders a built-in tone into a buffer.
func generate(notes []note) (*beep.Buffer, error) {
	format := beep.Format{
		SampleRate:  SampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	buf := beep.NewBuffer(format)

	for _, n := range notes {
		samples := SampleRate.N(n.dur)

		if n.freq == 0 {
			buf.Append(beep.Silence(samples))
			continue
		}

		sine, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, err
		}

		buf.Append(&effects.Volume{
			Streamer: beep.Take(samples, sine),
			Base:     2,
			Volume:   -1.5,
		})
	}

	return buf, nil
}

// resolve finds the file for a custom sound. Absolute or relative paths
// with a known extension are used as is; bare names are looked up in dir.
func resolve(sound, dir string) (string, error) {
	if filepath.Ext(sound) != "" {
		if _, err := os.Stat(sound); err == nil {
			return sound, nil
		}

		candidate := filepath.Join(dir, sound)
		if _, err := os.Stat(candidate); err != nil {
			return "", errSoundNotFound.Fmt(sound)
		}

		return candidate, nil
	}

	for _, ext := range soundExts {
		candidate := filepath.Join(dir, sound+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errSoundNotFound.Fmt(sound)
}

// decode loads a sound file into memory at the speaker sample rate.
func decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()
		return nil, errDecodeSound.Wrap(err)
	}

	defer closeStream(stream, f)

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, stream)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  SampleRate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(s)

	return buf, nil
}

func closeStream(stream beep.StreamSeekCloser, f io.Closer) {
	_ = stream.Close()
	_ = f.Close()
}

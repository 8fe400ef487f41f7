// Package cue plays workout cues: short sounds through the system speaker
// and desktop notifications. Playback never blocks the caller and failures
// are only logged.
package cue

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/exerun/exerun/internal/apperr"
	"github.com/exerun/exerun/internal/logging"
	"github.com/exerun/exerun/internal/session"
)

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}

	errSoundNotFound = &apperr.Error{
		Message: "sound %q was not found",
	}

	errDecodeSound = &apperr.Error{
		Message: "unable to decode sound",
	}
)

// Sounds maps each cue to a built-in tone, a sound name from the sound
// directory, a file path, or Off.
type Sounds map[session.Cue]string

// DefaultSounds is used for cues missing from the configuration.
var DefaultSounds = Sounds{
	session.CueCountdown: "tick",
	session.CueGo:        "go",
	session.CueWork:      "whistle",
	session.CueRest:      "bell",
	session.CueFinish:    "gong",
}

var notifications = map[session.Cue][2]string{
	session.CueWork:   {"Work Time", "Next set starting"},
	session.CueRest:   {"Rest Time", "Catch your breath"},
	session.CueFinish: {"Workout Finished!", "Great job, all sets done"},
}

// Options configures a Player.
type Options struct {
	Sounds   Sounds
	SoundDir string
	Mute     bool
	Notify   bool
	Logger   *slog.Logger
}

// Player plays the sound and notification of each cue.
type Player struct {
	opts    Options
	logger  *slog.Logger
	mu      sync.Mutex
	buffers map[string]*beep.Buffer

	// replaced in tests
	play   func(beep.Streamer) error
	notify func(title, msg string) error
}

// NewPlayer creates a Player. The speaker is only initialised when the
// first sound is played.
func NewPlayer(opts Options) *Player {
	p := &Player{
		opts:    opts,
		logger:  opts.Logger,
		buffers: make(map[string]*beep.Buffer),
		play:    playOnSpeaker,
		notify:  desktopNotify,
	}

	if p.logger == nil {
		p.logger = logging.Discard()
	}

	return p
}

var (
	speakerOnce sync.Once
	speakerErr  error
)

func playOnSpeaker(s beep.Streamer) error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(SampleRate, SampleRate.N(time.Second/10))
	})

	if speakerErr != nil {
		return speakerErr
	}

	speaker.Play(s)

	return nil
}

func desktopNotify(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// Cue plays the sound for c and sends a notification for phase changes.
func (p *Player) Cue(c session.Cue) {
	if !p.opts.Mute {
		p.playSound(c)
	}

	if p.opts.Notify {
		if n, ok := notifications[c]; ok {
			go func() {
				if err := p.notify(n[0], n[1]); err != nil {
					p.logger.Warn(
						"unable to display notification",
						slog.String("cue", c.String()),
						slog.Any("error", err),
					)
				}
			}()
		}
	}
}

// Preload decodes every configured sound so the first cue plays on time.
func (p *Player) Preload() {
	if p.opts.Mute {
		return
	}

	for c := range DefaultSounds {
		if _, err := p.buffer(p.soundFor(c)); err != nil {
			p.logger.Warn(
				"unable to load sound",
				slog.String("cue", c.String()),
				slog.Any("error", err),
			)
		}
	}
}

func (p *Player) soundFor(c session.Cue) string {
	if s, ok := p.opts.Sounds[c]; ok && s != "" {
		return s
	}

	return DefaultSounds[c]
}

func (p *Player) playSound(c session.Cue) {
	name := p.soundFor(c)
	if name == Off {
		return
	}

	buf, err := p.buffer(name)
	if err != nil {
		p.logger.Warn(
			"unable to load sound",
			slog.String("sound", name),
			slog.Any("error", err),
		)

		return
	}

	if err := p.play(buf.Streamer(0, buf.Len())); err != nil {
		p.logger.Warn(
			"unable to play sound",
			slog.String("sound", name),
			slog.Any("error", err),
		)
	}
}

func (p *Player) buffer(name string) (*beep.Buffer, error) {
	if name == Off {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if buf, ok := p.buffers[name]; ok {
		return buf, nil
	}

	var (
		buf *beep.Buffer
		err error
	)

	if notes, ok := tones[name]; ok {
		buf, err = generate(notes)
	} else {
		var path string

		path, err = resolve(name, p.opts.SoundDir)
		if err == nil {
			buf, err = decode(path)
		}
	}

	if err != nil {
		return nil, err
	}

	p.buffers[name] = buf

	return buf, nil
}

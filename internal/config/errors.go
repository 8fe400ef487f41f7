package config

import "github.com/exerun/exerun/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errDecodeConfig = &apperr.Error{
		Message: "decoding config failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %v",
	}

	errInvalidSince = &apperr.Error{
		Message: "invalid since time %q",
	}

	errInvalidPhase = &apperr.Error{
		Message: "%s duration must be between 0s and %v, got %v",
	}

	errInvalidSets = &apperr.Error{
		Message: "sets must be between 1 and %d, got %d",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn or error, got %q",
	}
)

package config

var (
	ErrInvalidSets        = errInvalidSets
	ErrInvalidPhase       = errInvalidPhase
	ErrInvalidSoundFormat = errInvalidSoundFormat
	ErrInvalidLogLevel    = errInvalidLogLevel
)

package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = &Error{
	Message: "workout must last at least %d seconds",
}

func TestFmtKeepsIdentity(t *testing.T) {
	err := errSample.Fmt(60)

	assert.Equal(t, "workout must last at least 60 seconds", err.Error())
	assert.ErrorIs(t, err, errSample)
	assert.Equal(t, "workout must last at least %d seconds", errSample.Message)
}

func TestWrap(t *testing.T) {
	err := errSample.Fmt(60).Wrap(io.EOF)

	assert.ErrorIs(t, err, io.EOF)
	assert.ErrorIs(t, err, errSample)
	assert.Equal(t, "workout must last at least 60 seconds: EOF", err.Error())
}

func TestDistinctTemplates(t *testing.T) {
	other := &Error{Message: "other"}

	assert.False(t, errors.Is(errSample.Fmt(1), other))
}

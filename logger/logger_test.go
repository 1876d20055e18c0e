package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLevelMapping(t *testing.T) {
	l := NewSlog(InfoLevel, false)
	assert.Equal(t, InfoLevel, l.Level())

	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, l.Level())

	// Fatal maps onto slog's error level, the closest severity it has.
	l.SetLevel(FatalLevel)
	assert.Equal(t, ErrorLevel, l.Level())
}

func TestSlogWithSharesLevel(t *testing.T) {
	l := NewSlog(InfoLevel, false)
	child := l.With("component", "access")

	l.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, child.Level())
}

func TestZerologLevelMapping(t *testing.T) {
	l := NewZerolog(WarnLevel)
	assert.Equal(t, WarnLevel, l.Level())

	l.SetLevel(ErrorLevel)
	assert.Equal(t, ErrorLevel, l.Level())
}

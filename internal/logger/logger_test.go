package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReturnsUsableLogger(t *testing.T) {
	l := New("test")
	require.NotNil(t, l)

	// must not panic
	l.Debug().Msg("debug message")
	l.Info().Str("k", "v").Msg("info message")
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error().Msg("discarded")
}

func TestSetGlobalLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	SetGlobalLevel("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetGlobalLevel("not-a-level")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	SetGlobalLevel("")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/ronaldllamas12/carioca-Market/pkg/logger"
)

func TestNew_NivelDesdeConfig(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn", Service: "market-iguazu"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelEnMayusculasSeNormaliza(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "DEBUG"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

func TestNew_NivelInvalidoCaeEnInfo(t *testing.T) {
	for _, lvl := range []string{"", "verbose", "loquesea"} {
		l := logger.New(logger.Config{Env: "production", Level: lvl})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q debe caer en info", lvl)
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"captionforge/internal/caption"
)

func TestValidateDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, Validate(&cfg))
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Server.LogLevel = "verbose"
	err := Validate(&cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	assert.Error(t, Validate(&cfg))
}

func TestValidateRejectsIncompleteHTTPProvider(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "http"
	err := Validate(&cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestValidateRejectsMalformedReplacementRule(t *testing.T) {
	cfg := Default()
	cfg.ReplacementRules = []caption.ReplacementRule{{Type: "bogus", Search: "x"}}
	assert.Error(t, Validate(&cfg))
}

func TestValidateJoinsMultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = -1
	cfg.Normalization.MaxCharsPerSegment = 0
	err := Validate(&cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "max_chars_per_segment")
}

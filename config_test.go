package ruled

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.False(t, cfg.GetBool("parser.require_end"))
		assert.Equal(t, "", cfg.GetString("parser.input_file"))
		assert.False(t, cfg.GetBool("trace.enabled"))
		assert.Equal(t, "ruled", cfg.GetString("trace.name"))
	})

	t.Run("set and get", func(t *testing.T) {
		cfg := NewConfig()
		cfg.SetBool("trace.enabled", true)
		cfg.SetInt("json.max_depth", 10)
		cfg.SetString("trace.name", "json")
		assert.True(t, cfg.GetBool("trace.enabled"))
		assert.Equal(t, 10, cfg.GetInt("json.max_depth"))
		assert.Equal(t, "json", cfg.GetString("trace.name"))
	})

	t.Run("types can't change", func(t *testing.T) {
		cfg := NewConfig()
		assert.Panics(t, func() { cfg.SetInt("trace.enabled", 1) })
		assert.Panics(t, func() { cfg.GetString("trace.enabled") })
		assert.Panics(t, func() { cfg.GetBool("does.not.exist") })
	})

	t.Run("debug", func(t *testing.T) {
		var s strings.Builder
		NewConfig().Debug(&s)
		assert.Equal(t, strings.Join([]string{
			"Configuration",
			"parser.input_file  :  (string)",
			"parser.require_end : false (bool)",
			"trace.enabled      : false (bool)",
			"trace.name         : ruled (string)",
			"",
		}, "\n"), s.String())
	})
}

package cdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.True(t, c.GetBool("dym.enabled"))
	assert.Equal(t, 1, c.GetInt("dym.max_candidates"))
	assert.False(t, c.GetBool("macro.trace"))
	assert.True(t, c.GetBool("explain.typedefs"))
}

func TestConfigSetAndGetString(t *testing.T) {
	c := NewConfig()
	c.SetString("lang.name", "c99")
	assert.Equal(t, "c99", c.GetString("lang.name"))
}

func TestConfigGetWrongTypePanics(t *testing.T) {
	c := NewConfig()
	assert.Panics(t, func() { c.GetInt("dym.enabled") })
	assert.Panics(t, func() { c.GetString("dym.enabled") })
}

func TestConfigGetMissingPathPanics(t *testing.T) {
	c := NewConfig()
	assert.Panics(t, func() { c.GetBool("no.such.path") })
}

func TestConfigSetOverwritesPreviousValue(t *testing.T) {
	c := NewConfig()
	c.SetBool("dym.enabled", true)
	c.SetBool("dym.enabled", false)
	assert.False(t, c.GetBool("dym.enabled"))
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeter interface{ Greet() string }

type english struct{}

func (english) Greet() string { return "hello" }

func TestResolveAs(t *testing.T) {
	reg := NewServiceRegistry()
	reg.Register("greeter", english{})
	reg.Register("number", 42)

	g, err := ResolveAs[greeter](reg, "greeter")
	require.NoError(t, err)
	assert.Equal(t, "hello", g.Greet())

	_, err = ResolveAs[greeter](reg, "number")
	assert.ErrorContains(t, err, "not the requested type")

	_, err = ResolveAs[greeter](reg, "missing")
	assert.EqualError(t, err, "service not found: missing")
}

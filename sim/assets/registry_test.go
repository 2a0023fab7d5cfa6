package assets_test

import (
	"testing"

	"github.com/plus3/bounce/sim/assets"
	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := assets.NewRegistry[string]()

	ball := registry.Register("ball.png")
	block := registry.Register("block.png")
	assert.NotEqual(t, ball, block)
	assert.Equal(t, 2, registry.Len())

	got, ok := registry.Lookup(ball)
	assert.True(t, ok)
	assert.Equal(t, "ball.png", got)

	got, ok = registry.Lookup(block)
	assert.True(t, ok)
	assert.Equal(t, "block.png", got)
}

func TestRegistryUnknownHandle(t *testing.T) {
	registry := assets.NewRegistry[string]()

	_, ok := registry.Lookup(assets.SpriteID(42))
	assert.False(t, ok)

	// The zero handle means "no sprite" and is never issued.
	_, ok = registry.Lookup(0)
	assert.False(t, ok)
}

func TestRegistrySharedHandles(t *testing.T) {
	registry := assets.NewRegistry[string]()
	id := registry.Register("shared")

	// Many bodies referencing one handle resolve to the same resource.
	for i := 0; i < 100; i++ {
		got, ok := registry.Lookup(id)
		assert.True(t, ok)
		assert.Equal(t, "shared", got)
	}
	assert.Equal(t, 1, registry.Len())
}

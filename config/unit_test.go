package config

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSourceGetString(t *testing.T) {
	t.Parallel()

	src := NewMapSource(map[string]interface{}{
		"plain":  "value",
		"empty":  "",
		"list":   []string{"a", "b"},
		"number": 42,
	})

	t.Run("string value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "value", src.GetString("plain"))
	})

	t.Run("empty string value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", src.GetString("empty"))
	})

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", src.GetString("missing"))
	})

	t.Run("list value is not string-shaped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", src.GetString("list"))
	})

	t.Run("unsupported type", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", src.GetString("number"))
	})

	t.Run("stringer value", func(t *testing.T) {
		t.Parallel()
		u, err := url.Parse("http://zipkin:9411")
		require.NoError(t, err)
		withStringer := NewMapSource(map[string]interface{}{"endpoint": u})
		assert.Equal(t, "http://zipkin:9411", withStringer.GetString("endpoint"))
	})
}

func TestMapSourceGetStringOrDefault(t *testing.T) {
	t.Parallel()

	src := NewMapSource(map[string]interface{}{
		"plain": "value",
		"empty": "",
		"list":  []string{"a"},
	})

	t.Run("present value wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "value", src.GetStringOrDefault("plain", "fallback"))
	})

	t.Run("empty value wins over default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", src.GetStringOrDefault("empty", "fallback"))
	})

	t.Run("absent key falls back", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fallback", src.GetStringOrDefault("missing", "fallback"))
	})

	t.Run("list value falls back", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "fallback", src.GetStringOrDefault("list", "fallback"))
	})
}

func TestMapSourceGetStringList(t *testing.T) {
	t.Parallel()

	t.Run("string slice", func(t *testing.T) {
		t.Parallel()
		src := NewMapSource(map[string]interface{}{"servers": []string{"a:9092", "b:9092"}})
		assert.Equal(t, []string{"a:9092", "b:9092"}, src.GetStringList("servers"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		backing := []string{"a:9092"}
		src := NewMapSource(map[string]interface{}{"servers": backing})
		got := src.GetStringList("servers")
		got[0] = "mutated"
		assert.Equal(t, "a:9092", backing[0])
	})

	t.Run("interface slice of strings", func(t *testing.T) {
		t.Parallel()
		src := NewMapSource(map[string]interface{}{"servers": []interface{}{"a:9092", "b:9092"}})
		assert.Equal(t, []string{"a:9092", "b:9092"}, src.GetStringList("servers"))
	})

	t.Run("scalar value yields nil", func(t *testing.T) {
		t.Parallel()
		src := NewMapSource(map[string]interface{}{"servers": "a:9092"})
		assert.Nil(t, src.GetStringList("servers"))
	})

	t.Run("absent key yields nil", func(t *testing.T) {
		t.Parallel()
		src := NewMapSource(map[string]interface{}{})
		assert.Nil(t, src.GetStringList("servers"))
	})
}

func TestOptionGet(t *testing.T) {
	t.Parallel()

	src := NewMapSource(map[string]interface{}{"zipkin.sender.type": "HTTP"})

	t.Run("present key", func(t *testing.T) {
		t.Parallel()
		opt := Option{Key: "zipkin.sender.type", Default: "NONE"}
		assert.Equal(t, "HTTP", opt.Get(src))
	})

	t.Run("absent key uses default", func(t *testing.T) {
		t.Parallel()
		opt := Option{Key: "zipkin.encoding", Default: "JSON"}
		assert.Equal(t, "JSON", opt.Get(src))
	})
}

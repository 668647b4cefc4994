package catalog_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/shopdocs/internal/catalog"
)

const (
	cachePayload = "<div><h2>Caché</h2><p>Smarty + APCu</p></div>"
	sqlPayload   = "<div><h2>SQL avanzado</h2><p>JOIN, índices</p></div>"
)

func exampleRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.New([]catalog.Unit{
		{Key: "cache-prestashop-smarty-apcu", Payload: cachePayload},
		{Key: "sql-avanzado", Payload: sqlPayload},
	})
	require.NoError(t, err)
	return reg
}

func TestRegistry(t *testing.T) {
	t.Run("Example scenario", func(t *testing.T) {
		reg := exampleRegistry(t)

		assert.Equal(t, []string{"cache-prestashop-smarty-apcu", "sql-avanzado"}, reg.Keys())

		payload, err := reg.Resolve("sql-avanzado")
		require.NoError(t, err)
		assert.Equal(t, sqlPayload, payload)

		_, err = reg.Resolve("missing")
		assert.True(t, catalog.IsNotFound(err), "missing key should be a not-found error")
	})

	t.Run("Round trip is byte for byte", func(t *testing.T) {
		odd := "  <p>\tsin\r\nnormalizar </p>\x00 "
		reg, err := catalog.New([]catalog.Unit{{Key: "raw", Payload: odd}})
		require.NoError(t, err)

		payload, err := reg.Resolve("raw")
		require.NoError(t, err)
		assert.Equal(t, odd, payload)
	})

	t.Run("Missing key", func(t *testing.T) {
		reg := exampleRegistry(t)

		_, err := reg.Resolve("nonexistent-key")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrNotFound)

		var ce *catalog.CatalogError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, catalog.ErrorNotFound, ce.Type)
		assert.Equal(t, "nonexistent-key", ce.Key)

		assert.False(t, reg.Has("nonexistent-key"))

		_, err = reg.Lookup("nonexistent-key")
		assert.True(t, catalog.IsNotFound(err))
	})

	t.Run("Keys are case sensitive and not trimmed", func(t *testing.T) {
		reg, err := catalog.New([]catalog.Unit{
			{Key: "SQL", Payload: "upper"},
			{Key: "sql", Payload: "lower"},
		})
		require.NoError(t, err, "keys differing only by case are distinct")

		upper, err := reg.Resolve("SQL")
		require.NoError(t, err)
		assert.Equal(t, "upper", upper)

		assert.False(t, reg.Has(" sql"))
		assert.False(t, reg.Has("Sql"))
	})

	t.Run("Order fidelity ignores lexical order", func(t *testing.T) {
		reg, err := catalog.New([]catalog.Unit{
			{Key: "c", Payload: "3"},
			{Key: "a", Payload: "1"},
			{Key: "b", Payload: "2"},
		})
		require.NoError(t, err)

		entries := reg.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, "c", entries[0].Key)
		assert.Equal(t, "a", entries[1].Key)
		assert.Equal(t, "b", entries[2].Key)
		assert.Equal(t, "2", entries[2].Payload)
	})

	t.Run("Enumeration is stable and reads are idempotent", func(t *testing.T) {
		reg := exampleRegistry(t)

		first := reg.Keys()
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, reg.Keys())
			assert.True(t, reg.Has("sql-avanzado"))
			p, err := reg.Resolve("cache-prestashop-smarty-apcu")
			require.NoError(t, err)
			assert.Equal(t, cachePayload, p)
		}
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("Returned slices do not alias registry state", func(t *testing.T) {
		reg := exampleRegistry(t)

		keys := reg.Keys()
		keys[0] = "tampered"
		entries := reg.Entries()
		entries[1].Payload = "tampered"

		assert.Equal(t, "cache-prestashop-smarty-apcu", reg.Keys()[0])
		p, err := reg.Resolve("sql-avanzado")
		require.NoError(t, err)
		assert.Equal(t, sqlPayload, p)
	})

	t.Run("Empty registry", func(t *testing.T) {
		reg, err := catalog.New(nil)
		require.NoError(t, err)
		assert.Empty(t, reg.Keys())
		assert.Empty(t, reg.Entries())
		assert.False(t, reg.Has(""))
	})
}

func TestBuilder(t *testing.T) {
	t.Run("Prevent duplicate registration", func(t *testing.T) {
		b := catalog.NewBuilder()
		require.NoError(t, b.Register("cache-prestashop-smarty-apcu", cachePayload))
		require.NoError(t, b.Register("sql-avanzado", sqlPayload))

		err := b.Register("sql-avanzado", "<div>other</div>")
		require.Error(t, err)
		assert.True(t, catalog.IsDuplicateKey(err))
		assert.ErrorIs(t, err, catalog.ErrDuplicateKey)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("Construction fails on the first duplicate", func(t *testing.T) {
		b := catalog.NewBuilder()
		require.NoError(t, b.Register("a", "1"))
		dupErr := b.Register("a", "2")
		require.Error(t, dupErr)

		// Later registrations are refused with the original error.
		err := b.Register("b", "3")
		assert.Equal(t, dupErr, err)

		reg, err := b.Build()
		assert.Nil(t, reg, "no partially built registry may escape")
		assert.Equal(t, dupErr, err)
		assert.Equal(t, dupErr, b.Err())
	})

	t.Run("New rejects duplicates", func(t *testing.T) {
		reg, err := catalog.New([]catalog.Unit{
			{Key: "x", Payload: "1"},
			{Key: "y", Payload: "2"},
			{Key: "x", Payload: "3"},
		})
		assert.Nil(t, reg)
		assert.True(t, catalog.IsDuplicateKey(err))
	})

	t.Run("Empty key is invalid", func(t *testing.T) {
		b := catalog.NewBuilder()
		err := b.Register("", "<p>orphan</p>")
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrInvalidUnit)
		assert.False(t, catalog.IsNotFound(err))
	})

	t.Run("Registry is isolated from later builder use", func(t *testing.T) {
		b := catalog.NewBuilder()
		require.NoError(t, b.Register("a", "1"))
		reg, err := b.Build()
		require.NoError(t, err)

		require.NoError(t, b.Register("b", "2"))
		assert.Equal(t, []string{"a"}, reg.Keys())
		assert.False(t, reg.Has("b"))
	})
}

func TestRegistryConcurrentReads(t *testing.T) {
	reg := exampleRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p, err := reg.Resolve("sql-avanzado")
				assert.NoError(t, err)
				assert.Equal(t, sqlPayload, p)
				assert.Len(t, reg.Entries(), 2)
				assert.False(t, reg.Has("missing"))
			}
		}()
	}
	wg.Wait()
}

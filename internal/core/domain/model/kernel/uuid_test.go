package kernel_test

import (
	"testing"

	"gasline/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create valid UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEmpty(t, id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		original := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
	})

	t.Run("should fail on malformed input", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "12345"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the binary form", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
	})

	t.Run("should fail on short input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})

	t.Run("should reject sixteen zero bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
	})
}

func TestUUIDValidate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUIDBytes(t *testing.T) {
	t.Run("should expose the underlying uuid value", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEqual(t, uuid.Nil, id.Bytes())
		assert.Equal(t, id.String(), id.Bytes().String())
	})
}

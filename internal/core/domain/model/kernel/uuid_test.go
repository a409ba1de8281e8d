package kernel_test

import (
	"testing"

	"fuelsettlement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid account identifier", func(t *testing.T) {
		buyer := kernel.NewUUID()

		assert.NoError(t, buyer.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", buyer.String())
	})

	t.Run("should not collide for distinct accounts", func(t *testing.T) {
		buyer := kernel.NewUUID()
		supplier := kernel.NewUUID()

		assert.False(t, buyer.IsEqual(supplier))
		assert.NotEqual(t, buyer.String(), supplier.String())
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(canonical)

		require.NoError(t, err)
		assert.Equal(t, canonical, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should parse alternate header formats", func(t *testing.T) {
		// Clients send account ids in whatever shape their tooling emits.
		alternates := []string{
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
		}

		for _, input := range alternates {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, "input: %s", input)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject malformed account ids", func(t *testing.T) {
		malformed := []string{
			"",
			"not-a-uuid",
			"550e8400-e29b-41d4-a716",
			"550e8400-e29b-41d4-a716-446655440000-extra",
			"zzze8400-e29b-41d4-a716-446655440000",
		}

		for _, input := range malformed {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, "input: %s", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through binary form", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should reject truncated input", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e, 0x84})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should match the same account parsed twice", func(t *testing.T) {
		first, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		second, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.True(t, second.IsEqual(first))
	})

	t.Run("should treat zero values as equal to each other only", func(t *testing.T) {
		var left kernel.UUID
		var right kernel.UUID

		assert.True(t, left.IsEqual(right))
		assert.False(t, left.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept a constructed UUID", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})

	t.Run("should reject the parsed nil UUID", func(t *testing.T) {
		id, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")

		require.NoError(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_Immutability(t *testing.T) {
	t.Run("modifying Bytes result does not affect the original", func(t *testing.T) {
		original := kernel.NewUUID()
		originalString := original.String()

		raw := original.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, originalString, original.String())
		assert.NotEqual(t, original.String(), uuid.UUID(raw).String())
	})
}

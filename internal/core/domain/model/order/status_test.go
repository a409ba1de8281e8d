package order_test

import (
	"testing"

	"fuelsettlement/internal/core/domain/model/order"
	"fuelsettlement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"created is valid", order.Created, false},
		{"delivered is valid", order.Delivered, false},
		{"settled is valid", order.Settled, false},
		{"cancelled is valid", order.Cancelled, false},
		{"declined is valid", order.Declined, false},
		{"unknown is invalid", order.Unknown, true},
		{"out of range is invalid", order.Status(42), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Settled", order.Settled.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Declined", order.Declined.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatus_Code(t *testing.T) {
	// wire codes collaborators rely on: 0=Created .. 4=Declined
	assert.Equal(t, 0, order.Created.Code())
	assert.Equal(t, 1, order.Delivered.Code())
	assert.Equal(t, 2, order.Settled.Code())
	assert.Equal(t, 3, order.Cancelled.Code())
	assert.Equal(t, 4, order.Declined.Code())
}

func TestStatusFromCode(t *testing.T) {
	t.Run("round trips every valid code", func(t *testing.T) {
		for code := 0; code <= 4; code++ {
			s, err := order.StatusFromCode(code)
			require.NoError(t, err)
			assert.Equal(t, code, s.Code())
		}
	})

	t.Run("rejects invalid codes", func(t *testing.T) {
		_, err := order.StatusFromCode(-1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.StatusFromCode(5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Delivered.IsTerminal())
	assert.True(t, order.Settled.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.True(t, order.Declined.IsTerminal())
}

func TestStatus_ConfirmDelivery(t *testing.T) {
	t.Run("created order can be confirmed", func(t *testing.T) {
		newStatus, err := order.Created.ConfirmDelivery()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("every other status is rejected", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Settled, order.Cancelled, order.Declined, order.Unknown} {
			_, err := s.ConfirmDelivery()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_Decline(t *testing.T) {
	t.Run("created order can be declined", func(t *testing.T) {
		newStatus, err := order.Created.Decline()

		require.NoError(t, err)
		assert.Equal(t, order.Declined, newStatus)
	})

	t.Run("declined order cannot be declined again", func(t *testing.T) {
		_, err := order.Declined.Decline()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("delivered order cannot be declined", func(t *testing.T) {
		_, err := order.Delivered.Decline()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("created order can be cancelled", func(t *testing.T) {
		newStatus, err := order.Created.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("terminal and delivered statuses are rejected", func(t *testing.T) {
		for _, s := range []order.Status{order.Delivered, order.Settled, order.Cancelled, order.Declined} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_Settle(t *testing.T) {
	t.Run("delivered order can be settled", func(t *testing.T) {
		newStatus, err := order.Delivered.Settle()

		require.NoError(t, err)
		assert.Equal(t, order.Settled, newStatus)
	})

	t.Run("created order cannot be settled before delivery", func(t *testing.T) {
		_, err := order.Created.Settle()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("settled order cannot be settled again", func(t *testing.T) {
		_, err := order.Settled.Settle()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_NoTransitionLeavesTerminalStates(t *testing.T) {
	for _, s := range []order.Status{order.Settled, order.Cancelled, order.Declined} {
		_, err := s.ConfirmDelivery()
		require.Error(t, err, s.String())
		_, err = s.Decline()
		require.Error(t, err, s.String())
		_, err = s.Cancel()
		require.Error(t, err, s.String())
		_, err = s.Settle()
		require.Error(t, err, s.String())
	}
}

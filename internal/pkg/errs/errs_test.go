package errs_test

import (
	"errors"
	"testing"

	"fuelsettlement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantityLitres")

		assert.Equal(t, "quantityLitres", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: quantityLitres", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-5 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantityLitres", cause)

		assert.Equal(t, "quantityLitres", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: quantityLitres (cause: -5 is not greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("supplier")

		assert.Equal(t, "supplier", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: supplier", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("supplier", cause)

		assert.Equal(t, "supplier", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: supplier (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("supplier", "9f2c1a40-0000-0000-0000-000000000001")

		assert.Equal(t, "supplier", err.RequiredRole)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"unauthorized: caller 9f2c1a40-0000-0000-0000-000000000001 does not hold the supplier role",
			err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("caller is the buyer")
		err := errs.NewUnauthorizedErrorWithCause("supplier", "abc", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"unauthorized: caller abc does not hold the supplier role (cause: caller is the buyer)",
			err.Error())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("confirm delivery", "Declined")

		assert.Equal(t, "confirm delivery", err.Action)
		assert.Equal(t, "Declined", err.From)
		assert.Equal(t, "invalid transition: cannot confirm delivery an order in status Declined", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestInsufficientFundsError(t *testing.T) {
	err := errs.NewInsufficientFundsError(2000, 1500)

	assert.Equal(t, int64(2000), err.Expected)
	assert.Equal(t, int64(1500), err.Provided)
	assert.Equal(t, "insufficient funds: expected at least 2000, got 1500", err.Error())
	assert.Equal(t, errs.ErrInsufficientFunds, err.Unwrap())
}

func TestAlreadyReleasedError(t *testing.T) {
	err := errs.NewAlreadyReleasedError(7)

	assert.Equal(t, int64(7), err.OrderID)
	assert.Equal(t, "escrow already released: order 7", err.Error())
	assert.Equal(t, errs.ErrAlreadyReleased, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrUnauthorized)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrInsufficientFunds)
		require.Error(t, errs.ErrAlreadyReleased)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "unauthorized", errs.ErrUnauthorized.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "insufficient funds", errs.ErrInsufficientFunds.Error())
		assert.Equal(t, "escrow already released", errs.ErrAlreadyReleased.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("price"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("supplier"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewUnauthorizedError("buyer", "abc"), errs.ErrUnauthorized)
		require.ErrorIs(t, errs.NewInvalidTransitionError("cancel", "Settled"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewInsufficientFundsError(100, 50), errs.ErrInsufficientFunds)
		require.ErrorIs(t, errs.NewAlreadyReleasedError(1), errs.ErrAlreadyReleased)
	})
}

package errs_test

import (
	"errors"
	"testing"

	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")

		assert.Equal(t, "customerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing form field")
		err := errs.NewValueIsRequiredErrorWithCause("customerId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customerId (cause: missing form field)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("sanitizes newlines in message", func(t *testing.T) {
		cause := errors.New("line one\nline two")
		err := errs.NewValueIsInvalidErrorWithCause("field", cause)

		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "line one line two")
	})
}

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "4a1f")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "4a1f", err.ID)
		assert.Equal(t, "object not found: 4a1f", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "4a1f", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 4a1f (cause: record not found)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestFetchError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errs.NewFetchError("books", cause)

	assert.Equal(t, "books", err.Source)
	assert.Equal(t, "fetch failed: books (cause: connection refused)", err.Error())
	assert.Equal(t, errs.ErrFetchFailed, err.Unwrap())
	assert.True(t, errors.Is(err, errs.ErrFetchFailed))
}

func TestPartialWriteError(t *testing.T) {
	cause := errors.New("insert order_items failed")
	err := errs.NewPartialWriteError("order", cause)

	assert.Equal(t, "order", err.Object)
	assert.Equal(t, "partial write: order (cause: insert order_items failed)", err.Error())
	assert.True(t, errors.Is(err, errs.ErrPartialWrite))
}

func TestConstraintError(t *testing.T) {
	cause := errors.New("pq: violates foreign key constraint")
	err := errs.NewConstraintError("order_items_order_id_fkey", cause)

	assert.Equal(t, "order_items_order_id_fkey", err.Constraint)
	assert.Contains(t, err.Error(), "constraint violated: order_items_order_id_fkey")
	assert.True(t, errors.Is(err, errs.ErrConstraintViolated))
}

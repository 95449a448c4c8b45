package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Valid(t *testing.T) {
	t.Parallel()

	for _, op := range []Operation{OperationAdd, OperationSubtract, OperationMultiply, OperationDivide} {
		assert.True(t, op.Valid(), string(op))
	}
	assert.False(t, Operation("modulo").Valid())
	assert.False(t, Operation("").Valid())
}

func TestOperation_Apply(t *testing.T) {
	t.Parallel()

	got, err := OperationAdd.Apply(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got)

	got, err = OperationSubtract.Apply(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	got, err = OperationMultiply.Apply(10, 5)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)

	got, err = OperationDivide.Apply(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
}

func TestOperation_ApplyErrors(t *testing.T) {
	t.Parallel()

	_, err := OperationDivide.Apply(10, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Operation("modulo").Apply(10, 5)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

package domain

// Operation is one of the four supported binary arithmetic operations.
type Operation string

// Supported operations
const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
)

// Valid reports whether op names a supported operation.
func (op Operation) Valid() bool {
	switch op {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide:
		return true
	}
	return false
}

// Apply computes `left <op> operand` with native float64 semantics.
// Division by zero fails with ErrDivisionByZero before any arithmetic.
func (op Operation) Apply(left, operand float64) (float64, error) {
	switch op {
	case OperationAdd:
		return left + operand, nil
	case OperationSubtract:
		return left - operand, nil
	case OperationMultiply:
		return left * operand, nil
	case OperationDivide:
		if operand == 0 {
			return 0, ErrDivisionByZero
		}
		return left / operand, nil
	}
	return 0, ErrInvalidOperation
}

package stmt

import (
	"context"
	"math"

	"github.com/cloudcmds/polka/errz"
	"github.com/cloudcmds/polka/op"
)

// Binary pops two values and pushes the result of a binary arithmetic
// operation. The top of the stack is the right-hand operand and the value
// beneath it is the left-hand operand.
type Binary struct {
	opType op.BinaryOpType
}

// NewBinary creates a Binary statement for the given operation.
func NewBinary(opType op.BinaryOpType) *Binary {
	return &Binary{opType: opType}
}

// OpType returns the operation performed by this statement.
func (b *Binary) OpType() op.BinaryOpType {
	return b.opType
}

func (b *Binary) Type() Type { return BINARY }

func (b *Binary) ArgumentsCount() int { return 2 }

func (b *Binary) ResultsCount() int { return 1 }

func (b *Binary) IsPure() bool { return true }

func (b *Binary) Apply(ctx context.Context, in Stack) (Stack, error) {
	if len(in) < 2 {
		return nil, errz.Underflow(b.String(), 2, len(in))
	}
	rhs := in[len(in)-1]
	lhs := in[len(in)-2]
	value, err := b.eval(lhs, rhs)
	if err != nil {
		return nil, err
	}
	return in.withTop(2, value), nil
}

func (b *Binary) String() string {
	return b.opType.String()
}

// eval computes lhs op rhs with two's-complement int32 semantics: addition,
// subtraction and multiplication wrap on overflow, division truncates toward
// zero, and the sign of a modulus follows the dividend.
func (b *Binary) eval(lhs, rhs int32) (int32, error) {
	switch b.opType {
	case op.Add:
		return lhs + rhs, nil
	case op.Subtract:
		return lhs - rhs, nil
	case op.Multiply:
		return lhs * rhs, nil
	case op.Divide:
		if rhs == 0 {
			return 0, errz.New(errz.ErrValue, "division by zero")
		}
		if lhs == math.MinInt32 && rhs == -1 {
			// Go panics on this overflow; wraparound keeps the
			// fixed-width contract instead.
			return math.MinInt32, nil
		}
		return lhs / rhs, nil
	case op.Modulo:
		if rhs == 0 {
			return 0, errz.New(errz.ErrValue, "division by zero")
		}
		if lhs == math.MinInt32 && rhs == -1 {
			return 0, nil
		}
		return lhs % rhs, nil
	default:
		return 0, errz.Errorf(errz.ErrValue, "unsupported binary operation: %d", b.opType)
	}
}

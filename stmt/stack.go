package stmt

import (
	"strconv"
	"strings"
)

// Stack is an ordered sequence of 32-bit integers, bottom-to-top. Statement
// Apply implementations treat stacks as values: they always allocate a new
// stack for their result and never write through the input slice.
type Stack []int32

// Clone returns a copy of the stack.
func (s Stack) Clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}

// Top returns the top value of the stack. The second return value is false
// if the stack is empty.
func (s Stack) Top() (int32, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// String returns a bottom-to-top rendering of the stack, e.g. "[1, 2, 6]".
func (s Stack) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteString("]")
	return b.String()
}

// withTop returns a copy of s with the top drop values removed and vals
// pushed in order. Callers check depth before calling.
func (s Stack) withTop(drop int, vals ...int32) Stack {
	out := make(Stack, 0, len(s)-drop+len(vals))
	out = append(out, s[:len(s)-drop]...)
	return append(out, vals...)
}

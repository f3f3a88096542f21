package stmt

import (
	"bufio"
	"context"
	"io"
	"strconv"

	"github.com/cloudcmds/polka/errz"
)

// InputSource provides the blocking "read next integer" capability required
// by input statements. The core treats it as an injected dependency: callers
// decide where input comes from and how access is synchronized.
type InputSource interface {
	ReadInt(ctx context.Context) (int32, error)
}

// FuncInput adapts a function to the InputSource interface.
type FuncInput func(ctx context.Context) (int32, error)

func (f FuncInput) ReadInt(ctx context.Context) (int32, error) {
	return f(ctx)
}

// ReaderInput is an InputSource that reads whitespace-separated integers
// from an io.Reader, such as os.Stdin.
type ReaderInput struct {
	scanner *bufio.Scanner
}

// NewReaderInput creates a ReaderInput wrapping the given reader.
func NewReaderInput(r io.Reader) *ReaderInput {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &ReaderInput{scanner: scanner}
}

// ReadInt returns the next integer from the underlying reader.
func (r *ReaderInput) ReadInt(ctx context.Context) (int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return 0, errz.Wrap(errz.ErrInput, "failed to read input", err)
		}
		return 0, errz.Wrap(errz.ErrInput, "no more input", io.EOF)
	}
	value, err := strconv.ParseInt(r.scanner.Text(), 10, 32)
	if err != nil {
		return 0, errz.Wrap(errz.ErrInput, "invalid input", err)
	}
	return int32(value), nil
}

// Input reads one integer from an external input source and pushes it.
// It is the only impure statement type.
type Input struct {
	source InputSource
}

// NewInput creates an Input statement reading from the given source.
func NewInput(source InputSource) *Input {
	return &Input{source: source}
}

func (i *Input) Type() Type { return INPUT }

func (i *Input) ArgumentsCount() int { return 0 }

func (i *Input) ResultsCount() int { return 1 }

func (i *Input) IsPure() bool { return false }

func (i *Input) Apply(ctx context.Context, in Stack) (Stack, error) {
	if i.source == nil {
		return nil, errz.New(errz.ErrInput, "no input source configured")
	}
	value, err := i.source.ReadInt(ctx)
	if err != nil {
		return nil, err
	}
	return in.withTop(0, value), nil
}

func (i *Input) String() string {
	return "input"
}

package stmt

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudcmds/polka/errz"
	"github.com/stretchr/testify/require"
)

func TestInputApply(t *testing.T) {
	ctx := context.Background()
	values := []int32{4, 5}
	source := FuncInput(func(ctx context.Context) (int32, error) {
		v := values[0]
		values = values[1:]
		return v, nil
	})
	in := NewInput(source)
	out, err := in.Apply(ctx, Stack{})
	require.Nil(t, err)
	require.Equal(t, Stack{4}, out)
	out, err = in.Apply(ctx, out)
	require.Nil(t, err)
	require.Equal(t, Stack{4, 5}, out)
}

func TestInputWithoutSource(t *testing.T) {
	ctx := context.Background()
	_, err := NewInput(nil).Apply(ctx, Stack{})
	require.NotNil(t, err)
	require.True(t, errz.IsKind(err, errz.ErrInput))
}

func TestReaderInput(t *testing.T) {
	ctx := context.Background()
	r := NewReaderInput(strings.NewReader("4  5\n-6"))
	for _, expected := range []int32{4, 5, -6} {
		v, err := r.ReadInt(ctx)
		require.Nil(t, err)
		require.Equal(t, expected, v)
	}
	_, err := r.ReadInt(ctx)
	require.NotNil(t, err)
	require.True(t, errz.IsKind(err, errz.ErrInput))
}

func TestReaderInputInvalid(t *testing.T) {
	ctx := context.Background()
	r := NewReaderInput(strings.NewReader("abc"))
	_, err := r.ReadInt(ctx)
	require.NotNil(t, err)
	require.True(t, errz.IsKind(err, errz.ErrInput))
}

func TestReaderInputCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewReaderInput(strings.NewReader("1"))
	_, err := r.ReadInt(ctx)
	require.NotNil(t, err)
	require.Equal(t, context.Canceled, err)
}

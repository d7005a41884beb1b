package blake2

import (
	"bytes"
	"context"
	"io"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashkit/blake2/blake2b"
	"github.com/hashkit/blake2/blake2s"
)

func TestUpdateFromReader(t *testing.T) {
	input := bytes.Repeat([]byte("0123456789"), 10000)

	for _, alg := range []string{BLAKE2b, BLAKE2s} {
		t.Run(alg, func(t *testing.T) {
			want, err := NewEngine(alg, 0, nil, nil, nil)
			require.NoError(t, err)
			require.NoError(t, want.Update(input))

			for name, r := range map[string]io.Reader{
				"whole":    bytes.NewReader(input),
				"one byte": iotest.OneByteReader(bytes.NewReader(input)),
				"half":     iotest.HalfReader(bytes.NewReader(input)),
				"data err": iotest.DataErrReader(bytes.NewReader(input)),
			} {
				e, err := NewEngine(alg, 0, nil, nil, nil)
				require.NoError(t, err)
				n, err := UpdateFromReader(context.Background(), e, r)
				require.NoError(t, err, name)
				assert.Equal(t, int64(len(input)), n, name)
				assert.False(t, e.Frozen(), name)
				assert.Equal(t, want.HashHex(), e.HashHex(), name)
			}
		})
	}
}

// cancelingReader cancels its context after the first read.
type cancelingReader struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c *cancelingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.cancel()
	return n, err
}

func TestUpdateFromReaderCanceled(t *testing.T) {
	input := bytes.Repeat([]byte{0xab}, 3*readChunk)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e, err := blake2s.New()
	require.NoError(t, err)
	n, err := UpdateFromReader(ctx, e, &cancelingReader{r: bytes.NewReader(input), cancel: cancel})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(readChunk), n)
	assert.False(t, e.Frozen())

	// The first chunk was absorbed and the engine still accepts input.
	require.NoError(t, e.Update(input[readChunk:]))
	want := blake2s.Sum256(input)
	assert.Equal(t, want[:], e.Hash())
}

func TestUpdateFromReaderErrors(t *testing.T) {
	e, err := blake2b.New()
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = UpdateFromReader(context.Background(), e, iotest.ErrReader(boom))
	assert.True(t, errors.Is(err, boom), "got %v", err)

	e.Freeze()
	_, err = UpdateFromReader(context.Background(), e, bytes.NewReader([]byte("x")))
	assert.True(t, errors.Is(err, blake2b.ErrFrozen), "got %v", err)
}

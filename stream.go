package blake2

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

const readChunk = 32 * 1024

// UpdateFromReader feeds r into e chunk by chunk, in order, until EOF. The
// context is checked between chunks; on cancellation the engine keeps
// everything read so far and is left unfrozen. It returns the number of bytes
// absorbed.
func UpdateFromReader(ctx context.Context, e Engine, r io.Reader) (int64, error) {
	buf := make([]byte, readChunk)
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := r.Read(buf)
		if n > 0 {
			if uerr := e.Update(buf[:n]); uerr != nil {
				return total, uerr
			}
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, errors.Wrap(err, "blake2: read")
		}
	}
}

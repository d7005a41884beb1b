package blake2

import (
	"io"

	"github.com/pkg/errors"

	"github.com/hashkit/blake2/blake2b"
	"github.com/hashkit/blake2/blake2s"
)

// Algorithm names accepted by NewEngine.
const (
	BLAKE2b = "blake2b"
	BLAKE2s = "blake2s"
)

// ErrUnknownAlgorithm is returned by NewEngine for a name it does not know.
var ErrUnknownAlgorithm = errors.New("blake2: unknown algorithm")

// Engine is the surface shared by *blake2b.Digest and *blake2s.Digest.
type Engine interface {
	io.Writer
	Update(p []byte) error
	UpdateString(s string) error
	Hash() []byte
	HashHex() string
	Freeze()
	Frozen() bool
	Size() int
	BlockSize() int
}

var (
	_ Engine = (*blake2b.Digest)(nil)
	_ Engine = (*blake2s.Digest)(nil)
)

// NewEngine builds an engine by algorithm name. A size of 0 selects the
// variant's full digest size. Salt and personalization are BLAKE2b only.
func NewEngine(algorithm string, size int, key, salt, personal []byte) (Engine, error) {
	switch algorithm {
	case BLAKE2b:
		if size == 0 {
			size = blake2b.Size
		}
		d, err := blake2b.NewDigest(key, salt, personal, size)
		if err != nil {
			return nil, err
		}
		return d, nil
	case BLAKE2s:
		if salt != nil || personal != nil {
			return nil, errors.Wrap(blake2s.ErrInvalidArgument, "salt and personalization need blake2b")
		}
		if size == 0 {
			size = blake2s.Size
		}
		d, err := blake2s.NewDigest(key, size)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", algorithm)
	}
}

// Package cli implements the b2sum command line.
package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hashkit/blake2"
)

// Options holds the flag values of the root command.
type Options struct {
	Algorithm string
	Length    int
	Key       string
	Salt      string
	Personal  string
	Verbose   bool
}

// AddFlags registers the options on cmd.
func (o *Options) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", blake2.BLAKE2b, "hash algorithm: blake2b or blake2s")
	cmd.Flags().IntVarP(&o.Length, "length", "l", 0, "digest length in bytes, 0 for the algorithm maximum")
	cmd.Flags().StringVar(&o.Key, "key", "", "hex encoded key")
	cmd.Flags().StringVar(&o.Salt, "salt", "", "hex encoded 16-byte salt (blake2b)")
	cmd.Flags().StringVar(&o.Personal, "personal", "", "hex encoded 16-byte personalization (blake2b)")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "log debug output")
}

// decodeHex returns nil for an unset flag so the engine treats it as absent.
func decodeHex(name, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return b, nil
}

func (o *Options) newEngine() (blake2.Engine, error) {
	key, err := decodeHex("key", o.Key)
	if err != nil {
		return nil, err
	}
	salt, err := decodeHex("salt", o.Salt)
	if err != nil {
		return nil, err
	}
	personal, err := decodeHex("personal", o.Personal)
	if err != nil {
		return nil, err
	}
	return blake2.NewEngine(o.Algorithm, o.Length, key, salt, personal)
}

// New returns the b2sum root command.
func New() *cobra.Command {
	o := &Options{}
	cmd := &cobra.Command{
		Use:          "b2sum [flags] [FILE...]",
		Short:        "Print BLAKE2 checksums of files or standard input.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if o.Verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			// Validate the flags once before touching any input.
			if _, err := o.newEngine(); err != nil {
				return err
			}
			for _, name := range args {
				sum, err := o.sumOne(cmd, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, name)
			}
			return nil
		},
	}
	o.AddFlags(cmd)
	return cmd
}

func (o *Options) sumOne(cmd *cobra.Command, name string) (string, error) {
	e, err := o.newEngine()
	if err != nil {
		return "", err
	}

	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	n, err := blake2.UpdateFromReader(cmd.Context(), e, r)
	if err != nil {
		return "", errors.Wrapf(err, "hash %s", name)
	}
	log.WithFields(log.Fields{
		"input":     name,
		"algorithm": o.Algorithm,
		"bytes":     n,
		"size":      e.Size(),
	}).Debug("hashed input")
	return e.HashHex(), nil
}

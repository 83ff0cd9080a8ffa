// hashsum computes checksums of files or stdin under the fixed-output
// algorithms in this module, plus SHAKE128/SHAKE256 via its shake subcommand.
package main

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/weiz0823/gocryptohash/internal/clog"
	"github.com/weiz0823/gocryptohash/md5"
	"github.com/weiz0823/gocryptohash/sha1"
	"github.com/weiz0823/gocryptohash/sha256"
	"github.com/weiz0823/gocryptohash/sha3"
	"github.com/weiz0823/gocryptohash/sha512"
)

var log = clog.New("cmd", "hashsum")

var algorithms = map[string]func() hash.Hash{
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     sha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512-224": sha512.New512_224,
	"sha512-256": sha512.New512_256,
	"sha3-224":   sha3.New224,
	"sha3-256":   sha3.New256,
	"sha3-384":   sha3.New384,
	"sha3-512":   sha3.New512,
}

func hashFile(newFn func() hash.Hash, r io.Reader) (string, error) {
	h := newFn()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func run(algo string, args []string) error {
	newFn, ok := algorithms[algo]
	if !ok {
		return fmt.Errorf("unknown algorithm %q", algo)
	}

	if len(args) == 0 {
		sum, err := hashFile(newFn, os.Stdin)
		if err != nil {
			return err
		}
		fmt.Println(sum)
		return nil
	}

	status := 0
	for _, filename := range args {
		f, err := os.Open(filename)
		if err != nil {
			log.Error("cannot open file", "file", filename, "err", err)
			status = 1
			continue
		}
		sum, err := hashFile(newFn, f)
		f.Close()
		if err != nil {
			log.Error("cannot hash file", "file", filename, "err", err)
			status = 1
			continue
		}
		fmt.Printf("%s  %s\n", sum, filename)
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}

func newCommand(algo string) *cobra.Command {
	return &cobra.Command{
		Use:   algo + " [files...]",
		Short: "Print " + algo + " checksums",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(algo, args)
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "hashsum",
		Short: "Compute checksums of files or stdin",
	}
	for algo := range algorithms {
		root.AddCommand(newCommand(algo))
	}

	shakeCmd := &cobra.Command{
		Use:   "shake [files...]",
		Short: "Print SHAKE128/SHAKE256 checksums",
	}
	shake128Bytes := shakeCmd.PersistentFlags().IntP("bytes", "n", 32, "number of output bytes")
	shake256 := shakeCmd.PersistentFlags().Bool("256", false, "use SHAKE256 instead of SHAKE128")
	shakeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		newFn := func() sha3.ShakeHash {
			if *shake256 {
				return sha3.NewShake256()
			}
			return sha3.NewShake128()
		}
		hashOne := func(r io.Reader) (string, error) {
			sp := newFn()
			if _, err := io.Copy(sp, r); err != nil {
				return "", err
			}
			out := make([]byte, *shake128Bytes)
			sp.Read(out)
			return hex.EncodeToString(out), nil
		}
		if len(args) == 0 {
			sum, err := hashOne(os.Stdin)
			if err != nil {
				return err
			}
			fmt.Println(sum)
			return nil
		}
		status := 0
		for _, filename := range args {
			f, err := os.Open(filename)
			if err != nil {
				log.Error("cannot open file", "file", filename, "err", err)
				status = 1
				continue
			}
			sum, err := hashOne(f)
			f.Close()
			if err != nil {
				log.Error("cannot hash file", "file", filename, "err", err)
				status = 1
				continue
			}
			fmt.Printf("%s  %s\n", sum, filename)
		}
		if status != 0 {
			os.Exit(status)
		}
		return nil
	}
	root.AddCommand(shakeCmd)

	if err := root.Execute(); err != nil {
		log.Crit("hashsum failed", "err", err)
	}
}

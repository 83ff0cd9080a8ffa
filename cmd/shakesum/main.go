// shakesum prints SHAKE128/SHAKE256 checksums of files or stdin, optionally
// keyed with an ASCII MAC key prepended to the input.
package main

import (
	"encoding/base64"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/weiz0823/gocryptohash/internal/clog"
	"github.com/weiz0823/gocryptohash/sha3"
)

var (
	macKey   string
	use256   bool
	outBytes int
	log      = clog.New("cmd", "shakesum")
)

func newShake() sha3.ShakeHash {
	if use256 {
		return sha3.NewShake256()
	}
	return sha3.NewShake128()
}

func sumReader(r io.Reader) (string, error) {
	sp := newShake()
	if macKey != "" {
		sp.Write([]byte(macKey))
	}
	if _, err := io.Copy(sp, r); err != nil {
		return "", err
	}
	digest := make([]byte, outBytes)
	sp.Read(digest)
	return base64.URLEncoding.EncodeToString(digest), nil
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		sum, err := sumReader(os.Stdin)
		if err != nil {
			return err
		}
		cmd.Println(sum)
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
		sum, err := sumReader(f)
		f.Close()
		if err != nil {
			log.Error("cannot hash file", "file", filename, "err", err)
			status = 1
			continue
		}
		cmd.Printf("%s(%s) = %s\n", algoName(), filename, sum)
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}

func algoName() string {
	if use256 {
		return "SHAKE256"
	}
	return "SHAKE128"
}

func main() {
	root := &cobra.Command{
		Use:   "shakesum [files...]",
		Short: "Print SHAKE128/SHAKE256 checksums",
		RunE:  run,
	}
	root.Flags().StringVar(&macKey, "mackey", "", "an ASCII MAC key prepended to the input")
	root.Flags().BoolVar(&use256, "256", false, "use SHAKE256 instead of SHAKE128")
	root.Flags().IntVar(&outBytes, "bytes", 64, "number of output bytes to squeeze")

	if err := root.Execute(); err != nil {
		log.Crit("shakesum failed", "err", err)
	}
}

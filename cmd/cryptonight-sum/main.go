// Command cryptonight-sum hashes stdin or a positional argument (raw, or
// hex-encoded with --hex) with the CryptoNight memory-hard hash and prints
// the digest as hex. It does not open files.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	fasthex "github.com/tmthrgd/go-hex"

	"github.com/xcn-project/cryonote/cryptonight"
	"github.com/xcn-project/cryonote/utils"
)

type options struct {
	Mode    string `short:"m" long:"mode" default:"full" choice:"full" choice:"light" description:"scratchpad mode"`
	Hex     bool   `short:"x" long:"hex" description:"treat the positional argument as hex-encoded bytes"`
	Bench   bool   `short:"b" long:"bench" description:"run a short throughput benchmark instead of hashing"`
	Verbose bool   `short:"v" long:"verbose" description:"raise the logger to debug level"`

	Positional struct {
		Input string
	} `positional-args:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Verbose {
		utils.GlobalLogLevel |= utils.LogLevelDebug
	}

	mode := cryptonight.Full
	if opts.Mode == "light" {
		mode = cryptonight.Light
	}

	if opts.Bench {
		runBenchmark(mode)
		return
	}

	data, err := readInput(opts)
	if err != nil {
		utils.Fatalf("reading input: %s", err)
	}

	sum := cryptonight.Sum(data, mode, cryptonight.V0)
	fmt.Println(sum.String())
}

func readInput(opts options) ([]byte, error) {
	if opts.Positional.Input == "" {
		return io.ReadAll(os.Stdin)
	}
	if opts.Hex {
		return fasthex.DecodeString(opts.Positional.Input)
	}
	return []byte(opts.Positional.Input), nil
}

func runBenchmark(mode cryptonight.Mode) {
	const duration = 3 * time.Second

	cn := new(cryptonight.State)
	data := []byte("cryptonight-sum benchmark payload")

	utils.Noticef("bench", "running for %s in %v mode", duration, mode)

	start := time.Now()
	var n int
	for time.Since(start) < duration {
		cn.Sum(data, mode, cryptonight.V0, false)
		n++
	}
	elapsed := time.Since(start)

	hashesPerSecond := float64(n) / elapsed.Seconds()
	fmt.Printf("%d hashes in %s (%.2f H/s)\n", n, elapsed.Round(time.Millisecond), hashesPerSecond)
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pegasus/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a and -t are considered; other arguments are dropped with
// flagx.Owned.
func parseFlags(cfg *Config) {
	args := flagx.Owned(os.Args[1:], "a", "t")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

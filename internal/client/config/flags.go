package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gratitude/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the profile/streak API
//	-d string   path to the local journal database
//	-t string   bearer token for remote calls
//	-i int      remote request timeout in seconds
//
// os.Args is filtered to just these flags first (flagx.FilterArgs) so this
// layer never trips over the -c/-config flag owned by the JSON layer.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the profile/streak API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local journal database")
	fs.StringVar(&cfg.AuthToken, "t", cfg.AuthToken, "bearer token for remote calls")
	requestTimeout := fs.Int("i", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}

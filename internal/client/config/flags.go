package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server (default from Config)
//	-f string   path of the local token database file
//	-t int      request timeout in seconds (default from Config)
//	-r int      maximum resubscribe backoff in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.DatabaseFile, "f", cfg.DatabaseFile, "path of the local token database file")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	maxBackoff := fs.Int("r", int(cfg.ResubscribeMaxBackoff.Seconds()), "maximum resubscribe backoff (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.ResubscribeMaxBackoff = time.Duration(*maxBackoff) * time.Second
}

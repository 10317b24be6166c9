package config

import (
	"flag"
	"os"
	"time"

	"github.com/akondrashov/stash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN, or "inmemory"
//	-s string   token signing secret
//	-t int      access token validity, minutes
//	-b int      bcrypt cost
//
// os.Args is filtered through flagx.FilterArgs first so the config-file
// flags handled elsewhere do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", config.Address, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")

	tokenTTL := fs.Int("t", int(config.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// The minutes flag is applied only when given, so a finer-grained TTL
	// from the env or JSON layers survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenTTL = time.Duration(*tokenTTL) * time.Minute
		}
	})
}

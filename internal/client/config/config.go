// Package config holds the CLI client's settings.
package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/akondrashov/stash/internal/flagx"
)

const envServerAddr = "STASH_SERVER"

type Config struct {
	// ServerAddr is the base URL of the stash server.
	ServerAddr string
}

func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8080"
}

// LoadConfig applies defaults, then the environment (including an
// optional .env file), then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	_ = godotenv.Load()
	if v := os.Getenv(envServerAddr); v != "" {
		cfg.ServerAddr = v
	}

	args := flagx.FilterArgs(os.Args[1:], []string{"-s"})
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "s", cfg.ServerAddr, "server base URL")
	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	return cfg
}

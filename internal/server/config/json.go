package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/akondrashov/stash/internal/flagx"
	"github.com/akondrashov/stash/internal/timex"
)

// JsonConfig is the intermediate DTO for reading JSON configuration
// files. Duration fields accept both strings like "60m" and integer
// nanoseconds; after unmarshalling the values are copied into Config.
type JsonConfig struct {
	Address     string         `json:"address"`
	DatabaseDSN string         `json:"database_dsn"`
	SecretKey   string         `json:"secret_key"`
	TokenTTL    timex.Duration `json:"token_ttl"`
	BcryptCost  int            `json:"bcrypt_cost"`
}

// parseJson overlays Config fields from the JSON file named by the
// -c/-config flags. If no flag is given, nothing is loaded. An unreadable
// or invalid file panics: the server must not start on a broken config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenTTL.Duration != 0 {
		config.TokenTTL = time.Duration(c.TokenTTL.Duration)
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}

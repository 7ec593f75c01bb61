package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// parseDotenv reads MESC_* assignments from a dotenv file. The process
// environment is not modified.
func parseDotenv(path string) (*Sources, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading env file %q: %w", path, err)
	}

	cfg := &Sources{}
	if err = parseEnv(cfg, values); err != nil {
		return nil, err
	}

	return cfg, nil
}

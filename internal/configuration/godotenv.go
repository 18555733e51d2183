package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an environment file provider wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read parses dotenv-style files into a flat map (map[key]value).
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}

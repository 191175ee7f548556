package env

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

// ErrMissing is returned when a required setting is empty
var ErrMissing = xerrors.New("required setting is missing")

// PodName example: nftpersona-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// Secrets maps viper keys to the environment variables holding them.
var Secrets = map[string]string{
	"simplehash.apikey": "SIMPLEHASH_API_KEY",
	"anthropic.apikey":  "ANTHROPIC_API_KEY",
	"gemini.apikey":     "GEMINI_API_KEY",
}

// BindSecrets makes secrets resolvable through viper. Values present in the
// config file are overridden by the environment.
func BindSecrets(v *viper.Viper) error {
	for key, name := range Secrets {
		if err := v.BindEnv(key, name); err != nil {
			return xerrors.Errorf("bind %s: %w", name, err)
		}
	}
	return nil
}

// RequiredString returns the trimmed value of key or ErrMissing naming the
// environment variable to set.
func RequiredString(v *viper.Viper, key string) (string, error) {
	val := strings.TrimSpace(v.GetString(key))
	if val == "" {
		name, ok := Secrets[key]
		if !ok {
			name = key
		}
		return "", xerrors.Errorf("%s: %w", name, ErrMissing)
	}
	return val, nil
}

package utils

import (
	"github.com/matthewhartstonge/argon2"

	"easygames/config"
)

// argonConfig starts from the library defaults and lets deployments raise the
// time and memory cost through configuration. AppConfig is nil before
// LoadConfig runs; the defaults apply then.
func argonConfig() argon2.Config {
	cfg := argon2.DefaultConfig()
	if app := config.AppConfig; app != nil {
		if app.Argon2TimeCost > 0 {
			cfg.TimeCost = app.Argon2TimeCost
		}
		if app.Argon2MemoryCost > 0 {
			cfg.MemoryCost = app.Argon2MemoryCost
		}
	}
	return cfg
}

func HashPassword(password string) (string, error) {
	argon := argonConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}

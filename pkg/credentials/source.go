package credentials

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
)

// Source is an optional non-interactive place to find a credential.
// Lookup returns "" with a nil error when the source has no value.
type Source interface {
	Name() string
	Lookup(spec Spec) (string, error)
}

// DotenvSource reads credentials from a .env file without touching the
// process environment. A missing file is treated as empty.
type DotenvSource struct {
	Path string

	values map[string]string
	loaded bool
}

func (d *DotenvSource) Name() string { return "dotenv:" + d.Path }

func (d *DotenvSource) Lookup(spec Spec) (string, error) {
	if !d.loaded {
		values, err := godotenv.Read(d.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		d.values = values
		d.loaded = true
	}
	return d.values[spec.EnvVar], nil
}

// KeyringService is the service name credentials are stored under in the
// OS keyring.
const KeyringService = "setupcheck"

// KeyringSource reads credentials from the OS keyring. It never writes.
type KeyringSource struct {
	Service string // default: KeyringService
}

func (k *KeyringSource) Name() string { return "keyring" }

func (k *KeyringSource) Lookup(spec Spec) (string, error) {
	service := k.Service
	if service == "" {
		service = KeyringService
	}
	v, err := keyring.Get(service, spec.Name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return v, err
}

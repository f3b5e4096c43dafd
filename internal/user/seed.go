package user

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	ID       string `yaml:"userId"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
}

// LoadSeed adds every user listed in the YAML document and returns how many
// were added. Duplicates abort the load.
func LoadSeed(store Store, r io.Reader) (int, error) {
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("decode user seed: %w", err)
	}

	for i, u := range seed.Users {
		if _, err := store.Add(u.ID, u.Password, u.Name, u.Email); err != nil {
			return i, fmt.Errorf("seed user %q: %w", u.ID, err)
		}
	}
	return len(seed.Users), nil
}

func LoadSeedFile(store Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return LoadSeed(store, f)
}

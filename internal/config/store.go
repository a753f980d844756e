package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/fasco-shop/storefront/internal/validate"
)

const (
	maxConfigSize = 1 << 20 // 1MB is far beyond any real site file
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid site config")

// Store handles the loading and saving of the site config file.
type Store struct {
	Path string `validate:"required"`
	Site Site
}

// Open returns a Store for path. A missing file is not an error: the Store
// then holds the defaults and nothing is written.
func Open(path string) (*Store, error) {
	expandedPath, err := ExpandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &Store{Path: expandedPath, Site: Default()}
	if err := s.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		logrus.Debugf("No site config at %s; using defaults", s.Path)
	}
	return s, nil
}

// NewOrExisting returns the existing config if the file exists, or writes
// the defaults to path otherwise.
func NewOrExisting(path string) (*Store, error) {
	s, err := Open(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.Path); errors.Is(err, os.ErrNotExist) {
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	} else if err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads the file and overlays it onto the defaults.
func (s *Store) Load() error {
	logrus.Debug("Loading site config from: ", s.Path)
	data, err := readFile(s.Path)
	if err != nil {
		return err
	}
	site, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Path, err)
	}
	s.Site = site
	return nil
}

// Save writes the config as YAML.
func (s *Store) Save() error {
	logrus.Debug("Saving site config to: ", s.Path)
	if err := Validate(s.Site); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(s.Site)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Site, error) {
	site := Default()
	if err := yaml.Unmarshal(data, &site); err != nil {
		return Site{}, fmt.Errorf("decode site config: %w", err)
	}
	if err := Validate(site); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate checks field constraints.
func Validate(site Site) error {
	if err := validate.Struct(site); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, validate.Describe(err))
	}
	return nil
}

// Encode renders site as YAML.
func Encode(w io.Writer, site Site) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // conventional YAML indent
	if err := enc.Encode(site); err != nil {
		return err
	}
	return enc.Close()
}

// readFile reads a file with a size cap.
func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}
	return io.ReadAll(io.LimitReader(file, maxConfigSize))
}

// ExpandTilde expands the tilde in a path to the user's home directory.
func ExpandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

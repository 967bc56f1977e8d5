package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/video-converter/internal/model"
)

// ProfilesFileName is the override document looked up in the storage root
const ProfilesFileName = "profiles.yaml"

//go:embed profiles.yaml
var defaultProfilesYAML []byte

type profileDocument struct {
	Profiles map[string]model.Profile `yaml:"profiles"`
}

// DefaultProfiles returns the built-in encoder settings
func DefaultProfiles() map[model.Format]model.Profile {
	profiles, err := LoadProfiles(bytes.NewReader(defaultProfilesYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded %s is invalid: %v", ProfilesFileName, err))
	}
	return profiles
}

// LoadProfiles decodes a profile document. Unknown format names are rejected.
func LoadProfiles(r io.Reader) (map[model.Format]model.Profile, error) {
	var doc profileDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[model.Format]model.Profile{}, nil
		}
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	profiles := make(map[model.Format]model.Profile, len(doc.Profiles))
	for name, profile := range doc.Profiles {
		format, err := model.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		profiles[format] = profile
	}
	return profiles, nil
}

// LoadProfilesWithOverride returns the built-in profiles with any formats
// defined in path replacing them. A missing file is not an error.
func LoadProfilesWithOverride(path string) (map[model.Format]model.Profile, error) {
	profiles := DefaultProfiles()
	if path == "" {
		return profiles, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return profiles, nil
		}
		return profiles, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	overrides, err := LoadProfiles(file)
	if err != nil {
		return profiles, fmt.Errorf("%s: %w", path, err)
	}
	for format, profile := range overrides {
		profiles[format] = profile
	}
	return profiles, nil
}

// Package yaml loads named marker profiles from YAML files.
//
// A profile file has a single top-level "profiles" map:
//
//	profiles:
//	  equity:
//	    start: CONSOLIDATED STATEMENTS OF STOCKHOLDERS' EQUITY
//	    end: CONSOLIDATED STATEMENTS OF CASH FLOWS
//	    tags: [h2, p, td]
//	    wrapper_prefix: "ix:"
//	    title: Stockholders' Equity
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/splice"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a profile file.
type File struct {
	Profiles map[string]splice.Profile `yaml:"profiles"`
}

// LoadProfiles reads the profile file at path and returns the built-in
// profiles overlaid with the file's entries. A file profile replaces a
// built-in profile of the same name. Returns ENOTFOUND if the file does
// not exist and EINVALID if it cannot be decoded.
func LoadProfiles(path string) (map[string]splice.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, splice.Errorf(splice.ENOTFOUND, "config file not found: %s", path)
		}
		return nil, err
	}

	file, err := ParseProfiles(data)
	if err != nil {
		return nil, err
	}

	profiles := splice.BuiltinProfiles()
	for name, p := range file.Profiles {
		profiles[name] = p
	}
	return profiles, nil
}

// ParseProfiles decodes a profile file. Unknown keys are rejected so that a
// misspelled field does not silently fall back to a default.
func ParseProfiles(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, splice.Errorf(splice.EINVALID, "invalid config file: %v", err)
	}

	if f.Profiles == nil {
		f.Profiles = make(map[string]splice.Profile)
	}
	for name := range f.Profiles {
		if strings.TrimSpace(name) == "" {
			return nil, splice.Errorf(splice.EINVALID, "profile name must not be empty")
		}
	}
	return &f, nil
}

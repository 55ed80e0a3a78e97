package hive

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// profile is a saved search. Every scalar is kept as written so that it
// goes through the same validation as the matching flag.
type profile struct {
	Clock    string `yaml:"clock"`
	Blood    string `yaml:"blood"`
	Carbon   string `yaml:"carbon"`
	Spin     string `yaml:"spin"`
	Bug      string `yaml:"bug"`
	Arsonist string `yaml:"arsonist"`
	Case     string `yaml:"case"`
	All      bool   `yaml:"all"`
	Workers  int    `yaml:"workers"`
	Start    uint64 `yaml:"start"`
	End      uint64 `yaml:"end"`
}

func readProfile(path string) (*profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeProfile(f)
}

func decodeProfile(r io.Reader) (*profile, error) {
	p := new(profile)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("bad profile: %w", err)
	}
	return p, nil
}

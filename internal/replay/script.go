// Package replay runs scripted key sequences through the calculator without
// a terminal, on a virtual clock.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jask/jaskcalc/internal/keypad"
)

// Script is a replay file.
//
//	name: chaining
//	steps:
//	  - keys: "1 2 + 7 - 1 Enter"
//	  - wait: 2s
//	expect: "18"
type Script struct {
	Name   string  `yaml:"name"`
	Steps  []Step  `yaml:"steps"`
	Expect *string `yaml:"expect"`
}

// Step is either a run of space-separated key names or a wait.
type Step struct {
	Keys string        `yaml:"keys"`
	Wait time.Duration `yaml:"wait"`
}

// Load reads and validates the script at path.
func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a script and checks every key name.
func Parse(r io.Reader) (Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Script{}, errors.New("parse script: empty document")
		}
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	if err := s.validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

func (s Script) validate() error {
	for i, st := range s.Steps {
		if st.Wait < 0 {
			return fmt.Errorf("step %d: negative wait %s", i+1, st.Wait)
		}
		if st.Keys != "" && st.Wait != 0 {
			return fmt.Errorf("step %d: keys and wait are mutually exclusive", i+1)
		}
		for _, k := range strings.Fields(st.Keys) {
			if _, ok := keypad.Parse(k); ok {
				continue
			}
			if hint := keypad.Suggest(k); hint != "" {
				return fmt.Errorf("step %d: unknown key %q (did you mean %q?)", i+1, k, hint)
			}
			return fmt.Errorf("step %d: unknown key %q", i+1, k)
		}
	}
	return nil
}

// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: YAML session config: grammar, SEM-I path, labeler seed and log level.

package semi

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config points at a grammar and its semantic interface, plus session defaults.
type Config struct {
	// GrammarLocation is the compiled grammar used by the external generator.
	GrammarLocation string `yaml:"grammar_location"`

	// SEMI is the SEM-I file; relative paths are taken from the config file's directory.
	SEMI string `yaml:"semi"`

	// LabelerStart seeds the variable counter (e.g. 100 to stay clear of gold files).
	LabelerStart uint64 `yaml:"labeler_start"`

	// GenericQuantifier wraps unquantified indices during generation preparation.
	GenericQuantifier string `yaml:"generic_quantifier"`

	// UnknownPredicate wraps non-event indices during generation preparation.
	UnknownPredicate string `yaml:"unknown_predicate"`

	// LogLevel is a zap level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`

	dir string // directory of the file the config came from
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("semi: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)

	return cfg, nil
}

// ParseConfig decodes YAML config data. Unknown keys are rejected; the
// upper-case SEMI key of older config files is read as semi.
func ParseConfig(data []byte) (*Config, error) {
	data, err := aliasKeys(data)
	if err != nil {
		return nil, fmt.Errorf("semi: config: %w", err)
	}
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("semi: config: %w", err)
	}
	if cfg.GrammarLocation == "" {
		return nil, fmt.Errorf("%q: %w", "grammar_location", ErrMissingConfig)
	}
	if cfg.SEMI == "" {
		return nil, fmt.Errorf("%q: %w", "semi", ErrMissingConfig)
	}

	return cfg, nil
}

// keyAliases maps accepted spellings to the keys Config declares.
var keyAliases = map[string]string{
	"SEMI": "semi",
}

// aliasKeys rewrites aliased top-level keys so the strict decoder sees only
// declared names. A file naming both spellings fails as a duplicate key.
func aliasKeys(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return data, nil
	}
	root := doc.Content[0]
	renamed := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if to, ok := keyAliases[root.Content[i].Value]; ok {
			root.Content[i].Value = to
			renamed = true
		}
	}
	if !renamed {
		return data, nil
	}

	return yaml.Marshal(&doc)
}

// SEMIPath returns the SEM-I path resolved against the config file's directory.
func (c *Config) SEMIPath() string {
	if filepath.IsAbs(c.SEMI) || c.dir == "" {
		return c.SEMI
	}

	return filepath.Join(c.dir, c.SEMI)
}

// Index loads the configured SEM-I.
func (c *Config) Index() (*Index, error) {
	return Load(c.SEMIPath())
}

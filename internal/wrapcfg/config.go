// Package wrapcfg holds the user-facing configuration of the checker:
// wrap width, enforcement mode and the set of header kinds to submit for
// verification. Configuration is read from a YAML file.
package wrapcfg

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultWidth is the wrap indentation the original rule family ships with.
const DefaultWidth = 4

// Mode describes the enforcement policy of the column check.
type Mode int

const (
	modeInvalid Mode = iota

	// ModeMinimum tolerates deeper indentation than required.
	ModeMinimum

	// ModeStrict demands an exact column match.
	ModeStrict
)

var modeValueMap = map[Mode]string{
	ModeMinimum: "minimum",
	ModeStrict:  "strict",
}

func (m Mode) String() string {
	v, ok := modeValueMap[m]
	if !ok {
		return fmt.Sprintf("mode-invalid(%d)", int(m))
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Mode)(nil)

func (m *Mode) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range modeValueMap {
		if v == text {
			*m = k
			return nil
		}
	}

	return fmt.Errorf("unknown enforcement mode %q", text)
}

func (m Mode) MarshalText() ([]byte, error) {
	v, ok := modeValueMap[m]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Mode(%d)", int(m))
	}

	return []byte(v), nil
}

// Token names a header shape that can be submitted to the verifier.
type Token int

const (
	tokenInvalid Token = iota

	TokenClassDef
	TokenInterfaceDef
	TokenEnumDef
	TokenAnnotationDef
	TokenMethodDef
	TokenCtorDef
)

var tokenValueMap = map[Token]string{
	TokenClassDef:      "class_def",
	TokenInterfaceDef:  "interface_def",
	TokenEnumDef:       "enum_def",
	TokenAnnotationDef: "annotation_def",
	TokenMethodDef:     "method_def",
	TokenCtorDef:       "ctor_def",
}

func (t Token) String() string {
	v, ok := tokenValueMap[t]
	if !ok {
		return fmt.Sprintf("token-invalid(%d)", int(t))
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Token)(nil)

func (t *Token) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range tokenValueMap {
		if v == text {
			*t = k
			return nil
		}
	}

	return fmt.Errorf("unknown header token %q", text)
}

func (t Token) MarshalText() ([]byte, error) {
	v, ok := tokenValueMap[t]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Token(%d)", int(t))
	}

	return []byte(v), nil
}

// TokenSet is the allow-list of header shapes.
type TokenSet map[Token]struct{}

// Has reports whether the token is allowed.
func (s TokenSet) Has(t Token) bool {
	_, ok := s[t]
	return ok
}

// Config is the full checker configuration.
type Config struct {
	// LineWrappingIndentation is the extra indentation required of
	// continuation lines.
	LineWrappingIndentation int `yaml:"lineWrappingIndentation"`

	// Mode selects strict or minimum column enforcement.
	Mode Mode `yaml:"mode"`

	// Tokens lists the header shapes to check. Empty means the default set.
	Tokens []Token `yaml:"tokens"`

	// IgnoreEnums skips enum declaration headers even when allowed by Tokens.
	IgnoreEnums bool `yaml:"ignoreEnums"`
}

// Default returns the configuration matching the original rule defaults:
// width 4, minimum mode, all declaration headers, enums included.
func Default() *Config {
	return &Config{
		LineWrappingIndentation: DefaultWidth,
		Mode:                    ModeMinimum,
		Tokens: []Token{
			TokenClassDef,
			TokenInterfaceDef,
			TokenEnumDef,
			TokenAnnotationDef,
			TokenMethodDef,
			TokenCtorDef,
		},
	}
}

// Parse decodes a configuration document. Unset fields fall back to the
// defaults; unknown fields are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	var raw struct {
		LineWrappingIndentation *int    `yaml:"lineWrappingIndentation"`
		Mode                    *Mode   `yaml:"mode"`
		Tokens                  []Token `yaml:"tokens"`
		IgnoreEnums             *bool   `yaml:"ignoreEnums"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if raw.LineWrappingIndentation != nil {
		if *raw.LineWrappingIndentation < 0 {
			return nil, fmt.Errorf("lineWrappingIndentation must be non-negative, got %d", *raw.LineWrappingIndentation)
		}
		cfg.LineWrappingIndentation = *raw.LineWrappingIndentation
	}
	if raw.Mode != nil {
		cfg.Mode = *raw.Mode
	}
	if raw.Tokens != nil {
		cfg.Tokens = raw.Tokens
	}
	if raw.IgnoreEnums != nil {
		cfg.IgnoreEnums = *raw.IgnoreEnums
	}

	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Allowed builds the token allow-list, honoring IgnoreEnums.
func (c *Config) Allowed() TokenSet {
	set := make(TokenSet, len(c.Tokens))
	for _, t := range c.Tokens {
		if c.IgnoreEnums && t == TokenEnumDef {
			continue
		}
		set[t] = struct{}{}
	}

	return set
}

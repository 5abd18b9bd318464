package config

import (
	"fmt"
	"io"
	"os"

	"github.com/abdidvp/invoicegen/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration consulted when no path is given.
const DefaultFile = "invoice.yml"

// YAMLLoader implements domain.ConfigLoader by decoding YAML into a FieldSet.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// LoadFile reads the YAML file at path. An empty path means DefaultFile.
func (l *YAMLLoader) LoadFile(path string) (domain.FieldSet, error) {
	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigError{
			Msg: fmt.Sprintf("YML file %s not found or can't be read", path),
			Err: err,
		}
	}
	return l.decode(path, data)
}

// LoadReader reads YAML from r until EOF.
func (l *YAMLLoader) LoadReader(r io.Reader) (domain.FieldSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &domain.ConfigError{Msg: "reading config from stdin", Err: err}
	}
	return l.decode("stdin", data)
}

func (l *YAMLLoader) decode(source string, data []byte) (domain.FieldSet, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &domain.ConfigError{Msg: fmt.Sprintf("parsing %s", source), Err: err}
	}

	fs := make(domain.FieldSet, len(raw))
	for k, v := range raw {
		fs[k] = v
	}
	return fs, nil
}

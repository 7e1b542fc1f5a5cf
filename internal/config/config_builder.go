package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configurations in precedence order. Later
// sources override earlier ones; source errors are accumulated and reported
// by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, partial := range b.configs {
		if err := mergo.Merge(merged, partial, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	// defaults only fill what no source set
	defaults := Defaults()
	if err := mergo.Merge(merged, &defaults); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	return merged, merged.validate()
}

func (b *configBuilder) add(partial *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, partial)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	partial := new(StructuredConfig)
	return b.add(partial, parseEnv(partial))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(ParseFlags(args))
}

// withJSON reads the file named by the last source that set JSONFilePath.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, partial := range b.configs {
		if partial.JSONFilePath != "" {
			path = partial.JSONFilePath
		}
	}
	if path == "" {
		return b
	}
	return b.add(parseJSON(path))
}

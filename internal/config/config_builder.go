package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	defaults  *StructuredConfig
	file      *StructuredConfig
	overrides []*StructuredConfig
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		overrides: make([]*StructuredConfig, 0, 2),
	}
}

// build merges defaults, then the file, then env and flags in the order
// they were added. Non-zero values of a later layer win.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	layers := make([]*StructuredConfig, 0, len(b.overrides)+2)
	layers = append(layers, b.defaults, b.file)
	layers = append(layers, b.overrides...)

	config := new(StructuredConfig)
	for _, cfg := range layers {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = Defaults()
	return b
}

// withDotEnv loads a .env file into the process environment before env
// parsing. Variables already set are not overwritten.
func (b *configBuilder) withDotEnv(flags *StructuredConfig) *configBuilder {
	path := os.Getenv("DOTENV")
	if flags != nil && flags.DotEnvPath != "" {
		path = flags.DotEnvPath
	}
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.overrides = append(b.overrides, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags != nil {
		b.overrides = append(b.overrides, flags)
	}
	return b
}

// withFile parses the config file named by the last env or flag layer that
// sets one.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.overrides {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.file = fileCfg
	return b
}

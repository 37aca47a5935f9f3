package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*Config
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 3),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(Config)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if len(config.Runs) == 0 {
		config.Runs = []Run{config.Base}
	} else {
		// env and flags act as base values for every run document
		for i := range config.Runs {
			if err := mergo.Merge(&config.Runs[i], config.Base); err != nil {
				return nil, fmt.Errorf("error merging base run: %w", err)
			}
		}
	}

	for i := range config.Runs {
		applyRunDefaults(&config.Runs[i])
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withRunFile() *configBuilder {
	var runFilePath string

	for _, cfg := range b.configs {
		if cfg.RunFilePath != "" {
			runFilePath = cfg.RunFilePath
			break
		}
	}

	if runFilePath != "" {
		runs, err := parseRunFile(runFilePath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, &Config{Runs: runs})
	}

	return b
}

func applyRunDefaults(run *Run) {
	if run.Source.AuthType == "" {
		run.Source.AuthType = DefaultAuthType
	}
	if run.Destination.AuthType == "" {
		run.Destination.AuthType = DefaultAuthType
	}
	if run.Source.CacheBackend == "" {
		run.Source.CacheBackend = DefaultCacheBackend
	}
	if run.Pipeline.RequestTimeout == 0 {
		run.Pipeline.RequestTimeout = DefaultRequestTimeout
	}
	if run.Pipeline.RetryAttempts == 0 {
		run.Pipeline.RetryAttempts = DefaultRetryAttempts
	}
	if run.Pipeline.PushConcurrency == 0 {
		run.Pipeline.PushConcurrency = DefaultPushConcurrency
	}
	if run.Pipeline.ReportFile == "" {
		run.Pipeline.ReportFile = DefaultReportFile
	}
	if run.Pipeline.ErrorsFile == "" {
		run.Pipeline.ErrorsFile = DefaultErrorsFile
	}
}

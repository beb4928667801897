package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const appID = "coffeeshop"

type config struct {
	LogLevel  string `envconfig:"log_level" default:"warning"`
	LogFormat string `envconfig:"log_format" default:"text"`
	LogFile   string `envconfig:"log_file"`
}

func parseEnv() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse env")
	}
	return c, nil
}

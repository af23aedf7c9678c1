package model

import (
	"fmt"
	"strings"
)

// Config is an on/off switch as written in flags and environment variables.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":    On,
	"1":     On,
	"true":  On,
	"yes":   On,
	"off":   Off,
	"0":     Off,
	"false": Off,
	"no":    Off,
	"":      Off,
}

func NewConfig(s string) Config {
	return configName[strings.ToLower(strings.TrimSpace(s))]
}

func (c Config) String() string {
	if c {
		return "on"
	}
	return "off"
}

// Set lets a Config be used with flag.Var.
func (c *Config) Set(s string) error {
	v, ok := configName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("invalid switch %q", s)
	}
	*c = v
	return nil
}

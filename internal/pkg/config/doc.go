// Package config provides loading and validation of application configuration.
//
// Settings are read from a YAML file (path taken from the CONFIG_PATH
// environment variable by the entry points) into typed settings structs.
// Each settings struct validates itself so invalid configuration fails
// fast at startup rather than at first use.
package config

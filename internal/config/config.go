// Package config provides the dev server's configuration, read from
// command-line flags, an optional YAML file and environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/passwordcheck/vdom"
)

// mountIDPattern keeps the mount id usable as a bare CSS id selector.
var mountIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Options holds the configuration values for the dev server.
type Options struct {
	// Addr is the listening address (ip:port).
	Addr string `yaml:"addr"`

	// StaticDir holds main.wasm and wasm_exec.js.
	StaticDir string `yaml:"static_dir"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MountID is the id of the element the form is mounted on.
	MountID string `yaml:"mount_id"`

	// Config is the path to the YAML config file.
	Config string `yaml:"-"`
}

// Defaults returns the options used when nothing else is configured.
func Defaults() *Options {
	return &Options{
		Addr:      "localhost:8080",
		StaticDir: "web",
		LogLevel:  "info",
		MountID:   vdom.DefaultMountID,
		Config:    "devserver.yaml",
	}
}

// Parse resolves the options in order: defaults, flags, config file,
// environment. getenv is usually os.Getenv.
func Parse(args []string, getenv func(string) string) (*Options, error) {
	options := Defaults()

	flags := flag.NewFlagSet("devserver", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&options.Addr, "a", options.Addr, "run on ip:port server")
	flags.StringVar(&options.StaticDir, "static", options.StaticDir, "directory with main.wasm and wasm_exec.js")
	flags.StringVar(&options.LogLevel, "log", options.LogLevel, "log level")
	flags.StringVar(&options.MountID, "mount", options.MountID, "id of the mount element")
	flags.StringVar(&options.Config, "config", options.Config, "path to config file")
	flags.StringVar(&options.Config, "c", options.Config, "path to config file (shorthand)")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if configPath := getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if err := loadFile(options.Config, options); err != nil {
			return nil, err
		}
	}

	if v := getenv("SERVER_ADDRESS"); v != "" {
		options.Addr = v
	}
	if v := getenv("STATIC_DIR"); v != "" {
		options.StaticDir = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		options.LogLevel = v
	}

	if options.MountID == "" {
		return nil, errors.New("mount id must not be empty")
	}
	if !mountIDPattern.MatchString(options.MountID) {
		return nil, fmt.Errorf("mount id %q is not a valid element id", options.MountID)
	}

	return options, nil
}

// loadFile overlays the YAML file onto options. A missing file is not an error.
func loadFile(path string, options *Options) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, options); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

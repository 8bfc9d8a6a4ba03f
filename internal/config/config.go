// Package config owns secretsentry-cli's two configuration surfaces:
// the cobra/viper layer that resolves CLI flags, environment variables,
// and a YAML config file (mirroring the teacher's convention), and a
// small user-scoped JSON settings file that remembers the last scan
// mode between runs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix viper binds environment variables under, e.g.
// SECRETSENTRY_HUGGINGFACE_TOKEN for key "huggingface.token".
const EnvPrefix = "SECRETSENTRY"

// Init resolves the discovery chain for the CLI-level config file:
// --config flag, then $HOME/.secretsentry-cli.yaml, then
// ./config/defaults.yaml. Environment variables are always bound,
// regardless of which (if any) config file was found — the teacher's
// original wiring short-circuited env var binding whenever a file was
// found via the default search path; that case is folded in here so
// flags, file, and env always compose.
func Init(cfgFile string, onUse func(path string)) error {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		return readIfPresent(onUse)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)
	viper.AddConfigPath("./config")

	viper.SetConfigName(".secretsentry-cli")
	err = viper.ReadInConfig()

	notFound := &viper.ConfigFileNotFoundError{}
	if err != nil && errors.As(err, notFound) {
		viper.SetConfigName("defaults")
		err = viper.ReadInConfig()
	}
	if err != nil && !errors.As(err, notFound) {
		return fmt.Errorf("read config: %w", err)
	}
	if err == nil && onUse != nil {
		onUse(viper.ConfigFileUsed())
	}
	return nil
}

func readIfPresent(onUse func(path string)) error {
	err := viper.ReadInConfig()
	notFound := &viper.ConfigFileNotFoundError{}
	switch {
	case err != nil && !errors.As(err, notFound):
		return fmt.Errorf("read config: %w", err)
	case err != nil:
		return nil
	default:
		if onUse != nil {
			onUse(viper.ConfigFileUsed())
		}
		return nil
	}
}

// Watch enables viper's fsnotify-backed live reload and invokes onChange
// whenever the active config file is rewritten, so a long-running hook
// process picks up edits without a restart.
func Watch(onChange func()) {
	viper.OnConfigChange(func(_ fsnotify.Event) {
		if onChange != nil {
			onChange()
		}
	})
	viper.WatchConfig()
}

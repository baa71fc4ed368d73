// Package config resolves scenario inputs from flags, environment,
// an optional config file, and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/rotblauer/kinecalc/params"
	"github.com/rotblauer/kinecalc/scenario"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// New returns a viper instance with scenario defaults and
// KINECALC_* environment overrides.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(params.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	defaults := scenario.DefaultInput()
	for _, p := range scenario.Params {
		v.SetDefault(p.Key, p.Value(defaults))
	}
	return v
}

// FlagName returns the command line flag name for an option key,
// eg. initialDistance -> initial-distance.
func FlagName(key string) string {
	var b strings.Builder
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BindFlags defines one flag per scenario option on fs and binds it into v.
// Flags are strings so that a non-numeric value reaches validation
// instead of failing flag parsing.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	defaults := scenario.DefaultInput()
	for _, p := range scenario.Params {
		name := FlagName(p.Key)
		if fs.Lookup(name) == nil {
			fs.String(name, cast.ToString(p.Value(defaults)), fmt.Sprintf("%s (%s)", p.Name, p.Unit))
		}
		if err := v.BindPFlag(p.Key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// ReadFile reads the config file at path into v.
// With an empty path, $HOME/.kinecalc.{yaml,json,toml,...} is read if it exists.
// Keys in the file that are not scenario options are rejected.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("find home directory: %w", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(params.ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			slog.Debug("No config file found", "name", params.ConfigFileName)
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	slog.Info("Read config file", "path", v.ConfigFileUsed())
	return checkKeys(v)
}

func checkKeys(v *viper.Viper) error {
	var unknown []string
	for _, key := range v.AllKeys() {
		if _, ok := scenario.LookupParam(key); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return fmt.Errorf("unrecognized option(s) in %s: %s", v.ConfigFileUsed(), strings.Join(unknown, ", "))
}

// Values returns the raw value of every scenario option in v, keyed by option name.
// Numeric strings, as environment variables always are, are coerced;
// anything else is left for validation to reject.
func Values(v *viper.Viper) map[string]any {
	values := make(map[string]any, len(scenario.Params))
	for _, p := range scenario.Params {
		raw := v.Get(p.Key)
		if s, ok := raw.(string); ok {
			if f, err := cast.ToFloat64E(strings.TrimSpace(s)); err == nil {
				raw = f
			}
		}
		values[p.Key] = raw
	}
	return values
}

// Load resolves the scenario input from v.
func Load(v *viper.Viper) (scenario.Input, error) {
	return scenario.FromValues(Values(v), scenario.DefaultInput())
}

// Watch calls onChange with the reloaded scenario whenever v's config file changes.
func Watch(v *viper.Viper, onChange func(in scenario.Input, err error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		slog.Info("Config file changed", "path", e.Name, "op", e.Op.String())
		if err := checkKeys(v); err != nil {
			onChange(scenario.Input{}, err)
			return
		}
		onChange(Load(v))
	})
	v.WatchConfig()
}

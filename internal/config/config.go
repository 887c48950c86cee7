// Package config loads startup settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"edgedemo/internal/edge"
	"edgedemo/internal/state"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	View      ViewConfig      `mapstructure:"view"`
	Edge      EdgeConfig      `mapstructure:"edge"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// ViewConfig holds the options every tab starts with.
type ViewConfig struct {
	TopStyle    string `mapstructure:"top_style"`
	BottomStyle string `mapstructure:"bottom_style"`
	LargeTitle  bool   `mapstructure:"large_title"`
	FloatingBar bool   `mapstructure:"floating_bar"`
	CardCount   int    `mapstructure:"card_count"`
}

// EdgeConfig controls the capability gate.
type EdgeConfig struct {
	Effects string `mapstructure:"effects"` // auto, on or off
}

// LogConfig controls debug logging.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
}

// Load reads configuration from path (or the default location when empty)
// and the environment. Env var overrides use prefix EDGEDEMO_.
func Load(path string) (Config, error) {
	v := viper.New()

	d := state.Defaults()
	v.SetDefault("view.top_style", d.TopStyle.String())
	v.SetDefault("view.bottom_style", d.BottomStyle.String())
	v.SetDefault("view.large_title", d.LargeTitle)
	v.SetDefault("view.floating_bar", d.FloatingBar)
	v.SetDefault("view.card_count", d.CardCount)
	v.SetDefault("edge.effects", string(edge.ModeAuto))
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "edgedemo.log"))
	v.SetDefault("telemetry.service_name", "edgedemo")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("EDGEDEMO_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "edgedemo"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EDGEDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path must exist; the default location is optional.
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Options converts the view section into validated store options.
func (c Config) Options() (state.Options, error) {
	top, err := edge.ParseStyle(c.View.TopStyle)
	if err != nil {
		return state.Options{}, fmt.Errorf("view.top_style: %w", err)
	}
	bottom, err := edge.ParseStyle(c.View.BottomStyle)
	if err != nil {
		return state.Options{}, fmt.Errorf("view.bottom_style: %w", err)
	}
	o := state.Options{
		TopStyle:    top,
		BottomStyle: bottom,
		LargeTitle:  c.View.LargeTitle,
		FloatingBar: c.View.FloatingBar,
		CardCount:   c.View.CardCount,
	}
	if err := o.Validate(); err != nil {
		return state.Options{}, fmt.Errorf("view: %w", err)
	}
	return o, nil
}

// EffectsMode returns the parsed capability mode.
func (c Config) EffectsMode() (edge.Mode, error) {
	m, err := edge.ParseMode(c.Edge.Effects)
	if err != nil {
		return edge.ModeAuto, fmt.Errorf("edge.effects: %w", err)
	}
	return m, nil
}

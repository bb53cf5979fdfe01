package config

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"motion-controller-rig/internal/mathutil"
)

// Config holds model locations, rig conventions and preview settings.
type Config struct {
	// Model lookup
	ModelBaseURL string `mapstructure:"model_base_url"`
	ModelFile    string `mapstructure:"model_file"` // overrides the URL derived from id and hand
	GamepadID    string `mapstructure:"gamepad_id"`
	Hand         string `mapstructure:"hand"`
	SchemaFile   string `mapstructure:"schema_file"`

	// Rig conventions
	RootNodeName      string     `mapstructure:"root_node_name"`
	TransformRootName string     `mapstructure:"transform_root_name"`
	RotateOffset      [3]float64 `mapstructure:"rotate_offset"`

	LogLevel string `mapstructure:"log_level"`

	// Preview settings
	OutputDir   string `mapstructure:"output_dir"`
	Format      string `mapstructure:"format"`
	RenderSize  int    `mapstructure:"render_size"`
	Supersample int    `mapstructure:"supersample"`
	Workers     int    `mapstructure:"workers"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{
		ModelBaseURL:      "http://yoda.blob.core.windows.net/models/",
		Hand:              "right",
		RootNodeName:      "RootNode",
		TransformRootName: "root",
		RotateOffset:      mathutil.DefaultRotateOffset,
		LogLevel:          "info",
		OutputDir:         "rig-previews",
		Format:            "webp",
		RenderSize:        256,
		Supersample:       2,
	}
}

// Load reads a JSON or YAML config file (by extension) over Defaults.
// RIG_* environment variables override file values, e.g. RIG_HAND=left.
// An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("model_base_url", d.ModelBaseURL)
	v.SetDefault("model_file", d.ModelFile)
	v.SetDefault("gamepad_id", d.GamepadID)
	v.SetDefault("hand", d.Hand)
	v.SetDefault("schema_file", d.SchemaFile)
	v.SetDefault("root_node_name", d.RootNodeName)
	v.SetDefault("transform_root_name", d.TransformRootName)
	v.SetDefault("rotate_offset", d.RotateOffset[:])
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("format", d.Format)
	v.SetDefault("render_size", d.RenderSize)
	v.SetDefault("supersample", d.Supersample)
	v.SetDefault("workers", d.Workers)

	v.SetEnvPrefix("RIG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		vec3Hook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// vec3Hook decodes "x y z" or "x,y,z" strings, as found in environment
// variables, into [3]float64 fields.
func vec3Hook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([3]float64{}) {
		return data, nil
	}
	fields := strings.FieldsFunc(data.(string), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return nil, fmt.Errorf("want 3 components, got %d in %q", len(fields), data)
	}
	var out [3]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	ModelFile string
	GamepadID string
	Hand      string
	OutputDir string
	Format    string
	LogLevel  string
	Workers   int
}

// Resolve applies non-empty CLI flags and fills remaining gaps.
func (c *Config) Resolve(flags Flags) {
	if flags.ModelFile != "" {
		c.ModelFile = flags.ModelFile
	}
	if flags.GamepadID != "" {
		c.GamepadID = flags.GamepadID
	}
	if flags.Hand != "" {
		c.Hand = flags.Hand
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != "webp" && c.Format != "tga" {
		c.Format = "webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

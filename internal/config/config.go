package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/faresnap-go/pkg/faresnap"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
	"github.com/ukaji3/faresnap-go/pkg/faresnap/parser"
)

// Config represents the complete application configuration
type Config struct {
	Workbook WorkbookConfig `mapstructure:"workbook"`
	Columns  ColumnsConfig  `mapstructure:"columns"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Compare  CompareConfig  `mapstructure:"compare"`
	Output   OutputConfig   `mapstructure:"output"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// WorkbookConfig locates the snapshot table
type WorkbookConfig struct {
	Path      string `mapstructure:"path"`
	Sheet     string `mapstructure:"sheet"`
	HeaderRow int    `mapstructure:"header_row"`
}

// ColumnsConfig names the key columns
type ColumnsConfig struct {
	FromCity        string `mapstructure:"from_city"`
	ToCity          string `mapstructure:"to_city"`
	Month           string `mapstructure:"month"`
	SnapshotMonthLY string `mapstructure:"snapshot_month_ly"`
	Region          string `mapstructure:"region"`
}

// LayoutConfig describes the metric family column blocks
type LayoutConfig struct {
	TYYear        string   `mapstructure:"ty_year"`
	LYYear        string   `mapstructure:"ly_year"`
	Fare          []string `mapstructure:"fare"`
	Pax           []string `mapstructure:"pax"`
	FareReference string   `mapstructure:"fare_reference"`
	PaxReference  string   `mapstructure:"pax_reference"`
}

// CompareConfig holds comparison defaults
type CompareConfig struct {
	Window int    `mapstructure:"window"`
	Metric string `mapstructure:"metric"`
}

// OutputConfig controls how reports are written
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"sheet":      "workbook.sheet",
	"header-row": "workbook.header_row",
	"window":     "compare.window",
	"metric":     "compare.metric",
	"format":     "output.format",
	"pretty":     "output.pretty",
	"log-level":  "logging.level",
}

// Load reads configuration from an optional file, environment variables and flags.
// Precedence, highest first: flags that were set, FARESNAP_* environment
// variables, the file, defaults. path may be empty.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Enable environment variable override
	v.SetEnvPrefix("FARESNAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	keys := parser.DefaultKeyColumns()
	spec := parser.DefaultLayoutSpec()

	// Workbook defaults
	v.SetDefault("workbook.sheet", faresnap.DefaultSheet)
	v.SetDefault("workbook.header_row", faresnap.DefaultHeaderRow)

	// Column defaults
	v.SetDefault("columns.from_city", keys.FromCity)
	v.SetDefault("columns.to_city", keys.ToCity)
	v.SetDefault("columns.month", keys.Month)
	v.SetDefault("columns.snapshot_month_ly", keys.SnapshotMonthLY)
	v.SetDefault("columns.region", keys.Region)

	// Layout defaults
	v.SetDefault("layout.ty_year", spec.TYYear)
	v.SetDefault("layout.ly_year", spec.LYYear)

	// Compare defaults
	v.SetDefault("compare.window", 3)
	v.SetDefault("compare.metric", string(models.Fare))

	// Output defaults
	v.SetDefault("output.format", "table")
	v.SetDefault("output.pretty", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	// Validate Workbook config
	if c.Workbook.Sheet == "" {
		return fmt.Errorf("workbook.sheet is required")
	}
	if c.Workbook.HeaderRow < 1 {
		return fmt.Errorf("workbook.header_row must be at least 1")
	}

	// Validate Columns config
	if c.Columns.FromCity == "" || c.Columns.ToCity == "" || c.Columns.Month == "" {
		return fmt.Errorf("columns.from_city, columns.to_city and columns.month are required")
	}

	// Validate Layout config
	if len(c.Layout.Fare) == 0 || len(c.Layout.Pax) == 0 {
		if c.Layout.TYYear == "" || c.Layout.LYYear == "" {
			return fmt.Errorf("layout.ty_year and layout.ly_year are required unless layout.fare and layout.pax are set")
		}
	}
	want := 2 * models.SnapshotCount
	if n := len(c.Layout.Fare); n != 0 && n != want {
		return fmt.Errorf("layout.fare must list %d columns, got %d", want, n)
	}
	if n := len(c.Layout.Pax); n != 0 && n != want {
		return fmt.Errorf("layout.pax must list %d columns, got %d", want, n)
	}

	// Validate Compare config
	if c.Compare.Window < 1 {
		return fmt.Errorf("compare.window must be at least 1")
	}
	if _, err := models.ParseMetricFamily(c.Compare.Metric); err != nil {
		return fmt.Errorf("compare.metric: %w", err)
	}

	// Validate Output config
	validFormats := map[string]bool{"json": true, "table": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("output.format must be one of: json, table")
	}

	// Validate Logging config
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, text")
	}

	return nil
}

// LoadOptions converts the workbook, column and layout sections into loader options.
func (c *Config) LoadOptions() faresnap.LoadOptions {
	opts := faresnap.DefaultLoadOptions()
	opts.Sheet = c.Workbook.Sheet
	opts.HeaderRow = c.Workbook.HeaderRow
	opts.Keys = parser.KeyColumns{
		FromCity:        c.Columns.FromCity,
		ToCity:          c.Columns.ToCity,
		Month:           c.Columns.Month,
		SnapshotMonthLY: c.Columns.SnapshotMonthLY,
		Region:          c.Columns.Region,
	}
	opts.Layout = parser.LayoutSpec{
		TYYear:     c.Layout.TYYear,
		LYYear:     c.Layout.LYYear,
		Blocks:     make(map[models.MetricFamily][]string),
		References: make(map[models.MetricFamily]string),
	}
	if len(c.Layout.Fare) > 0 {
		opts.Layout.Blocks[models.Fare] = c.Layout.Fare
	}
	if len(c.Layout.Pax) > 0 {
		opts.Layout.Blocks[models.Passengers] = c.Layout.Pax
	}
	if c.Layout.FareReference != "" {
		opts.Layout.References[models.Fare] = c.Layout.FareReference
	}
	if c.Layout.PaxReference != "" {
		opts.Layout.References[models.Passengers] = c.Layout.PaxReference
	}
	return opts
}

// Family returns the configured default metric family.
func (c *Config) Family() models.MetricFamily {
	f, err := models.ParseMetricFamily(c.Compare.Metric)
	if err != nil {
		return models.Fare
	}
	return f
}

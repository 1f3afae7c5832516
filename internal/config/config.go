package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/babarot/trashcan/internal/env"
	"github.com/babarot/trashcan/internal/trash/codec"
	"github.com/go-playground/validator/v10"
	"github.com/muesli/reflow/indent"
	"gopkg.in/yaml.v2"
)

var validate *validator.Validate

type Config struct {
	Core    Core          `yaml:"core"`
	List    List          `yaml:"list"`
	Logging LoggingConfig `yaml:"logging"`
}

type Core struct {
	Trash   TrashConfig   `yaml:"trash"`
	Restore RestoreConfig `yaml:"restore"`
	Purge   PurgeConfig   `yaml:"purge"`
	Verbose bool          `yaml:"verbose"`
}

type TrashConfig struct {
	DirName   string `yaml:"dir_name" validate:"required,segment"`
	Escape    string `yaml:"escape" validate:"required,escapechar"`
	RootStyle string `yaml:"root_style" validate:"required,oneof=home drive"`
	HomeRoot  string `yaml:"home_root" validate:"omitempty,dirpath_os"`

	// ExclusiveCreate reserves trash names with O_EXCL instead of probing
	ExclusiveCreate bool `yaml:"exclusive_create"`
}

type RestoreConfig struct {
	Overwrite bool `yaml:"overwrite"`
	Verbose   bool `yaml:"verbose"`
}

type PurgeConfig struct {
	Confirm bool `yaml:"confirm"`
}

type List struct {
	Include IncludeConfig `yaml:"include"`
	Exclude ExcludeConfig `yaml:"exclude"`
}

type IncludeConfig struct {
	WithinDays int `yaml:"within_days" validate:"gte=0"`
}

type ExcludeConfig struct {
	Files    []string   `yaml:"files"`
	Patterns []string   `yaml:"patterns"`
	Globs    []string   `yaml:"globs"`
	Size     SizeConfig `yaml:"size"`
}

type SizeConfig struct {
	Min string `yaml:"min" validate:"omitempty,validSize"`
	Max string `yaml:"max" validate:"omitempty,validSize"`
}

type LoggingConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Level    string         `yaml:"level" validate:"required,oneof=debug info warn error"`
	Rotation RotationConfig `yaml:"rotation"`
}

type RotationConfig struct {
	MaxSize  string `yaml:"max_size" validate:"required,validSize"`
	MaxFiles int    `yaml:"max_files" validate:"gte=0"`
}

// Layout converts the trash settings into the immutable codec layout the
// engine is built with
func (c Config) Layout() (codec.Layout, error) {
	t := c.Core.Trash

	style, err := codec.ParseRootStyle(t.RootStyle)
	if err != nil {
		return codec.Layout{}, err
	}

	home := t.HomeRoot
	if home == "" {
		home, err = os.UserHomeDir()
		if err != nil {
			return codec.Layout{}, fmt.Errorf("failed to get home directory: %w", err)
		}
	}
	home, err = expandPath(home)
	if err != nil {
		return codec.Layout{}, fmt.Errorf("invalid home_root %q: %w", t.HomeRoot, err)
	}
	if real, err := filepath.EvalSymlinks(home); err == nil {
		home = real
	} else {
		printWarning(fmt.Sprintf("home_root %q cannot be resolved", home), err.Error())
	}

	runes := []rune(t.Escape)
	if len(runes) != 1 {
		return codec.Layout{}, fmt.Errorf("escape must be a single character: %q", t.Escape)
	}

	layout := codec.Layout{
		Style:    style,
		HomeRoot: filepath.ToSlash(home),
		DirName:  t.DirName,
		Escape:   runes[0],
	}
	return layout, layout.Validate()
}

type configError struct {
	configPath string
	parser     parser
	err        error
}

type parser struct{}

func (p parser) getDefaultConfigContents() string {
	content, _ := yaml.Marshal(NewDefaultConfig())
	return string(content)
}

func (e configError) Error() string {
	return heredoc.Docf(`
		Couldn't find the "%s" config file.
		Please try again after creating it or specifying a valid config path.
		The recommended config path is %s (default).
		Example YAML file contents:
		---
		%s
		---
		Original error:
		%s
		`,
		e.configPath,
		env.TRASHCAN_CONFIG_PATH,
		e.parser.getDefaultConfigContents(),
		indent.String(e.err.Error(), 2),
	)
}

func (p parser) createConfigFile(path string) error {
	if err := p.ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("creating config file as it does not exist", "config-file", path)
		newConfigFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer newConfigFile.Close()

		if _, err := newConfigFile.WriteString(p.getDefaultConfigContents()); err != nil {
			return err
		}
	}

	return nil
}

func (p parser) ensureDirExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		slog.Warn("creating directory as it does not exist", "dir", dirPath)
		if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) ensureConfigFile(path string) (string, error) {
	if err := p.createConfigFile(path); err != nil {
		return "", configError{
			configPath: path,
			parser:     p,
			err:        err,
		}
	}
	return path, nil
}

type parsingError struct {
	err error
}

func (e parsingError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.err)
}

func (e parsingError) Unwrap() error {
	return e.err
}

func (p parser) readConfigFile(path string) (Config, error) {
	// keys missing from the file keep their defaults
	cfg := *NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, configError{
			configPath: path,
			parser:     p,
			err:        err,
		}
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, err
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return cfg, fmt.Errorf("validation error: field %s, %q is invalid (%s)",
				verrs[0].Namespace(), verrs[0].Value(), verrs[0].Tag())
		}
		return cfg, err
	}
	return cfg, nil
}

func initParser() parser {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("validSize", validateSize)
	_ = validate.RegisterValidation("segment", validateSegment)
	_ = validate.RegisterValidation("escapechar", validateEscapeChar)
	_ = validate.RegisterValidation("dirpath_os", validateDirPath)

	return parser{}
}

// Parse reads the config file at path. With an empty path the default
// location is used, and a default config is written there if missing.
func Parse(path string) (Config, error) {
	parser := initParser()

	var cfg Config
	var err error
	configPath := path

	if configPath == "" {
		configPath, err = parser.ensureConfigFile(env.TRASHCAN_CONFIG_PATH)
		if err != nil {
			return cfg, parsingError{err: err}
		}
	}
	slog.Debug("config file found", "config-file", configPath)

	cfg, err = parser.readConfigFile(configPath)
	if err != nil {
		return cfg, parsingError{err: err}
	}

	return cfg, nil
}

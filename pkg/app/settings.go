package app

import (
	"os"
	"strings"
	"text/template"

	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/titanous/json5"
)

const (
	// DefaultSettingsFile is read from the working directory when no
	// --config flag is given and the file exists.
	DefaultSettingsFile = "line-set-tool.json5"
	envPrefix           = "LINESET"
	defaultLogDir       = "."
)

// DefaultSummaryTemplate renders e.g. "a.txt ∩ b.txt: 3 lines".
const DefaultSummaryTemplate = `{{ base .File1 }} {{ .Symbol }} {{ base .File2 }}: {{ .Count }} {{ if eq .Count 1 }}line{{ else }}lines{{ end }}`

// Settings are the merged values of defaults, the settings file, environment
// variables and command-line flags, in increasing precedence.
type Settings struct {
	LogDir           string `mapstructure:"log_dir"`
	Verbose          bool   `mapstructure:"verbose"`
	DefaultOperation string `mapstructure:"default_operation"`
	StartDir         string `mapstructure:"start_dir"`
	ShowHidden       bool   `mapstructure:"show_hidden"`
	SummaryTemplate  string `mapstructure:"summary_template"`
	Mouse            bool   `mapstructure:"mouse"`

	operation setop.Operation
	summary   *template.Template
}

// Operation returns the parsed default operation, or zero if none is set.
func (s *Settings) Operation() setop.Operation {
	return s.operation
}

// Summary returns the parsed summary template.
func (s *Settings) Summary() *template.Template {
	return s.summary
}

// flagKeys maps settings keys to the flags that override them.
var flagKeys = map[string]string{
	"log_dir":   "log-dir",
	"verbose":   "verbose",
	"start_dir": "start-dir",
}

// LoadSettings builds the settings. configPath may be empty, in which case
// DefaultSettingsFile is used if it exists. flags may be nil.
func LoadSettings(configPath string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetDefault("log_dir", defaultLogDir)
	v.SetDefault("verbose", false)
	v.SetDefault("default_operation", "")
	v.SetDefault("start_dir", "")
	v.SetDefault("show_hidden", false)
	v.SetDefault("summary_template", DefaultSummaryTemplate)
	v.SetDefault("mouse", true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		if info, err := os.Stat(DefaultSettingsFile); err == nil && !info.IsDir() {
			configPath = DefaultSettingsFile
		}
	}
	if configPath != "" {
		values, err := readSettingsFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := v.MergeConfigMap(values); err != nil {
			return nil, errors.Wrapf(err, "merge settings from '%s'", configPath)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, errors.Wrapf(err, "bind flag --%s", name)
				}
			}
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, errors.Wrap(err, "decode settings")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// readSettingsFile decodes a JSON5 document into a map for viper. Comments,
// unquoted keys and trailing commas are allowed.
func readSettingsFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read settings file")
	}
	values := make(map[string]interface{})
	if err := json5.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "parse settings file '%s'", path)
	}
	return values, nil
}

func (s *Settings) validate() error {
	if strings.TrimSpace(s.DefaultOperation) != "" {
		op, err := setop.ParseOperation(s.DefaultOperation)
		if err != nil {
			return errors.Wrap(err, "default_operation")
		}
		s.operation = op
	}

	tmpl, err := ParseSummaryTemplate(s.SummaryTemplate)
	if err != nil {
		return errors.Wrap(err, "summary_template")
	}
	s.summary = tmpl
	return nil
}

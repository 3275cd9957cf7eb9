package config

import (
	_ "embed"
	stderrors "errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sddkit/sddkit/pkg/agent"
	"github.com/sddkit/sddkit/pkg/errors"
	"github.com/sddkit/sddkit/pkg/logging"
	"github.com/sddkit/sddkit/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// EnvPrefix is the environment variable namespace. A double underscore
// separates nested keys, so SDDKIT_LAYOUT__COMMANDS_DIR maps onto
// layout.commands_dir while SDDKIT_KIRO_DIR stays the flat kiro_dir.
const EnvPrefix = "SDDKIT_"

// Load merges configuration for a project directory. The project's
// .sddkit.toml is optional; a malformed one is a hard error.
func Load(projectDir string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Runtime defaults that the embedded file cannot know
	runtimeDefaults := map[string]interface{}{
		"os": agent.DetectOS(),
	}
	if err := k.Load(confmap.Provider(runtimeDefaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load runtime defaults")
	}

	// 2. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 3. Project config file, if present
	if projectConfigPath := paths.FindProjectConfig(projectDir); projectConfigPath != "" {
		if err := k.Load(file.Provider(projectConfigPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", projectConfigPath)
		}
		logger.Debug().Str("path", projectConfigPath).Msg("Loaded project config")
	}

	// 4. Environment variables
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	return &cfg, nil
}

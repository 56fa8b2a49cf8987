package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "DOKV_"

var sections = map[string]bool{"store": true, "output": true, "log": true}

// LoadOptions selects the user config file
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist. When empty the
	// XDG config file is used if present.
	ConfigFile string
	// Overrides are applied last, keyed by dotted path (e.g. "store.path")
	Overrides map[string]interface{}
}

// Load merges defaults, the user config file, environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, required := opts.ConfigFile, true
	if path == "" {
		path, required = paths.ConfigFile(), false
	}
	if err := loadFile(k, paths.ExpandHome(path), required); err != nil {
		return nil, err
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Caller overrides (command-line flags)
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	if raw, ok := k.Get("store.file_mode").(string); ok {
		if _, err := parseFileMode(raw); err != nil {
			return nil, err
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); err != nil {
		if !required && stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
			WithDetail("path", path)
	}
	return nil
}

// envKey maps DOKV_STORE_AUTO_SYNC to store.auto_sync. Variables outside a
// known section (DOKV_CONFIG_DIR, ...) are skipped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" || !sections[section] {
		return ""
	}
	return section + "." + rest
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// stringToFileModeHookFunc parses octal strings such as "0644" or "0o600"
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(fs.FileMode(0)) {
			return data, nil
		}
		return parseFileMode(data.(string))
	}
}

func parseFileMode(s string) (fs.FileMode, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
	mode, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigValid, "invalid store.file_mode %q", s)
	}
	return fs.FileMode(mode), nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/BurntSushi/toml"
)

const (
	APP_NAME      = "mica"
	SETTINGS_FILE = "config.toml"
)

var DEFAULT_SETTINGS_FILE string = `# mica user settings
color = true
trace = false
`

// Settings are user wide preferences, read from the config directory and
// overridden by environment variables.
type Settings struct {
	Color bool `toml:"color" env:"MICA_COLOR"`
	Trace bool `toml:"trace" env:"MICA_TRACE"`

	Dir string `toml:"-"`
}

func (s *Settings) ShowAll() map[string]string {
	shown := map[string]string{"MICA_CONFIG_DIR": s.Dir}

	v := reflect.ValueOf(s).Elem()
	for i, n := 0, v.NumField(); i < n; i++ {
		field := v.Type().Field(i)
		envTag := field.Tag.Get("env")
		if envTag != "" {
			shown[envTag] = fmt.Sprint(v.Field(i).Interface())
		}
	}
	return shown
}

func LoadSettings() (*Settings, error) {
	dir, err := getConfigDir(APP_NAME)
	if err != nil {
		return nil, err
	}

	settings, err := loadSettingsFile(filepath.Join(dir, SETTINGS_FILE))
	if err != nil {
		return nil, err
	}
	settings.Dir = dir

	err = MapEnvToStruct(environ(), settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

func loadSettingsFile(path string) (*Settings, error) {
	settings := &Settings{Color: true}

	_, err := os.Stat(path)
	if os.IsNotExist(err) || (DEV && err == nil) {
		// NOTE: in development mode the file is rewritten on every run
		// because developers might have changed it for debugging
		if err := writeStringToFile(path, DEFAULT_SETTINGS_FILE); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return settings, nil
}

func writeStringToFile(fileName, content string) error {
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	if err != nil {
		return err
	}

	return nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, key := range []string{"MICA_COLOR", "MICA_TRACE"} {
		if value, ok := os.LookupEnv(key); ok {
			env[key] = value
		}
	}
	return env
}

// MapEnvToStruct copies values from data into the fields of result tagged
// with `env`. String and bool fields are supported.
func MapEnvToStruct(data map[string]string, result any) error {
	v := reflect.ValueOf(result).Elem()
	t := v.Type()

	for i, n := 0, t.NumField(); i < n; i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag == "" {
			continue
		}
		value, ok := data[envTag]
		if !ok || !fieldValue.CanSet() {
			continue
		}

		switch fieldValue.Kind() {
		case reflect.String:
			fieldValue.SetString(value)
		case reflect.Bool:
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("%s: expected a boolean, got %q", envTag, value)
			}
			fieldValue.SetBool(b)
		}
	}

	return nil
}

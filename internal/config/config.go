// Package config handles input from etc/main.toml, .env.local and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	// DefaultPath is the directory holding MainFile when no path is given.
	DefaultPath = "./etc/"

	// MainFile is the name of the main configuration file.
	MainFile = "main.toml"

	// EnvFile is the generated environment file of a site instance, next to the etc directory.
	EnvFile = ".env.local"

	// EnvPrefix prefixes environment overrides, e.g. BARBERSITE_WEBSERVER_PORT.
	EnvPrefix = "BARBERSITE"

	// JSONConfigEnv holds a JSON document merged over the file config.
	JSONConfigEnv = "BARBERSITE_CONFIG_JSON"
)

// shopEnv binds config keys to the variables written into EnvFile by create-shop.
var shopEnv = map[string]string{ //nolint:gochecknoglobals
	"shop.name":   "SHOP_NAME",
	"shop.city":   "SHOP_CITY",
	"shop.state":  "SHOP_STATE",
	"title":       "META_TITLE",
	"description": "META_DESCRIPTION",
}

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	if path == "" {
		path = DefaultPath
	}

	if err = loadEnvFile(filepath.Join(filepath.Dir(filepath.Clean(path)), EnvFile)); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(filepath.Join(path, MainFile))
	v.SetConfigType("toml")

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range shopEnv {
		if err = v.BindEnv(key, env); err != nil {
			return Config{}, errors.Wrapf(err, "failed to bind %s", env)
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if configAsJSON := os.Getenv(JSONConfigEnv); configAsJSON != "" {
		c, err = decodeAndMergeConfig(c, configAsJSON)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) { //nolint:mnd
	v.SetDefault("title", "Barbershop - Premium Grooming")
	v.SetDefault("description", "Premium barbershop services")
	v.SetDefault("data.driver", DriverFile)
	v.SetDefault("data.dir", "data")
	v.SetDefault("db.path", "data/barbersite.db")
	v.SetDefault("webserver.port", 8080)
	v.SetDefault("webserver.shutdowntime", 5)
	v.SetDefault("webserver.readbuffersize", 8192)
	v.SetDefault("admin.username", "admin")
	v.SetDefault("backup.schedule", "0 3 * * *")
	v.SetDefault("backup.dir", "data/backups")
	v.SetDefault("backup.keep", 7)
	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "barbersite")
	v.SetDefault("log.servicename", "web")
}

// loadEnvFile exports the variables of a generated env file, if one exists.
// Variables already present in the environment win.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "failed to stat %s", path)
	}

	return errors.Wrapf(gotenv.Load(path), "failed to load %s", path)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Redacted returns a copy of c with secrets blanked, for printing.
func Redacted(c Config) Config {
	if c.DB.Password != "" {
		c.DB.Password = redactedValue
	}

	if c.Admin.PasswordHash != "" {
		c.Admin.PasswordHash = redactedValue
	}

	return c
}

// validate minimal config settings.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	switch c.Data.Driver {
	case DriverFile:
		if c.Data.Dir == "" {
			return errors.Wrap(ErrEmptyDataDir, invalidErrMessage)
		}
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return errors.Wrapf(ErrUnknownDataDriver, "%s: %q", invalidErrMessage, c.Data.Driver)
	}

	if c.Backup.Enabled && c.Backup.Dir == "" {
		return errors.Wrap(ErrEmptyBackupDir, invalidErrMessage)
	}

	return nil
}

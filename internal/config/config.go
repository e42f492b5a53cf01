// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. SITEADMIN_DB_PASSWORD.
	EnvPrefix = "SITEADMIN"

	// JSONConfigEnv holds a complete JSON document merged over the file config.
	JSONConfigEnv = "SITEADMIN_CONFIG_JSON"

	redacted = "********"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configAsJSON := os.Getenv(JSONConfigEnv); configAsJSON != "" {
		v.SetConfigType("json")

		if err := v.MergeConfig(strings.NewReader(configAsJSON)); err != nil {
			return Config{}, errors.Wrap(err, "failed to merge json config override")
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "siteadmin")
	v.SetDefault("db.gormengine", EngineMySQL)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306) //nolint:mnd
	v.SetDefault("webserver.port", 8080) //nolint:mnd
	v.SetDefault("webserver.url", "http://localhost:8080")
	v.SetDefault("webserver.shutdowntime", 5) //nolint:mnd
	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "siteadmin")
	v.SetDefault("log.servicename", "siteadmin")
	v.SetDefault("log.console.enabled", true)
}

// Redact returns a copy of c with every secret replaced.
func Redact(c *Config) Config {
	out := *c

	if out.DB.Password != "" {
		out.DB.Password = redacted
	}

	if out.Webserver.AdminToken != "" {
		out.Webserver.AdminToken = redacted
	}

	return out
}

// DumpConfig config as TOML String. Secrets are redacted.
func DumpConfig(c *Config) (string, error) {
	out, err := toml.Marshal(Redact(c))
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out), nil
}

// DumpConfigJSON config as JSON String. Secrets are redacted.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(Redact(c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate minimal config settings.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	switch c.DB.GormEngine {
	case EngineMySQL, EnginePostgres, EngineSQLite:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	if c.DB.Name == "" {
		return errors.Wrap(ErrEmptyDBName, invalidErrMessage)
	}

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	return nil
}

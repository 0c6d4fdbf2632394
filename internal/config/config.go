/*
 * config.go, part of nanopdb.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * nanopdb is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

//Package config loads the settings of the nanopdb command from an optional
//YAML file and from NANOPDB_ environment variables, in that order of
//increasing priority. Nested keys are separated by "__" in variable names,
//e.g. NANOPDB_FETCH__TIMEOUT=1m.
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

//EnvPrefix is prepended to the environment variables read by Load.
const EnvPrefix = "NANOPDB"

type Configuration struct {
	Fetch Fetch `mapstructure:"FETCH" json:"fetch" yaml:"fetch"`
	Log   Log   `mapstructure:"LOG" json:"log" yaml:"log"`
}

type Fetch struct {
	//prefix to which <id>.pdb is appended.
	BaseURL string `mapstructure:"BASE_URL" json:"base_url" yaml:"base_url" validate:"required,url"`
	//limit for each download.
	Timeout time.Duration `mapstructure:"TIMEOUT" json:"timeout" yaml:"timeout" validate:"min=1s"`
	//simultaneous downloads when several IDs are given.
	Concurrency int `mapstructure:"CONCURRENCY" json:"concurrency" yaml:"concurrency" validate:"min=1,max=32"`
}

type Log struct {
	Level string `mapstructure:"LEVEL" json:"level" yaml:"level" validate:"oneof=debug info warn error"`
}

//Default returns the configuration used when nothing is set.
func Default() *Configuration {
	return &Configuration{
		Fetch: Fetch{
			BaseURL:     "https://files.rcsb.org/download/",
			Timeout:     30 * time.Second,
			Concurrency: 4,
		},
		Log: Log{Level: "warn"},
	}
}

//Load reads the configuration. path is a YAML file, it can be empty, in which
//case only the defaults and the environment are used.
func Load(path string) (*Configuration, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("__"))
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("FETCH__BASE_URL", def.Fetch.BaseURL)
	v.SetDefault("FETCH__TIMEOUT", def.Fetch.Timeout)
	v.SetDefault("FETCH__CONCURRENCY", def.Fetch.Concurrency)
	v.SetDefault("LOG__LEVEL", def.Log.Level)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	bindEnvs(v, reflect.TypeOf(Configuration{}))

	conf := new(Configuration)
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

//bindEnvs binds every leaf of t to its environment variable, so that
//variables are seen by Unmarshal even for keys that have no default.
func bindEnvs(v *viper.Viper, t reflect.Type, path ...string) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			tag = field.Name
		}
		newPath := append(append([]string{}, path...), tag)
		if field.Type.Kind() == reflect.Struct {
			bindEnvs(v, field.Type, newPath...)
		} else {
			v.BindEnv(strings.Join(newPath, "__"))
		}
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

//Validate checks the values of the configuration. The error lists every
//field that failed, with the key used to set it.
func (C *Configuration) Validate() error {
	err := validate.Struct(C)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("config: %w", err)
	}
	var b strings.Builder
	b.WriteString("config: invalid values:")
	for _, fe := range errs {
		fmt.Fprintf(&b, "\n - %s=%v failed the '%s' rule", envKey(fe.Namespace()), fe.Value(), ruleOf(fe))
	}
	return fmt.Errorf("%s", b.String())
}

//envKey turns a validator namespace, Configuration.Fetch.BaseURL, into the
//name of the key, FETCH__BASE_URL.
func envKey(namespace string) string {
	parts := strings.Split(namespace, ".")
	t := reflect.TypeOf(Configuration{})
	keys := make([]string, 0, len(parts))
	for _, p := range parts[1:] {
		f, ok := t.FieldByName(p)
		if !ok {
			return namespace
		}
		keys = append(keys, f.Tag.Get("mapstructure"))
		t = f.Type
	}
	return strings.Join(keys, "__")
}

func ruleOf(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

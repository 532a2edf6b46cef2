package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(content []byte) {
	initFromYaml(content)
	err := GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
}

type Config struct {
	StorageEnabled  bool   `yaml:"storage_enabled"`
	StorageSupplier string `yaml:"storage_supplier"`
	URLExpires      string `yaml:"url_expires"`

	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`

	AliOss       `yaml:"ali_oss"`
	MySQL        `yaml:"mysql"`
	Geek         `yaml:"geek"`
	Tuzi         `yaml:"tuzi"`
	V3           `yaml:"v3"`
	Generation   `yaml:"generation"`
	RequestOrder []Request `yaml:"request_order"`
}

func (c *Config) Verify() error {
	if c.StorageEnabled && c.StorageSupplier != "ali_oss" && c.StorageSupplier != "local" {
		return fmt.Errorf("storage_supplier must be ali_oss or local")
	}
	if c.URLExpires == "" {
		c.URLExpires = "168h"
	}
	_, err := time.ParseDuration(c.URLExpires)
	if err != nil {
		return err
	}
	if len(c.RequestOrder) == 0 {
		return fmt.Errorf("request_order must not be empty")
	}
	return nil
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

type Geek struct {
	Token string `yaml:"token"`
}

type Tuzi struct {
	Token string `yaml:"token"`
}

type V3 struct {
	Token string `yaml:"token"`
}

// Generation tunes the cosmetic side of batch runs, not the model calls.
type Generation struct {
	DisplayDelay string `yaml:"display_delay"` // how long a settled medium stays in the progress set
	TickInterval string `yaml:"tick_interval"` // progress simulation tick
}

type Request struct {
	Supplier  string `yaml:"supplier"`
	TokenName string `yaml:"token_name"`
	Model     string `yaml:"model"`
}

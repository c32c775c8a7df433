package config

import (
	"encoding/json"
	"os"

	"github.com/kudosapp/kudos/internal/timex"
)

// jsonConfig is the intermediate DTO used only for reading JSON configuration
// files. Duration fields accept either strings such as "720h" or integer
// nanoseconds. After unmarshalling, its fields are copied into Config.
type jsonConfig struct {
	EndpointAddr   string         `json:"endpoint_addr"`
	DatabaseDSN    string         `json:"database_dsn"`
	SessionSecret  string         `json:"session_secret"`
	SessionMaxAge  timex.Duration `json:"session_max_age"`
	Env            string         `json:"env"`
	S3AccessKey    string         `json:"s3_access_key"`
	S3SecretKey    string         `json:"s3_secret_key"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
}

// parseJSON loads configuration values from the JSON file named by the -c
// flag, if any, into the provided Config. Absent fields keep their current
// values. An unreadable or invalid file panics: a half-applied config file is
// worse than a crash at startup.
func parseJSON(config *Config) {
	path := jsonConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SessionSecret != "" {
		config.SessionSecret = c.SessionSecret
	}
	if c.SessionMaxAge.Duration != 0 {
		config.SessionMaxAge = c.SessionMaxAge.Duration
	}
	if c.Env != "" {
		config.Env = c.Env
	}
	if c.S3AccessKey != "" {
		config.S3AccessKey = c.S3AccessKey
	}
	if c.S3SecretKey != "" {
		config.S3SecretKey = c.S3SecretKey
	}
	if c.S3Bucket != "" {
		config.S3Bucket = c.S3Bucket
	}
	if c.S3Region != "" {
		config.S3Region = c.S3Region
	}
	if c.S3BaseEndpoint != "" {
		config.S3BaseEndpoint = c.S3BaseEndpoint
	}
}

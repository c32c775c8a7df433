package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session cookie secret
//	-m int      session max age, minutes
//	-e string   environment ("development" or "production")
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket name
//	-g string   S3 region
//	-o string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-c string   path to a JSON config file (read earlier by parseJSON)
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret")
	sessionMaxAge := fs.Int("m", int(config.SessionMaxAge.Minutes()), "session max age (in minutes)")
	fs.StringVar(&config.Env, "e", config.Env, "environment: development or production")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "o", config.S3BaseEndpoint, "S3 base endpoint")

	// Registered so Parse accepts it; the value is consumed by parseJSON.
	fs.String("c", "", "path to JSON config file")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	config.SessionMaxAge = time.Duration(*sessionMaxAge) * time.Minute
}

// jsonConfigPath scans args for the -c/--config flag before the full flag set
// is parsed, so the JSON overlay can be applied first and flags still win.
func jsonConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		for _, name := range []string{"-c", "--config", "-config"} {
			if arg == name {
				if i+1 < len(args) {
					return args[i+1]
				}
				return ""
			}
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"=")
			}
		}
	}
	return ""
}

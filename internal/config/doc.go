// Package config resolves piiguard's runtime configuration once at startup.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory, if present. It only fills
//     variables that are not already set in the environment.
//  3. Optional JSON file selected with -c or -config.
//  4. Environment variables.
//  5. Command-line flags.
//
// Environment variables
//
//	DATABASE_PATH     record store location: SQLite file path or postgres:// DSN
//	FERNET_KEY_PATH   key file location
//	LOG_LEVEL         debug, info, warn or error
//	LOG_FORMAT        text or json
//	TRANSFORM_POLICY  continue or abort
//	KEEP_ALIVE        true to keep the demo command running until a signal
//
// Supported flags
//
//	-d string   record store location
//	-k string   key file location
//	-l string   log level
//	-p string   transform failure policy
//
// # JSON schema
//
//	{
//	  "database_path": "/data/test_users.db",
//	  "key_path": "/data/fernet.key",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "policy": "continue",
//	  "keep_alive": false
//	}
//
// Components receive the resolved *Config; none of them read the environment
// on their own.
package config

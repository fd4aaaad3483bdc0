// Package config provides configuration management for skillsref using Viper.
//
// Configuration is read from config.yaml in the current directory or the
// XDG config directory, with SKILLSREF_* environment variable overrides.
// The repo manager persists repository registrations back to the same file
// through atomic writes.
package config

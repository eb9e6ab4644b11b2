// Package config provides configuration management for ExportScout.
package config

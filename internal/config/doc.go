// Package config loads shoplist settings from a TOML file.
// Missing files and blank values fall back to built-in defaults.
package config

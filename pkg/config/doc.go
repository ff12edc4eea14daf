// Package config loads devw's own settings: where the block registry lives,
// which project to operate on, where to log and how to render output.
// Settings are layered from embedded defaults, an optional user file and
// DEVW_* environment variables.
//
// Project state (.dwf/config.yml) is handled by package project, not here.
package config

// Package config loads dokv settings from embedded defaults, the user config
// file and DOKV_* environment variables, in that order of precedence.
package config

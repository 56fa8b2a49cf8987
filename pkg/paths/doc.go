// Package paths resolves the locations dokv reads from and writes to.
//
// Configuration and logs follow the XDG Base Directory layout:
//
//   - config: $XDG_CONFIG_HOME/dokv/config.toml
//   - log:    $XDG_STATE_HOME/dokv/dokv.log
//
// # Environment Variables
//
//   - DOKV_CONFIG_DIR: Override the config directory
//   - DOKV_STATE_DIR: Override the state directory
//
// Store paths given on the command line or in config are resolved with
// ResolveStorePath, which expands a leading ~/ and makes the path absolute.
package paths

// Package config handles configuration management for xpath.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a config file, TOML or YAML by extension (--config, or
//     $XDG_CONFIG_HOME/xpath/config.toml when present)
//  3. XPATH_ environment variables (XPATH_LOG_VERBOSITY -> log.verbosity)
//  4. explicit overrides, usually command-line flags
//
// Path-valued keys decode straight into typed paths, parsed with the profile
// the configuration itself selects.
package config

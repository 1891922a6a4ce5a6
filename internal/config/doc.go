// Package config loads, validates, and defaults the subfix configuration.
//
// Configuration lives in a TOML file, by default at
// ~/.config/subfix/config.toml, with a project-local subfix.toml honored as
// a fallback. All path fields are expanded (including ~) and made absolute
// during load. Formatting and timing limits are plain data handed to the
// engine packages; no limit is hard-coded outside this package.
package config

// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/palinimi/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/palinimi/config.cue on macOS, %APPDATA%\palinimi\config.cue
// on Windows), then from ./config.cue. It holds the default syllable range, exclusions and
// filters for generation, the output format, and UI settings. Every key can be overridden
// from the environment with the PALINIMI_ prefix, e.g. PALINIMI_GENERATE_MAX_SYLLABLES=3.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config

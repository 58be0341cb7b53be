// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for palinimi.
//
// The root command generates words for a syllable range; subcommands check
// words against the phonotactics, list the syllable table, and manage the
// configuration file. Commands receive an App, the composition root holding
// the config provider and output streams.
package cmd

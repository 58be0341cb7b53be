// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The lexicon data and the configuration file are both CUE documents checked
// against an embedded schema. This package consolidates the parsing steps:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// # Usage
//
//	//go:embed lexicon_schema.cue
//	var schema []byte
//
//	result, err := cueutil.ParseAndDecode[lexiconData](
//	    schema,
//	    data,
//	    "#Lexicon",
//	    cueutil.WithFilename("lexicon.cue"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
//	return result.Value, nil
package cueutil

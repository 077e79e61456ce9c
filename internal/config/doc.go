// Package config provides configuration loading, merging, and validation
// facilities for passvault.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win over later non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON preferences file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]. [SavePreferences] writes the
// user-editable subset back to the preferences file.
package config

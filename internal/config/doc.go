// Package config collects the raw MESC sources: the MESC_* variables, an
// optional dotenv file and command-line flags.
//
// Sources are assembled in the following priority order (later sources
// override earlier non-empty fields):
//  1. dotenv file (--env-file)
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [Load] for an explicit environment map and
// [FromOS] for the process environment. The package only gathers strings;
// interpreting them is the job of the resolver.
package config

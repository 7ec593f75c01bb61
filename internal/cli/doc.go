// Package cli implements the mesc command-line tool.
//
// Every command resolves the configuration once in the root command's
// PersistentPreRunE and then talks to a service.QueryService. Tests inject a
// mock service through WithService and never touch the process environment.
package cli

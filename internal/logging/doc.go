// Package logger provides leveled logging for sevn CLI commands.
//
// The logger supports multiple verbosity levels controlled by the
// persistent --verbose and --debug flags. Output uses colored semantic
// prefixes.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown. Secret
// values are never logged at any level; log lines may name profiles and
// variable names, never their values.
//
// # Usage
//
// Commands create a logger in their PersistentPreRun:
//
//	log := logger.Logger{Verbose: verbose, Debug: debug}
//	log.Infof("profile %s updated", name)
package logger

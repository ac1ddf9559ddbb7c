// Package logger provides leveled logging for logshift CLI commands.
//
// Output verbosity is controlled by two flags shared by every command:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only errors and critical warnings are shown, which keeps
// the spinner output clean during normal runs.
//
// # Log methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown (critical warnings)
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Logs, then returns the error for propagation
//
// Commands create a logger in their PersistentPreRun from the flag values
// and pass it to workflow functions.
package logger

// Package output provides structured output handling for the pwademo CLI.
//
// Every command can print for a person or, with --json, for a program:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Serving web_server_folder"})
//	printer.Error(err)
//
// # JSON Mode
//
//	// Success: {"message": "...", ...}
//	// Error:   {"error": "message", "code": N}
//
// # Styling
//
// Human output is styled with lipgloss. Styles collapse to plain text when
// the writer is not a terminal, or when --color=never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: bad arguments, page rendered an error
//	output.ExitSystemError // 2: config unreadable, listener failed, I/O error
//
// Use NewUserError and NewSystemError to build errors carrying these codes.
package output

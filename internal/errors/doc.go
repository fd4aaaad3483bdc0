// Package errors provides error handling conventions for the skillsref CLI.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type that carries a process exit code and an optional user-facing
// suggestion, and re-exports the cockroachdb/errors wrapping helpers so the
// rest of the codebase depends on a single errors package.
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): user-related error (invalid input, failing skill)
//   - ExitSystem (2): system-related error (I/O, permissions, git)
//
// # ExitError
//
//	err := errors.NewUserError(errors.ErrValidationFailed, "Fix the reported fields")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors

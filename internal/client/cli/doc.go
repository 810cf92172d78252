// Package cli provides the interactive CredVault command-line client.
//
// It wires configuration, local storage, and the auth service into a small
// REPL. Typical flow: restore a persisted session, then execute user
// commands until exit.
//
// Key features:
//   - Register / Login / Logout
//   - whoami — show the current session
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package cli provides the interactive SocialHub command-line client.
//
// It wires configuration, local storage, the session and account stores,
// and an interactive REPL. Typical flow: restore the previous session,
// log in or sign up, manage social accounts, then view the dashboard.
//
// Key features:
//   - Signup / Login / Logout (mock authentication with simulated latency)
//   - Add / Edit / Delete / List social media accounts
//   - Dashboard report rendered with glamour
//   - SVG chart export per metric
//   - Avatar import from an image file
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

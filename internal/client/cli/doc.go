// Package cli provides the interactive BOD admin console.
//
// It wires configuration, local storage, the demo API gateway, the mock
// session and the page controllers behind a line-oriented REPL. Typical
// flow: restore the stored session or prompt for credentials, open the
// dashboard, then navigate the Users, Posts, Albums and Todos pages.
//
// Key features:
//   - Login / Logout against the built-in demo accounts
//   - Dashboard counters and completion rate
//   - List / Search / Show records as tables
//   - New / Edit / Delete records, toggle todo completion
//   - Notifications printed as they happen
//
// The console is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

// Package terminal provides a single-owner handle over a full-screen text-mode
// terminal session.
//
// Features:
//   - Guaranteed terminal restoration exactly once, on return or panic
//   - Panic capture with message recovery via Run
//   - Fixed 8x8 color pair encoding (ids 1-64, id 0 is the driver default)
//   - Curses-style cursor, scroll region, echo, keypad and input-wait control
//
// Only one Session may be live per process. The driver underneath is a
// process-wide resource; Initialize fails with ErrSessionActive rather than
// corrupting it.
package terminal

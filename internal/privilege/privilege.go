// Package privilege reports whether the process can change device state.
// Acquiring elevation is left to the launcher.
package privilege

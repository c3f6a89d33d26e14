package models

// DefaultBackend returns the device backend used when settings name none.
func DefaultBackend() string {
	return BackendPowerShell
}

//go:build !linux && !darwin && !windows

package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindUnsupported(t *testing.T) {
	l := NewListener(func() {})
	assert.ErrorIs(t, l.Bind("ctrl+alt+t"), ErrUnsupported)
	assert.Empty(t, l.Combo())
	l.Unbind()
}

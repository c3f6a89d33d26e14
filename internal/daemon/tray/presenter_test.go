package tray

import (
	"bytes"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetouch-io/onetouch/internal/models"
)

type fakeView struct {
	icons    int
	tooltips []string
	statuses []string
}

func (v *fakeView) SetIcon([]byte)         { v.icons++ }
func (v *fakeView) SetTooltip(text string) { v.tooltips = append(v.tooltips, text) }
func (v *fakeView) SetStatus(text string)  { v.statuses = append(v.statuses, text) }

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Show(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func TestRenderIsIdempotent(t *testing.T) {
	view := &fakeView{}
	notifier := &fakeNotifier{}
	p := NewPresenter(view, notifier)

	p.Render(models.DeviceEnabled)
	p.Render(models.DeviceEnabled)

	assert.Equal(t, 1, view.icons)
	assert.Equal(t, []string{"Touchscreen Enabled"}, view.statuses)
	assert.Empty(t, notifier.messages, "first render must not notify")

	p.Render(models.DeviceDisabled)
	p.Render(models.DeviceDisabled)

	assert.Equal(t, 2, view.icons)
	assert.Equal(t, []string{"OneTouch – Touchscreen Enabled", "OneTouch – Touchscreen Disabled"}, view.tooltips)
	assert.Equal(t, []string{"Touchscreen Disabled"}, notifier.messages)

	last, ok := p.Last()
	assert.True(t, ok)
	assert.Equal(t, models.DeviceDisabled, last)
}

func TestNotifyFailure(t *testing.T) {
	view := &fakeView{}
	notifier := &fakeNotifier{}
	p := NewPresenter(view, notifier)

	p.NotifyFailure("device not found or missing administrator rights")

	assert.Equal(t, []string{"Failed to toggle (device not found or missing administrator rights)"}, notifier.messages)
	assert.Zero(t, view.icons)
}

func TestPresenterWithoutNotifier(t *testing.T) {
	p := NewPresenter(LogView{}, nil)
	p.Render(models.DeviceEnabled)
	p.Render(models.DeviceDisabled)
	p.NotifyFailure("boom")
}

func TestIcons(t *testing.T) {
	for _, state := range []models.DeviceState{models.DeviceEnabled, models.DeviceDisabled, models.DeviceUnknown} {
		require.NotEmpty(t, Icon(state), state.String())
	}
	assert.NotEqual(t, Icon(models.DeviceEnabled), Icon(models.DeviceDisabled))
}

func TestEncodeIcon(t *testing.T) {
	img := drawDot(iconColors[models.DeviceEnabled])

	data, err := encodeIcon(img, false)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, iconSize, decoded.Bounds().Dx())

	// Corners are transparent, the center is filled.
	_, _, _, a := decoded.At(0, 0).RGBA()
	assert.Zero(t, a)
	_, _, _, a = decoded.At(iconSize/2, iconSize/2).RGBA()
	assert.NotZero(t, a)

	data, err = encodeIcon(img, true)
	require.NoError(t, err)
	require.Greater(t, len(data), 6)
	assert.Equal(t, []byte{0, 0, 1, 0}, data[:4], "ICO header")
}

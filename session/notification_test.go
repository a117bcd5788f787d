package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotification_HidesAfterDuration(t *testing.T) {
	n := NewNotification(30 * time.Millisecond)
	assert.False(t, n.Visible())
	assert.True(t, n.Deadline().IsZero())

	n.Trigger()
	assert.True(t, n.Visible())
	assert.False(t, n.Deadline().IsZero())

	assert.Eventually(t, func() bool { return !n.Visible() }, time.Second, 5*time.Millisecond)
	assert.True(t, n.Deadline().IsZero())
}

func TestNotification_DefaultDuration(t *testing.T) {
	n := NewNotification(0)
	assert.Equal(t, DefaultNotificationDuration, n.duration)
	assert.Equal(t, 2500*time.Millisecond, n.duration)
}

func TestNotification_StaleHideDoesNotHideLaterTrigger(t *testing.T) {
	n := NewNotification(time.Hour)
	n.Trigger()
	first := n.token

	n.Trigger()
	n.hide(first)

	assert.True(t, n.Visible(), "hide from the first trigger must not affect the second")

	n.hide(n.token)
	assert.False(t, n.Visible())
}

func TestNotification_StopCancelsPendingHide(t *testing.T) {
	n := NewNotification(time.Hour)
	n.Trigger()
	token := n.token

	n.Stop()
	assert.False(t, n.Visible())

	n.Trigger()
	n.hide(token)
	assert.True(t, n.Visible())
	n.Stop()
}

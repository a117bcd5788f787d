package session

import (
	"sync"
	"time"
)

// DefaultNotificationDuration is how long the success notification stays up.
const DefaultNotificationDuration = 2500 * time.Millisecond

// NotificationMessage is the text shown while the notification is visible.
const NotificationMessage = "You are Awesome!"

// Notification is a transient success signal. Every Trigger gets its own
// token and only the hide scheduled by the latest token may take effect.
type Notification struct {
	mu       sync.Mutex
	duration time.Duration
	visible  bool
	token    uint64
	deadline time.Time
	timer    *time.Timer
}

// NewNotification returns a hidden notification that stays visible for d
// after each trigger. A non-positive d uses DefaultNotificationDuration.
func NewNotification(d time.Duration) *Notification {
	if d <= 0 {
		d = DefaultNotificationDuration
	}
	return &Notification{duration: d}
}

// Trigger shows the notification and schedules it to hide.
func (n *Notification) Trigger() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.token++
	token := n.token
	n.visible = true
	n.deadline = time.Now().Add(n.duration)
	n.timer = time.AfterFunc(n.duration, func() { n.hide(token) })
}

func (n *Notification) hide(token uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if token != n.token {
		return
	}
	n.visible = false
	n.timer = nil
}

// Visible reports whether the notification is showing.
func (n *Notification) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

// Deadline is when the current notification hides. Zero when hidden.
func (n *Notification) Deadline() time.Time {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.visible {
		return time.Time{}
	}
	return n.deadline
}

// Stop cancels any pending hide and hides immediately.
func (n *Notification) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.token++
	n.visible = false
}

package client

import (
	"context"
	"log"
	"time"

	"skillswap/internal/client/session"
	"skillswap/internal/domain/notification"
)

const defaultPollInterval = 30 * time.Second

// Poller periodically pulls the caller's notifications and unread
// count. It runs until its context is cancelled; cancelling is the
// only way to stop it, so owners must tie the context to their own
// teardown.
type Poller struct {
	gw       Gateway
	session  *session.Session
	interval time.Duration
	onUpdate func(items []notification.Notification, unread int)
	logger   *log.Logger
}

// SetInterval overrides the default poll interval. Must be called
// before Run.
func (p *Poller) SetInterval(d time.Duration) {
	if d > 0 {
		p.interval = d
	}
}

// Run polls once immediately, then on every tick, and returns when ctx
// is cancelled. Unauthenticated ticks are skipped. Poll failures are
// logged and the previous state stands.
func (p *Poller) Run(ctx context.Context) {
	interval := p.interval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	token := p.session.Token()
	if token == "" {
		return
	}

	items, err := p.gw.ListNotifications(ctx, token)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("[Poller] notification poll failed | error=%v", err)
		}
		return
	}
	unread, err := p.gw.UnreadCount(ctx, token)
	if err != nil {
		if p.logger != nil {
			p.logger.Printf("[Poller] unread count failed | error=%v", err)
		}
		return
	}

	if p.onUpdate != nil {
		p.onUpdate(items, unread)
	}
}

// MarkAllRead clears the unread state remotely.
func (p *Poller) MarkAllRead(ctx context.Context) error {
	token := p.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	return p.gw.MarkAllRead(ctx, token)
}

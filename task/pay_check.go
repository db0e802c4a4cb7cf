package task

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	PayCheckInterval    = 650 * time.Millisecond
	PayCheckButtonLabel = "CHECKING PAYMENT…"
)

// PayCheckStatus "Checking payment.. (01:05)"
func PayCheckStatus(elapsed time.Duration, dots int) string {
	seconds := int(elapsed / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("Checking payment%s (%02d:%02d)", strings.Repeat(".", dots%4), seconds/60, seconds%60)
}

// PayCheckLoop 支付检查轮询
// TODO: 接入链上或服务商的到账确认后在此处结束轮询
type PayCheckLoop struct {
	Interval time.Duration
	Now      func() time.Time
	OnStart  func(buttonLabel string)
	OnTick   func(status string)
}

// Run 阻塞直到 ctx 取消，没有其他结束条件
func (l *PayCheckLoop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = PayCheckInterval
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}
	if l.OnStart != nil {
		l.OnStart(PayCheckButtonLabel)
	}

	started := now()
	dots := 0
	tick := func() {
		dots = (dots + 1) % 4
		if l.OnTick != nil {
			l.OnTick(PayCheckStatus(now().Sub(started), dots))
		}
	}

	tick()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick()
		}
	}
}

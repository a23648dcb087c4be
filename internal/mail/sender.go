package mail

import (
	"context"
	"time"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// HTMLメールを1通送る約束。
type Sender interface {
	SendEmail(ctx context.Context, to string, subject string, html string) (SendResult, error)
}

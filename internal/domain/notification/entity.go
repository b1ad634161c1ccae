package notification

import "time"

const (
	KindSwapProposed      = "swap_proposed"
	KindSwapStatusChanged = "swap_status_changed"
	KindSwapMessage       = "swap_message"
	KindApplication       = "project_application"
	KindApplicationReview = "application_reviewed"
)

type Notification struct {
	ID        int64
	UserID    int64
	Kind      string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}

func (n Notification) Read() bool {
	return n.ReadAt != nil
}

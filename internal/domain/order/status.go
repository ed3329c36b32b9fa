package order

import "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"

// Status labels the order lifecycle. Transitions are unguarded: any status
// may be set from any other through update.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// Statuses lists every known status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusCompleted, StatusCancelled}
}

func ParseStatus(raw string) (Status, error) {
	for _, s := range Statuses() {
		if raw == string(s) {
			return s, nil
		}
	}
	return "", apperr.ErrInvalidStatus
}

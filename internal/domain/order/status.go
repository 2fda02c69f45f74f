package order

import "github.com/go-faster/errors"

// Status enumerates the order lifecycle states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus converts a stored string into a Status, rejecting unknown
// values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", errors.Errorf("unknown order status: %q", s)
	}
}

// Valid reports whether the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

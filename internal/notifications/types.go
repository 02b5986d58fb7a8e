package notifications

import (
	"time"

	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// Notification records that an acknowledgement was issued for a
// submission. One row is written per accepted report, carrying the
// scenario's fixed message.
type Notification struct {
	ID        int64        `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Scenario  scenario.Key `json:"scenario"`
	Message   string       `json:"message"`
}

// Filter controls which notifications List returns. Zero-valued fields
// are ignored; Since/Until bound created_at inclusively.
type Filter struct {
	Scenario scenario.Key
	Since    time.Time
	Until    time.Time
}

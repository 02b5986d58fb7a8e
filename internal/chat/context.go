package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alertdeskhq/alertdesk/internal/notifications"
	"github.com/alertdeskhq/alertdesk/internal/report"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

const (
	// recentLimit bounds the recent-activity list in every snapshot.
	recentLimit = 10
	// messageMaxLen bounds each rendered notification message.
	messageMaxLen = 180
)

// Snapshot is the bounded grounding material for one conversational
// turn: the detected scenario (if any) and a deterministic text block
// summarising store state at assembly time.
type Snapshot struct {
	Scenario scenario.Key
	Detected bool
	Text     string
}

// Assembler builds context snapshots from the report and notification
// stores. It holds no state of its own.
type Assembler struct {
	reports *report.Store
	notifs  *notifications.Store
}

// NewAssembler creates an Assembler over the given stores.
func NewAssembler(reports *report.Store, notifs *notifications.Store) *Assembler {
	return &Assembler{reports: reports, notifs: notifs}
}

// BuildSnapshot assembles the grounding block for a user utterance.
// Totals always cover all scenarios regardless of detection; only the
// recent-activity list narrows to the detected scenario.
func (a *Assembler) BuildSnapshot(ctx context.Context, utterance string) (*Snapshot, error) {
	key, detected := scenario.Detect(utterance)

	dayStart, now := report.DayBounds(time.Now())

	var totals, today []string
	for _, sc := range scenario.All() {
		total, err := a.reports.Count(ctx, sc.Table, nil, nil)
		if err != nil {
			return nil, err
		}
		totals = append(totals, fmt.Sprintf("%s: %d", sc.Label, total))

		n, err := a.notifs.CountInRange(ctx, sc.Key, dayStart, now)
		if err != nil {
			return nil, err
		}
		today = append(today, fmt.Sprintf("%s: %d", sc.Label, n))
	}

	filter := notifications.Filter{}
	if detected {
		filter.Scenario = key
	}
	recent, err := a.notifs.List(ctx, filter, recentLimit)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Report totals: " + strings.Join(totals, " | ") + "\n")
	b.WriteString("Reported today: " + strings.Join(today, " | ") + "\n")
	b.WriteString("Recent notifications:\n")
	if len(recent) == 0 {
		// Explicit placeholder so the model can tell "no data exists"
		// apart from "no data fetched".
		b.WriteString("(none)\n")
	} else {
		for _, n := range recent {
			b.WriteString(fmt.Sprintf("- [%s] %s: %s\n",
				n.CreatedAt.UTC().Format(time.RFC3339),
				n.Scenario,
				normalizeMessage(n.Message),
			))
		}
	}

	return &Snapshot{Scenario: key, Detected: detected, Text: b.String()}, nil
}

// normalizeMessage collapses internal whitespace to single spaces and
// truncates to messageMaxLen runes.
func normalizeMessage(msg string) string {
	s := strings.Join(strings.Fields(msg), " ")
	if runes := []rune(s); len(runes) > messageMaxLen {
		s = string(runes[:messageMaxLen])
	}
	return s
}

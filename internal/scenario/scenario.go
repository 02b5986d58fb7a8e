// Package scenario holds the fixed registry of reportable incident
// scenarios and the keyword detector that scopes chat context to one
// of them.
package scenario

import "errors"

// ErrUnknown is returned by Lookup for a key outside the registry.
var ErrUnknown = errors.New("unknown scenario")

// Key identifies a registered scenario.
type Key string

const (
	PassportLost Key = "passport-lost"
	LongQueue    Key = "long-queue"
	TemperedID   Key = "tempered-id"
)

// Table names the report table a scenario writes to. Store APIs accept
// only this type, so a caller-supplied string can never reach SQL
// identifier position.
type Table string

// Scenario describes one registered incident category.
type Scenario struct {
	Key          Key    `json:"value"`
	Table        Table  `json:"-"`
	Label        string `json:"label"`
	FixedMessage string `json:"-"`
	ClearMessage string `json:"-"`
}

// registry is the single source of truth for tables, labels and fixed
// acknowledgement texts. Declaration order is the display order.
var registry = []Scenario{
	{
		Key:          PassportLost,
		Table:        "passport_lost_reports",
		Label:        "Lost Passport",
		FixedMessage: "Your lost passport report has been received. Please file a police report and visit the nearest civic office to begin reissuance.",
		ClearMessage: "All Lost Passport reports have been cleared.",
	},
	{
		Key:          LongQueue,
		Table:        "long_queue_reports",
		Label:        "Long Queue",
		FixedMessage: "Your long queue report has been received. Staff have been notified and additional counters will be opened where possible.",
		ClearMessage: "All Long Queue reports have been cleared.",
	},
	{
		Key:          TemperedID,
		Table:        "tempered_id_reports",
		Label:        "Tempered ID",
		FixedMessage: "Your tempered ID report has been received. The document has been flagged for inspection; please keep it available for verification.",
		ClearMessage: "All Tempered ID reports have been cleared.",
	},
}

var byKey = func() map[Key]Scenario {
	m := make(map[Key]Scenario, len(registry))
	for _, sc := range registry {
		m[sc.Key] = sc
	}
	return m
}()

// Lookup resolves a scenario key, returning ErrUnknown for anything
// outside the registry.
func Lookup(key string) (Scenario, error) {
	sc, ok := byKey[Key(key)]
	if !ok {
		return Scenario{}, ErrUnknown
	}
	return sc, nil
}

// All returns the registered scenarios in declaration order.
func All() []Scenario {
	out := make([]Scenario, len(registry))
	copy(out, registry)
	return out
}

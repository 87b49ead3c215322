package models

import (
	"database/sql/driver"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/errors"
	"time"
)

const ActivityKindFIR = "fir"

// Activity is an entry in the append-only timeline.
type Activity struct {
	ID        string    `db:"id"         json:"id"`
	Kind      string    `db:"kind"       json:"kind"`
	Title     string    `db:"title"      json:"title"`
	CaseID    string    `db:"case_id"    json:"caseId,omitempty"`
	Details   Details   `db:"details"    json:"details"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Details is free-form activity metadata stored as a JSON object.
type Details map[string]any

// Value implements driver.Valuer.
func (d Details) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, errors.Wrap(err, "marshal details")
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (d *Details) Scan(src any) error {
	*d = nil
	return scanJSON(src, d)
}

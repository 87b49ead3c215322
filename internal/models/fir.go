package models

import (
	"database/sql/driver"
	"encoding/json"
	"github.com/myrjola/smartcop/internal/errors"
	"github.com/myrjola/smartcop/internal/fields"
	"time"
)

type FIRStatus string

const (
	FIRStatusDraft FIRStatus = "draft"
	// FIRStatusSubmitted is terminal.
	FIRStatusSubmitted FIRStatus = "submitted"
)

// FIR is a persisted First Information Report.
//
// LocalData holds the values in the language they were given in and CanonicalData their English translations. Both
// always contain every registered field key.
type FIR struct {
	ID            int64       `db:"id"             json:"id"`
	CaseID        string      `db:"case_id"        json:"caseId"`
	Status        FIRStatus   `db:"status"         json:"status"`
	Language      string      `db:"language"       json:"language"`
	LocalData     FieldValues `db:"local_data"     json:"localData"`
	CanonicalData FieldValues `db:"canonical_data" json:"canonicalData"`
	CreatedAt     time.Time   `db:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time   `db:"updated_at"     json:"updatedAt"`
	SavedAt       time.Time   `db:"saved_at"       json:"savedAt"`
}

// Completed counts the fields with a value.
func (f *FIR) Completed() int {
	n := 0
	for _, v := range f.LocalData {
		if v != "" {
			n++
		}
	}
	return n
}

// FieldValues maps field keys to values. It's stored as a JSON object.
type FieldValues map[fields.Key]string

// Value implements driver.Valuer.
func (v FieldValues) Value() (driver.Value, error) {
	if v == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[fields.Key]string(v))
	if err != nil {
		return nil, errors.Wrap(err, "marshal field values")
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (v *FieldValues) Scan(src any) error {
	*v = nil
	return scanJSON(src, v)
}

func scanJSON(src any, dst any) error {
	var b []byte
	switch s := src.(type) {
	case string:
		b = []byte(s)
	case []byte:
		b = s
	case nil:
		b = []byte("{}")
	default:
		return errors.New("unsupported JSON column type")
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return errors.Wrap(err, "unmarshal JSON column")
	}
	return nil
}

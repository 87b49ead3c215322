// Package drafting runs guided FIR drafting sessions: it walks the officer through the form fields, extracts values
// from their utterances, keeps an English rendering of every value and persists the record.
package drafting

import (
	"github.com/myrjola/smartcop/internal/fields"
	"github.com/myrjola/smartcop/internal/models"
	"maps"
	"time"
)

// Record is an FIR being drafted.
//
// LocalData and CanonicalData always hold every registered field key. An empty value means not yet answered.
type Record struct {
	LocalData     map[fields.Key]string `json:"localData"`
	CanonicalData map[fields.Key]string `json:"canonicalData"`
	Locale        string                `json:"locale"`
	Status        models.FIRStatus      `json:"status"`
	CaseID        string                `json:"caseId,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func newRecord(keys []fields.Key, loc string, now time.Time) Record {
	local := make(map[fields.Key]string, len(keys))
	canonical := make(map[fields.Key]string, len(keys))
	for _, k := range keys {
		local[k] = ""
		canonical[k] = ""
	}
	return Record{
		LocalData:     local,
		CanonicalData: canonical,
		Locale:        loc,
		Status:        models.FIRStatusDraft,
		CaseID:        "",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r Record) clone() Record {
	r.LocalData = maps.Clone(r.LocalData)
	r.CanonicalData = maps.Clone(r.CanonicalData)
	return r
}

func (r Record) toFIR(status models.FIRStatus) *models.FIR {
	return &models.FIR{
		ID:            0,
		CaseID:        r.CaseID,
		Status:        status,
		Language:      r.Locale,
		LocalData:     maps.Clone(r.LocalData),
		CanonicalData: maps.Clone(r.CanonicalData),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		SavedAt:       time.Time{},
	}
}

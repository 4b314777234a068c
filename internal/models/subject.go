package models

import "time"

// Subject is one teachable subject with a bilingual display name. The table
// is seeded from the static catalog on first run and referenced by result
// marks.
type Subject struct {
	ID        string        `db:"id" json:"id"`
	Name      LocalizedText `db:"name" json:"name"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

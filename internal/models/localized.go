package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LocalizedText carries the English and Bengali variants of a user-facing
// string. Records store both; picking the active language is a presentation
// concern and never happens inside the API.
type LocalizedText struct {
	En string `json:"en"`
	Bn string `json:"bn"`
}

// Value serialises the pair for a JSONB column.
func (t LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan reads the pair back from a JSONB column.
func (t *LocalizedText) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	case nil:
		*t = LocalizedText{}
		return nil
	default:
		return fmt.Errorf("unsupported localized text source %T", src)
	}
}

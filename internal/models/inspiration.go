package models

// Verse is a Qur'anic verse with its translations and reference.
type Verse struct {
	Arabic    string `json:"arabic"`
	English   string `json:"english"`
	Bengali   string `json:"bengali"`
	Reference string `json:"reference"`
}

// Dua is a supplication with its translations.
type Dua struct {
	Arabic  string `json:"arabic"`
	English string `json:"english"`
	Bengali string `json:"bengali"`
}

// DailyInspiration is the verse and dua shown on the public home page.
// Produced by the external provider; a fixed fallback replaces it whenever
// the provider fails.
type DailyInspiration struct {
	Verse Verse `json:"verse"`
	Dua   Dua   `json:"dua"`
}

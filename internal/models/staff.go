package models

import "github.com/seogi1004/dental-al/internal/dateutil"

// Leave is one absence instance: the token text exactly as stored in the
// calendar sheet plus its normalized form.
type Leave struct {
	Original string          `json:"original"`
	Parsed   dateutil.Parsed `json:"parsed"`
}

// Off is one non-leave absence. Offs live in a flat append-only log keyed
// by (name, date) rather than in per-staff columns, and do not consume
// leave entitlement.
type Off struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	DateParsed string `json:"dateParsed"`
	Memo       string `json:"memo"`
}

// Staff is one employee record merged from the three sheet ranges. Name is
// the join key everywhere; the sheet enforces no referential integrity, so
// a typo in one range silently yields empty lists rather than an error.
type Staff struct {
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	JoinDate string  `json:"date"`
	Total    float64 `json:"total"`
	Used     float64 `json:"used"`
	Memo     string  `json:"memo"`
	Leaves   []Leave `json:"leaves"`
	Offs     []Off   `json:"offs"`
}

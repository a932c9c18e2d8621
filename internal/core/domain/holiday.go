package domain

import "time"

// HolidayKind distinguishes national holidays, which apply to every region,
// from regional ones keyed by (date, region).
type HolidayKind string

const (
	HolidayNational HolidayKind = "NATIONAL"
	HolidayRegional HolidayKind = "REGIONAL"
)

// Holiday is read-only reference data.
type Holiday struct {
	Date        time.Time   `json:"date"`
	Region      string      `json:"region"` // Empty for national holidays
	Description string      `json:"description"`
	Kind        HolidayKind `json:"kind"`
}

// Region is a federative unit (UF) reference row.
type Region struct {
	Code    string `json:"code"` // Two-letter UF code, primary key
	Numeric int    `json:"numeric"`
}

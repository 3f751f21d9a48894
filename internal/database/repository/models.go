package repository

import "time"

// QSO represents a logged contact. Date is kept in ADIF YYYYMMDD form, the
// same string the calendar dialog produces.
type QSO struct {
	ID        string
	Callsign  string
	Date      string
	TimeOn    string
	Band      string
	Mode      string
	RSTSent   string
	RSTRcvd   string
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

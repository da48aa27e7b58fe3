package domain

// Default values for draft construction
const (
	DefaultDailyHours = 1
	MinParticipants   = 1
	MinDailyHours     = 1
)

// Business validation constants
const (
	MaxParticipants       = 30
	MaxMedicalNotesLength = 500
	MaxNameLength         = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

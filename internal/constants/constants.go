package constants

// Priority represents the urgency of a recommendation
type Priority string

const (
	AppName           = "sleepbetter"
	DefaultConfigPath = "~/.config/sleepbetter/sleepbetter.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the standard wall-clock format used throughout the application (HH:MM)
	ClockFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "sleepbetter-"
	BackupFileSuffix = ".db"

	// Priority constants
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"

	// Default profile values
	DefaultTargetSleep  = 7.0  // hours/night, minimum recommended
	DefaultOptimalSleep = 8.0  // hours/night, optimal for recovery
	DefaultWakeTime     = 6.75 // 06:45 in decimal hours

	// Recovery parameters
	MaxRecoveryPerNight = 1.5 // hours of extra sleep per night
	OnsetBufferMinutes  = 15  // assumed sleep-onset latency
	DefaultPlanWeeks    = 3

	// Debt thresholds for display and warnings
	HighDebtThreshold  = 10.0 // hours; triggers recovery-protocol advice
	ShortSleepHours    = 6.0
	ElevatedDebtHours  = 7.0
	RecentWindowNights = 7
)

package backup

import "errors"

var (
	// ErrSchedule is returned for a cron expression that can not be parsed.
	ErrSchedule = errors.New("invalid backup schedule")

	// ErrSnapshot is returned when a document can not be copied into the backup dir.
	ErrSnapshot = errors.New("backup snapshot failed")
)

package model

// Timing is the scheduling clock snapshot for "today".
type Timing struct {
	// DaysElapsed is the number of day boundaries crossed since the
	// collection was created.
	DaysElapsed int

	// NextDayAt is the epoch second of the next day boundary.
	NextDayAt int64
}

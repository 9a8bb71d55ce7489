package validation

import "fmt"

// Bounds for workout and log payloads.
const (
	MaxWorkoutNameLen  = 100
	MaxDescriptionLen  = 500
	MaxExerciseNameLen = 100
	MaxExerciseNotes   = 500
	MaxLogNotesLen     = 1000
	MaxEntryNotesLen   = 500
	MaxCommentLen      = 1000
	MaxSets            = 100
	MaxReps            = 1000
)

// ValidateWorkoutName checks a workout name.
func ValidateWorkoutName(name string) error {
	if name == "" {
		return fmt.Errorf("workout name is required")
	}
	if len(name) > MaxWorkoutNameLen {
		return fmt.Errorf("workout name must not exceed %d characters", MaxWorkoutNameLen)
	}
	return nil
}

// ValidateDescription checks a workout description.
func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLen {
		return fmt.Errorf("description must not exceed %d characters", MaxDescriptionLen)
	}
	return nil
}

// ValidateExerciseName checks an exercise name.
func ValidateExerciseName(name string) error {
	if name == "" {
		return fmt.Errorf("exercise name is required")
	}
	if len(name) > MaxExerciseNameLen {
		return fmt.Errorf("exercise name must not exceed %d characters", MaxExerciseNameLen)
	}
	return nil
}

// ValidateCounts checks optional set/rep counts against their bounds.
// Nil means the field was not supplied.
func ValidateCounts(sets, reps *int) error {
	if sets != nil && (*sets < 0 || *sets > MaxSets) {
		return fmt.Errorf("sets must be between 0 and %d", MaxSets)
	}
	if reps != nil && (*reps < 0 || *reps > MaxReps) {
		return fmt.Errorf("reps must be between 0 and %d", MaxReps)
	}
	return nil
}

// ValidateNonNegative checks an optional numeric field that has no
// upper bound, such as weight or duration.
func ValidateNonNegative(field string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

// ValidateNonNegativeInt is ValidateNonNegative for integer fields.
func ValidateNonNegativeInt(field string, v *int) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}

package availability

// Business-hour bounds and minimum slot duration, in minutes from midnight.
const (
	EarliestStart   = 360  // 6:00 AM
	LatestEnd       = 1320 // 10:00 PM
	MinSlotDuration = 30
)

// ValidationError is a business-rule rejection. The message is surfaced to
// the user verbatim; no state is mutated on rejection.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ValidateSlot checks a proposed start/end pair ("HH:MM" each) against the
// ranges already present for the same date. Rules are checked in order and
// the first failure wins. Partial overlaps are allowed here; they are
// collapsed by MergeSlots on save.
func ValidateSlot(start, end string, existing []string) error {
	// Zero-padded "HH:MM" strings order lexicographically as times do.
	if start >= end {
		return NewValidationError("Start time must be before end time")
	}

	startMinutes, err := ToMinutes(start)
	if err != nil {
		return NewValidationError("Start time must be before end time")
	}
	endMinutes, err := ToMinutes(end)
	if err != nil {
		return NewValidationError("Start time must be before end time")
	}

	if endMinutes-startMinutes < MinSlotDuration {
		return NewValidationError("Time slot must be at least 30 minutes long")
	}

	candidate := start + "-" + end
	for _, slot := range existing {
		if slot == candidate {
			return NewValidationError("This exact time slot already exists")
		}
	}

	if startMinutes < EarliestStart {
		return NewValidationError("Start time cannot be before 6:00 AM")
	}
	if endMinutes > LatestEnd {
		return NewValidationError("End time cannot be after 10:00 PM")
	}

	return nil
}

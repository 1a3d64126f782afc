package model

// Status represents the lifecycle status of a gig.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusPending   Status = "Pending"
	StatusWorking   Status = "Working"
	StatusComplete  Status = "Complete"

	StatusPlanned   Status = "Planned"
	StatusConfirmed Status = "Confirmed"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// StatusProfile selects which closed set of statuses an instance uses.
type StatusProfile string

const (
	// ProfileSimple is the default Scheduled/Pending/Working/Complete set.
	ProfileSimple StatusProfile = "simple"
	// ProfileLifecycle is the Planned/Confirmed/Working/Completed/Cancelled set.
	ProfileLifecycle StatusProfile = "lifecycle"
)

// Statuses returns the closed status set for the profile.
func (p StatusProfile) Statuses() []Status {
	switch p {
	case ProfileLifecycle:
		return []Status{StatusPlanned, StatusConfirmed, StatusWorking, StatusCompleted, StatusCancelled}
	default:
		return []Status{StatusScheduled, StatusPending, StatusWorking, StatusComplete}
	}
}

// Contains reports whether s is a member of the profile's status set.
// The empty status is not a member; callers treat it as "unset".
func (p StatusProfile) Contains(s Status) bool {
	for _, v := range p.Statuses() {
		if v == s {
			return true
		}
	}
	return false
}

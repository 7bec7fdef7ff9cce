package domain

// EntityKind identifies one level of the Timeline -> Sprint -> Task -> Subtask
// hierarchy. Ids are unique per kind across the whole store.
type EntityKind string

const (
	KindTimeline EntityKind = "timeline"
	KindSprint   EntityKind = "sprint"
	KindTask     EntityKind = "task"
	KindSubtask  EntityKind = "subtask"
)

// AllKinds lists the hierarchy levels from the root down.
var AllKinds = []EntityKind{KindTimeline, KindSprint, KindTask, KindSubtask}

// treePrefix is the display prefix used by TreeID.
func (k EntityKind) treePrefix() string {
	switch k {
	case KindTimeline:
		return "TL"
	case KindSprint:
		return "SP"
	case KindTask:
		return "TK"
	case KindSubtask:
		return "ST"
	default:
		return "XX"
	}
}

// WorkStatus is the display label for a numeric status code.
type WorkStatus string

const (
	WorkStatusTodo       WorkStatus = "todo"
	WorkStatusInProgress WorkStatus = "in_progress"
	WorkStatusReview     WorkStatus = "review"
	WorkStatusDone       WorkStatus = "done"
	WorkStatusBlocked    WorkStatus = "blocked"
)

// DefaultWorkStatus is used for any status code outside the known range.
const DefaultWorkStatus = WorkStatusTodo

var workStatusByID = map[int]WorkStatus{
	1: WorkStatusTodo,
	2: WorkStatusInProgress,
	3: WorkStatusReview,
	4: WorkStatusDone,
	5: WorkStatusBlocked,
}

// StatusFromID maps a stored status code to its label.
func StatusFromID(id int) WorkStatus {
	if s, ok := workStatusByID[id]; ok {
		return s
	}
	return DefaultWorkStatus
}

// ID returns the numeric code for the status, or 0 for an unknown label.
func (s WorkStatus) ID() int {
	for id, label := range workStatusByID {
		if label == s {
			return id
		}
	}
	return 0
}

// Priority is the display label for a numeric priority code.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// DefaultPriority is used for any priority code outside the known range.
const DefaultPriority = PriorityMedium

var priorityByID = map[int]Priority{
	1: PriorityLow,
	2: PriorityMedium,
	3: PriorityHigh,
	4: PriorityCritical,
}

// PriorityFromID maps a stored priority code to its label.
func PriorityFromID(id int) Priority {
	if p, ok := priorityByID[id]; ok {
		return p
	}
	return DefaultPriority
}

// ID returns the numeric code for the priority, or 0 for an unknown label.
func (p Priority) ID() int {
	for id, label := range priorityByID {
		if label == p {
			return id
		}
	}
	return 0
}

// Create-time defaults for status and priority codes.
const (
	DefaultStatusID   = 1
	DefaultPriorityID = 2
)

package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TreeID derives the display identifier for an entity of the given kind,
// e.g. "SP-12". It is never stored.
func TreeID(kind EntityKind, id int) string {
	return fmt.Sprintf("%s-%d", kind.treePrefix(), id)
}

// ParseTreeID splits a display identifier such as "sp-12" into its kind and
// numeric id. The prefix is matched case-insensitively.
func ParseTreeID(s string) (EntityKind, int, bool) {
	prefix, num, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return "", 0, false
	}
	id, err := strconv.Atoi(num)
	if err != nil || id <= 0 || strings.HasPrefix(num, "+") {
		return "", 0, false
	}
	for _, k := range AllKinds {
		if strings.EqualFold(prefix, k.treePrefix()) {
			return k, id, true
		}
	}
	return "", 0, false
}

// Timeline is the root of one project's schedule.
type Timeline struct {
	ID          int
	ProjectID   int
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Sprints     []*Sprint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TreeID returns the display identifier, e.g. "TL-3".
func (t *Timeline) TreeID() string {
	return TreeID(KindTimeline, t.ID)
}

// Touch stamps UpdatedAt.
func (t *Timeline) Touch(now time.Time) {
	t.UpdatedAt = now
}

// Clone returns a deep copy of the timeline and its whole subtree.
func (t *Timeline) Clone() *Timeline {
	if t == nil {
		return nil
	}
	c := *t
	c.Sprints = make([]*Sprint, len(t.Sprints))
	for i, s := range t.Sprints {
		c.Sprints[i] = s.Clone()
	}
	return &c
}

// Counts returns the number of sprints, tasks and subtasks under the timeline.
func (t *Timeline) Counts() (sprints, tasks, subtasks int) {
	sprints = len(t.Sprints)
	for _, s := range t.Sprints {
		tasks += len(s.Tasks)
		for _, task := range s.Tasks {
			subtasks += len(task.Subtasks)
		}
	}
	return sprints, tasks, subtasks
}

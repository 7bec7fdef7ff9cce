package seed

import (
	"fmt"

	"github.com/alexanderramin/sprintline/internal/domain"
)

// Validate checks a snapshot before conversion and returns every problem
// found. Ids must be positive and unique per kind across the whole file, all
// dates must parse, and dependency ids must name tasks in the file.
// Unknown status/priority codes are allowed; they fall back on display.
func Validate(s *Snapshot) []error {
	v := &validator{seen: make(map[domain.EntityKind]map[int]bool)}

	deptIDs := make(map[int]bool, len(s.Departments))
	for i, d := range s.Departments {
		if d.ID <= 0 {
			v.errf("departments[%d].id must be positive", i)
		} else if deptIDs[d.ID] {
			v.errf("departments[%d].id %d is duplicated", i, d.ID)
		}
		deptIDs[d.ID] = true
	}

	memberIDs := make(map[int]bool, len(s.Members))
	for i, m := range s.Members {
		if m.ID <= 0 {
			v.errf("members[%d].id must be positive", i)
		} else if memberIDs[m.ID] {
			v.errf("members[%d].id %d is duplicated", i, m.ID)
		}
		if m.Username == "" {
			v.errf("members[%d].username is required", i)
		}
		memberIDs[m.ID] = true
	}

	var deps []taskDeps
	for i, tl := range s.Timelines {
		path := fmt.Sprintf("timelines[%d]", i)
		v.id(domain.KindTimeline, path, tl.ID)
		v.dates(path, tl.StartDate, tl.EndDate)

		for j, sp := range tl.Sprints {
			spPath := fmt.Sprintf("%s.sprints[%d]", path, j)
			v.id(domain.KindSprint, spPath, sp.ID)
			v.dates(spPath, sp.StartDate, sp.EndDate)
			v.ref(spPath+".department_id", sp.DepartmentID, deptIDs)

			for k, t := range sp.Tasks {
				tPath := fmt.Sprintf("%s.tasks[%d]", spPath, k)
				v.id(domain.KindTask, tPath, t.ID)
				v.dates(tPath, t.StartDate, t.EndDate)
				v.ref(tPath+".department_id", t.DepartmentID, deptIDs)
				v.ref(tPath+".assignee_id", t.AssigneeID, memberIDs)
				v.hours(tPath, t.EstimatedHours, t.ActualHours)
				deps = append(deps, taskDeps{path: tPath, id: t.ID, deps: t.Dependencies})

				for l, st := range t.Subtasks {
					stPath := fmt.Sprintf("%s.subtasks[%d]", tPath, l)
					v.id(domain.KindSubtask, stPath, st.ID)
					v.ref(stPath+".assignee_id", st.AssigneeID, memberIDs)
					v.hours(stPath, st.EstimatedHours, st.ActualHours)
				}
			}
		}
	}

	taskIDs := v.seen[domain.KindTask]
	for _, td := range deps {
		for _, dep := range td.deps {
			switch {
			case dep == td.id:
				v.errf("%s.dependencies: task %d depends on itself", td.path, td.id)
			case !taskIDs[dep]:
				v.errf("%s.dependencies: unknown task %d", td.path, dep)
			}
		}
	}

	return v.errs
}

type taskDeps struct {
	path string
	id   int
	deps []int
}

type validator struct {
	seen map[domain.EntityKind]map[int]bool
	errs []error
}

func (v *validator) errf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Errorf(format, args...))
}

func (v *validator) id(kind domain.EntityKind, path string, id int) {
	if id <= 0 {
		v.errf("%s.id must be positive, got %d", path, id)
		return
	}
	if v.seen[kind] == nil {
		v.seen[kind] = make(map[int]bool)
	}
	if v.seen[kind][id] {
		v.errf("%s.id: %s %d is duplicated", path, kind, id)
	}
	v.seen[kind][id] = true
}

func (v *validator) dates(path, start, end string) {
	fields := [...]struct{ name, value string }{{"start_date", start}, {"end_date", end}}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := domain.ParseDate(f.value); err != nil {
			v.errf("%s.%s: %v", path, f.name, err)
		}
	}
}

func (v *validator) ref(path string, id *int, known map[int]bool) {
	if id != nil && !known[*id] {
		v.errf("%s: unknown id %d", path, *id)
	}
}

func (v *validator) hours(path string, estimated, actual *float64) {
	if estimated != nil && *estimated < 0 {
		v.errf("%s.estimated_hours must be >= 0", path)
	}
	if actual != nil && *actual < 0 {
		v.errf("%s.actual_hours must be >= 0", path)
	}
}

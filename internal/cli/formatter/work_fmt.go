package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/service"
)

// FormatSprint renders a sprint card with its tasks.
func FormatSprint(sp *domain.Sprint) string {
	var b strings.Builder
	b.WriteString(Header(sp.TreeID()+" "+sp.Name) + "\n")
	b.WriteString(renderFields([][2]string{
		{"Timeline", domain.TreeID(domain.KindTimeline, sp.TimelineID)},
		{"Status", StatusPill(domain.StatusFromID(sp.StatusID))},
		{"Dates", FormatRange(sp.StartDate, sp.EndDate, sp.Duration)},
		{"Department", OptionalRef("dept", sp.DepartmentID)},
		{"Description", orDash(sp.Description)},
	}))
	if len(sp.Tasks) > 0 {
		rows := make([][]string, 0, len(sp.Tasks))
		for _, t := range sp.Tasks {
			rows = append(rows, []string{
				t.TreeID(),
				t.Name,
				StatusPill(domain.StatusFromID(t.StatusID)),
				PriorityBadge(domain.PriorityFromID(t.PriorityID)),
				RenderProgress(t.Progress, 10),
			})
		}
		b.WriteString("\n" + RenderTable([]string{"ID", "TASK", "STATUS", "PRIORITY", "PROGRESS"}, rows))
	}
	return b.String()
}

// FormatTask renders a task card with its subtasks.
func FormatTask(t *domain.Task) string {
	var b strings.Builder
	b.WriteString(Header(t.TreeID()+" "+t.Name) + "\n")
	b.WriteString(renderFields([][2]string{
		{"Sprint", domain.TreeID(domain.KindSprint, t.SprintID)},
		{"Status", StatusPill(domain.StatusFromID(t.StatusID))},
		{"Priority", PriorityBadge(domain.PriorityFromID(t.PriorityID))},
		{"Dates", FormatRange(t.StartDate, t.EndDate, t.Duration)},
		{"Department", OptionalRef("dept", t.DepartmentID)},
		{"Assignee", assignee(t.AssigneeID, t.AssigneeName)},
		{"Hours", fmt.Sprintf("%s of %s", FormatHours(t.ActualHours), FormatHours(t.EstimatedHours))},
		{"Progress", RenderProgress(t.Progress, 20)},
		{"Depends on", joinInts(t.Dependencies, domain.KindTask)},
		{"Description", orDash(t.Description)},
	}))
	if len(t.Subtasks) > 0 {
		rows := make([][]string, 0, len(t.Subtasks))
		for _, st := range t.Subtasks {
			rows = append(rows, []string{
				st.TreeID(),
				st.Name,
				StatusPill(domain.StatusFromID(st.StatusID)),
				assignee(st.AssigneeID, st.AssigneeName),
				FormatHours(st.EstimatedHours),
			})
		}
		b.WriteString("\n" + RenderTable([]string{"ID", "SUBTASK", "STATUS", "ASSIGNEE", "EST"}, rows))
	}
	return b.String()
}

// FormatSubtask renders a single subtask card.
func FormatSubtask(st *domain.Subtask) string {
	priority := Dim("--")
	if st.PriorityID != nil {
		priority = PriorityBadge(domain.PriorityFromID(*st.PriorityID))
	}
	return Header(st.TreeID()+" "+st.Name) + "\n" + renderFields([][2]string{
		{"Task", domain.TreeID(domain.KindTask, st.TaskID)},
		{"Status", StatusPill(domain.StatusFromID(st.StatusID))},
		{"Priority", priority},
		{"Department", OptionalRef("dept", st.DepartmentID)},
		{"Assignee", assignee(st.AssigneeID, st.AssigneeName)},
		{"Hours", fmt.Sprintf("%s of %s", FormatHours(st.ActualHours), FormatHours(st.EstimatedHours))},
		{"Description", orDash(st.Description)},
	})
}

func assignee(id *int, name string) string {
	switch {
	case name != "" && id != nil:
		return fmt.Sprintf("%s %s", name, Dim("#"+strconv.Itoa(*id)))
	case name != "":
		return name
	case id != nil:
		return "#" + strconv.Itoa(*id)
	default:
		return Dim("unassigned")
	}
}

// FormatDeleteResult summarizes what a delete removed. The counts in res
// include the deleted entity itself; only descendants are listed.
func FormatDeleteResult(res *service.DeleteResult) string {
	msg := fmt.Sprintf("Deleted %s", domain.TreeID(res.Kind, res.ID))
	var parts []string
	for _, c := range []struct {
		kind domain.EntityKind
		n    int
	}{
		{domain.KindSprint, res.Sprints},
		{domain.KindTask, res.Tasks},
		{domain.KindSubtask, res.Subtasks},
	} {
		n := c.n
		if c.kind == res.Kind {
			n--
		}
		if n > 0 {
			parts = append(parts, plural(n, string(c.kind)))
		}
	}
	if len(parts) > 0 {
		msg += " with " + strings.Join(parts, ", ")
	}
	if res.PrunedDependencies > 0 {
		msg += Dim(fmt.Sprintf(" (%s pruned)", plural(res.PrunedDependencies, "dependency reference")))
	}
	return Success(msg)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatDependencies renders both directions of a task's edges.
func FormatDependencies(set *service.DependencySet) string {
	return Header("Dependencies of "+domain.TreeID(domain.KindTask, set.TaskID)) + "\n" + renderFields([][2]string{
		{"Depends on", joinInts(set.DependsOn, domain.KindTask)},
		{"Blocks", joinInts(set.Dependents, domain.KindTask)},
	})
}

// FormatWorkItems renders search results.
func FormatWorkItems(items []domain.WorkItem) string {
	rows := make([][]string, 0, len(items))
	for _, w := range items {
		names := make([]string, len(w.Members))
		for i, m := range w.Members {
			names[i] = m.Username
		}
		rows = append(rows, []string{
			domain.TreeID(domain.KindTask, w.ID),
			Bold(w.Name),
			domain.TreeID(domain.KindSprint, w.SprintID),
			orDash(w.Department),
			StatusPill(w.Status),
			PriorityBadge(w.Priority),
			fmt.Sprintf("%.0f%%", w.Progress),
			orDash(strings.Join(names, ", ")),
		})
	}
	return RenderTable([]string{"ID", "TASK", "SPRINT", "DEPT", "STATUS", "PRIORITY", "PROGRESS", "MEMBERS"}, rows)
}

// FormatMembers renders roster search results.
func FormatMembers(members []domain.Member) string {
	rows := make([][]string, 0, len(members))
	for _, m := range members {
		rows = append(rows, []string{
			strconv.Itoa(m.ID),
			Bold(m.Username),
			m.IDNumber,
			m.FullName,
			orDash(m.Grade),
			orDash(m.Department),
		})
	}
	return RenderTable([]string{"ID", "USERNAME", "ID NUMBER", "NAME", "GRADE", "DEPARTMENT"}, rows)
}

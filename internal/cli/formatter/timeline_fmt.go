package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// FormatTimelineList renders one row per timeline.
func FormatTimelineList(timelines []*domain.Timeline) string {
	headers := []string{"ID", "NAME", "PROJECT", "START", "END", "SPRINTS", "TASKS"}
	rows := make([][]string, 0, len(timelines))
	for _, tl := range timelines {
		sprints, tasks, _ := tl.Counts()
		rows = append(rows, []string{
			tl.TreeID(),
			Bold(tl.Name),
			strconv.Itoa(tl.ProjectID),
			FormatDate(tl.StartDate),
			FormatDate(tl.EndDate),
			strconv.Itoa(sprints),
			strconv.Itoa(tasks),
		})
	}
	return RenderTable(headers, rows)
}

// FormatRollup renders each project's timelines with subtree counts and hours.
func FormatRollup(rollups []contract.ProjectRollup) string {
	var b strings.Builder
	for i, r := range rollups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(fmt.Sprintf("Project %d", r.ProjectID)) + "\n")
		rows := make([][]string, 0, len(r.Timelines))
		for _, s := range r.Timelines {
			rows = append(rows, []string{
				s.Timeline.TreeID(),
				Bold(s.Timeline.Name),
				strconv.Itoa(s.SprintCount),
				strconv.Itoa(s.TaskCount),
				strconv.Itoa(s.SubtaskCount),
				FormatHours(s.EstimatedHours),
				FormatHours(s.ActualHours),
			})
		}
		b.WriteString(RenderTable(
			[]string{"ID", "TIMELINE", "SPRINTS", "TASKS", "SUBTASKS", "EST", "ACTUAL"}, rows))
		b.WriteString(Dim(fmt.Sprintf("%d sprints, %d tasks", r.SprintCount, r.TaskCount)) + "\n")
	}
	return b.String()
}

// FormatTimeline renders a timeline's fields followed by its whole subtree.
func FormatTimeline(tl *domain.Timeline) string {
	var b strings.Builder
	b.WriteString(Header(tl.TreeID()+" "+tl.Name) + "\n")
	b.WriteString(renderFields([][2]string{
		{"Project", strconv.Itoa(tl.ProjectID)},
		{"Description", orDash(tl.Description)},
		{"Start", FormatDate(tl.StartDate)},
		{"End", FormatDate(tl.EndDate)},
	}))
	if len(tl.Sprints) > 0 {
		b.WriteString("\n" + RenderTree(TimelineTreeItems(tl)))
	}
	return b.String()
}

// TimelineTreeItems flattens the subtree under tl into tree lines in storage
// order. The timeline itself is not included.
func TimelineTreeItems(tl *domain.Timeline) []TreeItem {
	var items []TreeItem
	for i, sp := range tl.Sprints {
		items = append(items, TreeItem{
			Ref:    sp.TreeID(),
			Title:  Bold(sp.Name),
			Level:  1,
			IsLast: i == len(tl.Sprints)-1,
			Status: domain.StatusFromID(sp.StatusID),
			Detail: fmt.Sprintf("%s → %s", FormatDate(sp.StartDate), FormatDate(sp.EndDate)),
		})
		for j, t := range sp.Tasks {
			items = append(items, TreeItem{
				Ref:    t.TreeID(),
				Title:  t.Name,
				Level:  2,
				IsLast: j == len(sp.Tasks)-1,
				Status: domain.StatusFromID(t.StatusID),
				Detail: fmt.Sprintf("%s/%s", FormatHours(t.ActualHours), FormatHours(t.EstimatedHours)),
			})
			for k, st := range t.Subtasks {
				items = append(items, TreeItem{
					Ref:    st.TreeID(),
					Title:  st.Name,
					Level:  3,
					IsLast: k == len(t.Subtasks)-1,
					Status: domain.StatusFromID(st.StatusID),
				})
			}
		}
	}
	return items
}

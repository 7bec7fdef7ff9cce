package seed

// Snapshot is the top-level YAML structure of a seed file: the directories
// plus the nested timeline hierarchy.
type Snapshot struct {
	Departments []DepartmentSeed `yaml:"departments"`
	Members     []MemberSeed     `yaml:"members"`
	Timelines   []TimelineSeed   `yaml:"timelines"`
}

type DepartmentSeed struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type MemberSeed struct {
	ID         int    `yaml:"id"`
	Username   string `yaml:"username"`
	IDNumber   string `yaml:"id_number"`
	FullName   string `yaml:"full_name"`
	Grade      string `yaml:"grade"`
	Department string `yaml:"department"`
}

type TimelineSeed struct {
	ID          int          `yaml:"id"`
	ProjectID   int          `yaml:"project_id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	StartDate   string       `yaml:"start_date"`
	EndDate     string       `yaml:"end_date"`
	Sprints     []SprintSeed `yaml:"sprints,omitempty"`
}

type SprintSeed struct {
	ID           int        `yaml:"id"`
	Name         string     `yaml:"name"`
	Description  string     `yaml:"description,omitempty"`
	StartDate    string     `yaml:"start_date"`
	EndDate      string     `yaml:"end_date"`
	StatusID     *int       `yaml:"status_id,omitempty"`
	DepartmentID *int       `yaml:"department_id,omitempty"`
	Tasks        []TaskSeed `yaml:"tasks,omitempty"`
}

type TaskSeed struct {
	ID             int           `yaml:"id"`
	Name           string        `yaml:"name"`
	Description    string        `yaml:"description,omitempty"`
	StartDate      string        `yaml:"start_date"`
	EndDate        string        `yaml:"end_date"`
	StatusID       *int          `yaml:"status_id,omitempty"`
	PriorityID     *int          `yaml:"priority_id,omitempty"`
	DepartmentID   *int          `yaml:"department_id,omitempty"`
	AssigneeID     *int          `yaml:"assignee_id,omitempty"`
	AssigneeName   string        `yaml:"assignee_name,omitempty"`
	EstimatedHours *float64      `yaml:"estimated_hours,omitempty"`
	ActualHours    *float64      `yaml:"actual_hours,omitempty"`
	Progress       *float64      `yaml:"progress,omitempty"`
	Dependencies   []int         `yaml:"dependencies,omitempty"`
	Members        []int         `yaml:"members,omitempty"`
	Subtasks       []SubtaskSeed `yaml:"subtasks,omitempty"`
}

type SubtaskSeed struct {
	ID             int      `yaml:"id"`
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description,omitempty"`
	AssigneeID     *int     `yaml:"assignee_id,omitempty"`
	AssigneeName   string   `yaml:"assignee_name,omitempty"`
	StatusID       *int     `yaml:"status_id,omitempty"`
	PriorityID     *int     `yaml:"priority_id,omitempty"`
	DepartmentID   *int     `yaml:"department_id,omitempty"`
	EstimatedHours *float64 `yaml:"estimated_hours,omitempty"`
	ActualHours    *float64 `yaml:"actual_hours,omitempty"`
}

package service

import (
	"context"

	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/domain"
)

// All services return deep copies; mutating a returned entity never changes
// the store.

type TimelineService interface {
	List(ctx context.Context) ([]*domain.Timeline, error)
	ListByProjectID(ctx context.Context, projectID int) ([]*domain.Timeline, error)
	ListWithRollup(ctx context.Context) ([]contract.ProjectRollup, error)
	GetByID(ctx context.Context, id int) (*domain.Timeline, error)
	Create(ctx context.Context, req contract.CreateTimelineRequest) (*domain.Timeline, error)
	Update(ctx context.Context, id int, req contract.UpdateTimelineRequest) (*domain.Timeline, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type SprintService interface {
	Create(ctx context.Context, timelineID int, req contract.CreateSprintRequest) (*domain.Sprint, error)
	GetByID(ctx context.Context, id int) (*domain.Sprint, error)
	Update(ctx context.Context, id int, req contract.UpdateSprintRequest) (*domain.Sprint, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type TaskService interface {
	Create(ctx context.Context, sprintID int, req contract.CreateTaskRequest) (*domain.Task, error)
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	Update(ctx context.Context, id int, req contract.UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
	Move(ctx context.Context, taskID, targetSprintID int) (*domain.Task, error)
	AddDependency(ctx context.Context, taskID, dependsOnID int) error
	RemoveDependency(ctx context.Context, taskID, dependsOnID int) error
	ListDependencies(ctx context.Context, taskID int) (*DependencySet, error)
}

type SubtaskService interface {
	Create(ctx context.Context, taskID int, req contract.CreateSubtaskRequest) (*domain.Subtask, error)
	GetByID(ctx context.Context, id int) (*domain.Subtask, error)
	Update(ctx context.Context, id int, req contract.UpdateSubtaskRequest) (*domain.Subtask, error)
	Delete(ctx context.Context, id int) (*DeleteResult, error)
}

type SearchService interface {
	SearchMembers(ctx context.Context, query string) ([]domain.Member, error)
	SearchTasks(ctx context.Context, query string) ([]domain.WorkItem, error)
}

// DeleteResult reports what a delete removed. Descendants are always removed
// with their parent.
type DeleteResult struct {
	Kind               domain.EntityKind
	ID                 int
	Sprints            int
	Tasks              int
	Subtasks           int
	PrunedDependencies int
}

// DependencySet lists both directions of a task's dependency edges.
type DependencySet struct {
	TaskID     int
	DependsOn  []int
	Dependents []int
}

package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/sprintline/internal/domain"
)

// ErrNotFound is returned when a referenced id does not exist at any level.
var ErrNotFound = errors.New("not found")

// Repositories are tx-scoped: build them from the *db.Tree handed to a
// UnitOfWork callback and drop them when the callback returns. Returned
// pointers are live tree nodes; callers clone before letting them escape.

type TimelineRepo interface {
	Create(ctx context.Context, tl *domain.Timeline) error
	GetByID(ctx context.Context, id int) (*domain.Timeline, error)
	List(ctx context.Context) ([]*domain.Timeline, error)
	ListByProject(ctx context.Context, projectID int) ([]*domain.Timeline, error)
	Delete(ctx context.Context, id int) (*domain.Timeline, error)
}

type SprintRepo interface {
	Create(ctx context.Context, timelineID int, s *domain.Sprint) error
	GetByID(ctx context.Context, id int) (*domain.Sprint, error)
	Locate(ctx context.Context, id int) (*domain.Timeline, *domain.Sprint, error)
	Delete(ctx context.Context, id int) (*domain.Sprint, error)
}

type TaskRepo interface {
	Create(ctx context.Context, sprintID int, t *domain.Task) error
	GetByID(ctx context.Context, id int) (*domain.Task, error)
	Locate(ctx context.Context, id int) (*domain.Sprint, *domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Delete(ctx context.Context, id int) (*domain.Task, error)
}

type SubtaskRepo interface {
	Create(ctx context.Context, taskID int, st *domain.Subtask) error
	GetByID(ctx context.Context, id int) (*domain.Subtask, error)
	Locate(ctx context.Context, id int) (*domain.Task, *domain.Subtask, error)
	Delete(ctx context.Context, id int) (*domain.Subtask, error)
}

type DependencyRepo interface {
	Add(ctx context.Context, taskID, dependsOnID int) error
	Remove(ctx context.Context, taskID, dependsOnID int) error
	ListPredecessors(ctx context.Context, taskID int) ([]int, error)
	ListSuccessors(ctx context.Context, taskID int) ([]int, error)
	Prune(ctx context.Context, removed []int) int
}

type DirectoryRepo interface {
	Departments(ctx context.Context) (map[int]domain.Department, error)
	Members(ctx context.Context) ([]domain.Member, error)
	MembersByID(ctx context.Context) (map[int]domain.Member, error)
}

type SequenceRepo interface {
	NextID(ctx context.Context, kind domain.EntityKind) (int, error)
}

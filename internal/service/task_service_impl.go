package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/repository"
)

type taskService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Create appends a new task to the sprint. Dependencies are checked like
// AddDependency; missing scalar fields take the contract defaults.
func (s *taskService) Create(ctx context.Context, sprintID int, req contract.CreateTaskRequest) (out *domain.Task, err error) {
	fields := map[string]any{"sprint_id": sprintID}
	done := startUseCase(ctx, s.observer, "create-task", fields)
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		if _, err := repository.NewTreeSprintRepo(tx).GetByID(ctx, sprintID); err != nil {
			return err
		}
		id, err := repository.NewTreeSequenceRepo(tx).NextID(ctx, domain.KindTask)
		if err != nil {
			return err
		}
		ts := now()
		t := &domain.Task{
			ID:             id,
			Name:           domain.StrFromPtr(contract.DefaultName, req.Name),
			Description:    domain.StrFromPtr(contract.DefaultDescription, req.Description),
			StatusID:       domain.IntFromPtrWithDefault(contract.DefaultStatusID, req.StatusID),
			PriorityID:     domain.IntFromPtrWithDefault(contract.DefaultPriorityID, req.PriorityID),
			DepartmentID:   domain.CloneIntPtr(req.DepartmentID),
			AssigneeID:     domain.CloneIntPtr(req.AssigneeID),
			AssigneeName:   domain.StrFromPtr("", req.AssigneeName),
			EstimatedHours: domain.Float64FromPtrWithDefault(contract.DefaultEstimatedHours, req.EstimatedHours),
			ActualHours:    domain.Float64FromPtrWithDefault(contract.DefaultActualHours, req.ActualHours),
			Dependencies:   []int{},
			Members:        []int{},
			Subtasks:       []*domain.Subtask{},
			CreatedAt:      ts,
			UpdatedAt:      ts,
		}
		if req.Members != nil {
			t.Members = slices.Clone(req.Members)
		}
		t.Progress = domain.Float64FromPtrWithDefault(t.ComputedProgress(), req.Progress)
		t.SetDates(
			domain.TimeFromPtrWithDefault(ts, req.StartDate),
			domain.TimeFromPtrWithDefault(ts, req.EndDate),
		)
		if err := repository.NewTreeTaskRepo(tx).Create(ctx, sprintID, t); err != nil {
			return err
		}
		deps := repository.NewTreeDependencyRepo(tx)
		for _, depID := range req.Dependencies {
			if err := deps.Add(ctx, id, depID); err != nil {
				return err
			}
		}
		fields["task_id"] = id
		out = t.Clone()
		return nil
	})
	return out, err
}

func (s *taskService) GetByID(ctx context.Context, id int) (*domain.Task, error) {
	var out *domain.Task
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		t, err := repository.NewTreeTaskRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = t.Clone()
		return nil
	})
	return out, err
}

// Update shallow-merges req into the stored task. MoveDays shifts the stored
// dates and takes precedence over dates in the request. A supplied
// dependency list replaces the stored one and is checked edge by edge.
// Changing either hours field recomputes progress unless one is supplied.
func (s *taskService) Update(ctx context.Context, id int, req contract.UpdateTaskRequest) (out *domain.Task, err error) {
	fields := map[string]any{"task_id": id}
	if req.MoveDays != nil {
		fields["move_days"] = *req.MoveDays
	}
	done := startUseCase(ctx, s.observer, "update-task", fields)
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		t, err := repository.NewTreeTaskRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		t.Name = domain.StrFromPtr(t.Name, req.Name)
		t.Description = domain.StrFromPtr(t.Description, req.Description)
		t.StatusID = domain.IntFromPtrWithDefault(t.StatusID, req.StatusID)
		t.PriorityID = domain.IntFromPtrWithDefault(t.PriorityID, req.PriorityID)
		if req.DepartmentID != nil {
			t.DepartmentID = domain.CloneIntPtr(req.DepartmentID)
		}
		if req.AssigneeID != nil {
			t.AssigneeID = domain.CloneIntPtr(req.AssigneeID)
		}
		t.AssigneeName = domain.StrFromPtr(t.AssigneeName, req.AssigneeName)
		t.EstimatedHours = domain.Float64FromPtrWithDefault(t.EstimatedHours, req.EstimatedHours)
		t.ActualHours = domain.Float64FromPtrWithDefault(t.ActualHours, req.ActualHours)
		progress := t.Progress
		if req.HasHours() {
			progress = t.ComputedProgress()
		}
		t.Progress = domain.Float64FromPtrWithDefault(progress, req.Progress)
		if req.Members != nil {
			t.Members = slices.Clone(req.Members)
		}
		if req.HasDates() || req.MoveDays != nil {
			start, end := req.StartDate, req.EndDate
			if shiftedStart, shiftedEnd := shiftedDates(t.StartDate, t.EndDate, req.MoveDays); shiftedStart != nil {
				start, end = shiftedStart, shiftedEnd
			}
			t.SetDates(
				domain.TimeFromPtrWithDefault(t.StartDate, start),
				domain.TimeFromPtrWithDefault(t.EndDate, end),
			)
		}
		if req.Dependencies != nil {
			t.Dependencies = []int{}
			deps := repository.NewTreeDependencyRepo(tx)
			for _, depID := range req.Dependencies {
				if err := deps.Add(ctx, id, depID); err != nil {
					return err
				}
			}
		}
		t.Touch(now())
		out = t.Clone()
		return nil
	})
	return out, err
}

// Delete removes the task with its subtasks and prunes references to it from
// every remaining task's dependency list.
func (s *taskService) Delete(ctx context.Context, id int) (res *DeleteResult, err error) {
	fields := map[string]any{"task_id": id}
	done := startUseCase(ctx, s.observer, "delete-task", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		t, err := repository.NewTreeTaskRepo(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		res = &DeleteResult{
			Kind:     domain.KindTask,
			ID:       id,
			Tasks:    1,
			Subtasks: len(t.Subtasks),
		}
		res.PrunedDependencies = pruneDependencies(ctx, tx, []int{id})
		return nil
	})
	if res != nil {
		fields["pruned_dependencies"] = res.PrunedDependencies
	}
	return res, err
}

// Move relocates a task to another sprint, keeping its id and subtasks. Moving
// a task to the sprint it is already in returns it unchanged.
func (s *taskService) Move(ctx context.Context, taskID, targetSprintID int) (out *domain.Task, err error) {
	fields := map[string]any{"task_id": taskID, "target_sprint_id": targetSprintID}
	done := startUseCase(ctx, s.observer, "move-task", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		src, t, err := repository.NewTreeTaskRepo(tx).Locate(ctx, taskID)
		if err != nil {
			return err
		}
		_, dst, err := repository.NewTreeSprintRepo(tx).Locate(ctx, targetSprintID)
		if err != nil {
			return err
		}
		fields["source_sprint_id"] = src.ID
		if src.ID == dst.ID {
			fields["noop"] = true
			out = t.Clone()
			return nil
		}

		i := src.TaskIndex(taskID)
		if i < 0 {
			return fmt.Errorf("task %d missing from sprint %d", taskID, src.ID)
		}
		src.Tasks = slices.Delete(src.Tasks, i, i+1)
		t.SprintID = dst.ID
		dst.Tasks = append(dst.Tasks, t)

		ts := now()
		t.Touch(ts)
		src.Touch(ts)
		dst.Touch(ts)
		out = t.Clone()
		return nil
	})
	return out, err
}

func (s *taskService) AddDependency(ctx context.Context, taskID, dependsOnID int) (err error) {
	done := startUseCase(ctx, s.observer, "add-dependency", map[string]any{"task_id": taskID, "depends_on_id": dependsOnID})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		if err := repository.NewTreeDependencyRepo(tx).Add(ctx, taskID, dependsOnID); err != nil {
			return err
		}
		t, err := repository.NewTreeTaskRepo(tx).GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		t.Touch(now())
		return nil
	})
}

func (s *taskService) RemoveDependency(ctx context.Context, taskID, dependsOnID int) (err error) {
	done := startUseCase(ctx, s.observer, "remove-dependency", map[string]any{"task_id": taskID, "depends_on_id": dependsOnID})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		if err := repository.NewTreeDependencyRepo(tx).Remove(ctx, taskID, dependsOnID); err != nil {
			return err
		}
		t, err := repository.NewTreeTaskRepo(tx).GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		t.Touch(now())
		return nil
	})
}

func (s *taskService) ListDependencies(ctx context.Context, taskID int) (*DependencySet, error) {
	var out *DependencySet
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		deps := repository.NewTreeDependencyRepo(tx)
		preds, err := deps.ListPredecessors(ctx, taskID)
		if err != nil {
			return err
		}
		succs, err := deps.ListSuccessors(ctx, taskID)
		if err != nil {
			return err
		}
		out = &DependencySet{TaskID: taskID, DependsOn: preds, Dependents: succs}
		return nil
	})
	return out, err
}

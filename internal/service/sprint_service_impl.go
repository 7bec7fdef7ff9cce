package service

import (
	"context"

	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/repository"
)

type sprintService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSprintService(uow db.UnitOfWork, observers ...UseCaseObserver) SprintService {
	return &sprintService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Create appends a new sprint to the timeline. Missing fields take the
// contract defaults; both dates default to now.
func (s *sprintService) Create(ctx context.Context, timelineID int, req contract.CreateSprintRequest) (out *domain.Sprint, err error) {
	fields := map[string]any{"timeline_id": timelineID}
	done := startUseCase(ctx, s.observer, "create-sprint", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		// Check the parent first so a miss does not consume an id.
		if _, err := repository.NewTreeTimelineRepo(tx).GetByID(ctx, timelineID); err != nil {
			return err
		}
		id, err := repository.NewTreeSequenceRepo(tx).NextID(ctx, domain.KindSprint)
		if err != nil {
			return err
		}
		ts := now()
		sp := &domain.Sprint{
			ID:           id,
			Name:         domain.StrFromPtr(contract.DefaultName, req.Name),
			Description:  domain.StrFromPtr(contract.DefaultDescription, req.Description),
			StatusID:     domain.IntFromPtrWithDefault(contract.DefaultStatusID, req.StatusID),
			DepartmentID: domain.CloneIntPtr(req.DepartmentID),
			Tasks:        []*domain.Task{},
			CreatedAt:    ts,
			UpdatedAt:    ts,
		}
		sp.SetDates(
			domain.TimeFromPtrWithDefault(ts, req.StartDate),
			domain.TimeFromPtrWithDefault(ts, req.EndDate),
		)
		if err := repository.NewTreeSprintRepo(tx).Create(ctx, timelineID, sp); err != nil {
			return err
		}
		fields["sprint_id"] = id
		out = sp.Clone()
		return nil
	})
	return out, err
}

func (s *sprintService) GetByID(ctx context.Context, id int) (*domain.Sprint, error) {
	var out *domain.Sprint
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		sp, err := repository.NewTreeSprintRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = sp.Clone()
		return nil
	})
	return out, err
}

// Update shallow-merges req into the stored sprint. MoveDays shifts the
// stored dates and takes precedence over dates in the request.
func (s *sprintService) Update(ctx context.Context, id int, req contract.UpdateSprintRequest) (out *domain.Sprint, err error) {
	fields := map[string]any{"sprint_id": id}
	if req.MoveDays != nil {
		fields["move_days"] = *req.MoveDays
	}
	done := startUseCase(ctx, s.observer, "update-sprint", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		sp, err := repository.NewTreeSprintRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		sp.Name = domain.StrFromPtr(sp.Name, req.Name)
		sp.Description = domain.StrFromPtr(sp.Description, req.Description)
		sp.StatusID = domain.IntFromPtrWithDefault(sp.StatusID, req.StatusID)
		if req.DepartmentID != nil {
			sp.DepartmentID = domain.CloneIntPtr(req.DepartmentID)
		}
		if req.HasDates() || req.MoveDays != nil {
			start, end := req.StartDate, req.EndDate
			if shiftedStart, shiftedEnd := shiftedDates(sp.StartDate, sp.EndDate, req.MoveDays); shiftedStart != nil {
				start, end = shiftedStart, shiftedEnd
			}
			sp.SetDates(
				domain.TimeFromPtrWithDefault(sp.StartDate, start),
				domain.TimeFromPtrWithDefault(sp.EndDate, end),
			)
		}
		sp.Touch(now())
		out = sp.Clone()
		return nil
	})
	return out, err
}

// Delete removes the sprint from its timeline together with its tasks and
// subtasks, and prunes dependency references to the removed tasks.
func (s *sprintService) Delete(ctx context.Context, id int) (res *DeleteResult, err error) {
	fields := map[string]any{"sprint_id": id}
	done := startUseCase(ctx, s.observer, "delete-sprint", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		sp, err := repository.NewTreeSprintRepo(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		res = &DeleteResult{
			Kind:     domain.KindSprint,
			ID:       id,
			Sprints:  1,
			Tasks:    len(sp.Tasks),
			Subtasks: countSubtasks(sp.Tasks...),
		}
		res.PrunedDependencies = pruneDependencies(ctx, tx, taskIDsUnder(sp))
		return nil
	})
	if res != nil {
		fields["cascade_tasks"] = res.Tasks
		fields["pruned_dependencies"] = res.PrunedDependencies
	}
	return res, err
}

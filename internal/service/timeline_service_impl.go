package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/repository"
)

type timelineService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTimelineService(uow db.UnitOfWork, observers ...UseCaseObserver) TimelineService {
	return &timelineService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *timelineService) List(ctx context.Context) ([]*domain.Timeline, error) {
	var out []*domain.Timeline
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		tls, err := repository.NewTreeTimelineRepo(tx).List(ctx)
		if err != nil {
			return err
		}
		out = cloneTimelines(tls)
		return nil
	})
	return out, err
}

func (s *timelineService) ListByProjectID(ctx context.Context, projectID int) ([]*domain.Timeline, error) {
	var out []*domain.Timeline
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		tls, err := repository.NewTreeTimelineRepo(tx).ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		out = cloneTimelines(tls)
		return nil
	})
	return out, err
}

// ListWithRollup groups timelines per project, ordered by project id, with
// sprint/task/subtask counts for each timeline.
func (s *timelineService) ListWithRollup(ctx context.Context) ([]contract.ProjectRollup, error) {
	tls, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	byProject := make(map[int]*contract.ProjectRollup)
	for _, tl := range tls {
		r, ok := byProject[tl.ProjectID]
		if !ok {
			r = &contract.ProjectRollup{ProjectID: tl.ProjectID}
			byProject[tl.ProjectID] = r
		}
		summary := contract.NewTimelineSummary(tl)
		r.Timelines = append(r.Timelines, summary)
		r.SprintCount += summary.SprintCount
		r.TaskCount += summary.TaskCount
	}

	out := make([]contract.ProjectRollup, 0, len(byProject))
	for _, r := range byProject {
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b contract.ProjectRollup) int {
		return cmp.Compare(a.ProjectID, b.ProjectID)
	})
	return out, nil
}

func (s *timelineService) GetByID(ctx context.Context, id int) (*domain.Timeline, error) {
	var out *domain.Timeline
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		tl, err := repository.NewTreeTimelineRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = tl.Clone()
		return nil
	})
	return out, err
}

func (s *timelineService) Create(ctx context.Context, req contract.CreateTimelineRequest) (out *domain.Timeline, err error) {
	fields := map[string]any{"project_id": req.ProjectID}
	done := startUseCase(ctx, s.observer, "create-timeline", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		id, err := repository.NewTreeSequenceRepo(tx).NextID(ctx, domain.KindTimeline)
		if err != nil {
			return err
		}
		ts := now()
		tl := &domain.Timeline{
			ID:          id,
			ProjectID:   req.ProjectID,
			Name:        domain.StrFromPtr(contract.DefaultName, req.Name),
			Description: domain.StrFromPtr(contract.DefaultDescription, req.Description),
			StartDate:   domain.TimeFromPtrWithDefault(ts, req.StartDate),
			EndDate:     domain.TimeFromPtrWithDefault(ts, req.EndDate),
			Sprints:     []*domain.Sprint{},
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
		if err := repository.NewTreeTimelineRepo(tx).Create(ctx, tl); err != nil {
			return err
		}
		fields["timeline_id"] = id
		out = tl.Clone()
		return nil
	})
	return out, err
}

func (s *timelineService) Update(ctx context.Context, id int, req contract.UpdateTimelineRequest) (out *domain.Timeline, err error) {
	done := startUseCase(ctx, s.observer, "update-timeline", map[string]any{"timeline_id": id})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		tl, err := repository.NewTreeTimelineRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		tl.ProjectID = domain.IntFromPtrWithDefault(tl.ProjectID, req.ProjectID)
		tl.Name = domain.StrFromPtr(tl.Name, req.Name)
		tl.Description = domain.StrFromPtr(tl.Description, req.Description)
		tl.StartDate = domain.TimeFromPtrWithDefault(tl.StartDate, req.StartDate)
		tl.EndDate = domain.TimeFromPtrWithDefault(tl.EndDate, req.EndDate)
		tl.Touch(now())
		out = tl.Clone()
		return nil
	})
	return out, err
}

// Delete removes the timeline with its whole subtree and prunes dependency
// references to the removed tasks.
func (s *timelineService) Delete(ctx context.Context, id int) (res *DeleteResult, err error) {
	fields := map[string]any{"timeline_id": id}
	done := startUseCase(ctx, s.observer, "delete-timeline", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		tl, err := repository.NewTreeTimelineRepo(tx).Delete(ctx, id)
		if err != nil {
			return err
		}
		removed := taskIDsUnder(tl.Sprints...)
		res = &DeleteResult{Kind: domain.KindTimeline, ID: id}
		res.Sprints, res.Tasks, res.Subtasks = tl.Counts()
		res.PrunedDependencies = pruneDependencies(ctx, tx, removed)
		return nil
	})
	if res != nil {
		fields["cascade_tasks"] = res.Tasks
		fields["pruned_dependencies"] = res.PrunedDependencies
	}
	return res, err
}

func cloneTimelines(tls []*domain.Timeline) []*domain.Timeline {
	out := make([]*domain.Timeline, len(tls))
	for i, tl := range tls {
		out[i] = tl.Clone()
	}
	return out
}

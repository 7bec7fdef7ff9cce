package service

import (
	"context"

	"github.com/alexanderramin/sprintline/internal/contract"
	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/repository"
)

type subtaskService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSubtaskService(uow db.UnitOfWork, observers ...UseCaseObserver) SubtaskService {
	return &subtaskService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *subtaskService) Create(ctx context.Context, taskID int, req contract.CreateSubtaskRequest) (out *domain.Subtask, err error) {
	fields := map[string]any{"task_id": taskID}
	done := startUseCase(ctx, s.observer, "create-subtask", fields)
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		if _, err := repository.NewTreeTaskRepo(tx).GetByID(ctx, taskID); err != nil {
			return err
		}
		id, err := repository.NewTreeSequenceRepo(tx).NextID(ctx, domain.KindSubtask)
		if err != nil {
			return err
		}
		ts := now()
		st := &domain.Subtask{
			ID:             id,
			Name:           domain.StrFromPtr(contract.DefaultName, req.Name),
			Description:    domain.StrFromPtr(contract.DefaultDescription, req.Description),
			AssigneeID:     domain.CloneIntPtr(req.AssigneeID),
			AssigneeName:   domain.StrFromPtr("", req.AssigneeName),
			StatusID:       domain.IntFromPtrWithDefault(contract.DefaultStatusID, req.StatusID),
			PriorityID:     domain.CloneIntPtr(req.PriorityID),
			DepartmentID:   domain.CloneIntPtr(req.DepartmentID),
			EstimatedHours: domain.Float64FromPtrWithDefault(contract.DefaultEstimatedHours, req.EstimatedHours),
			ActualHours:    domain.Float64FromPtrWithDefault(contract.DefaultActualHours, req.ActualHours),
			CreatedAt:      ts,
			UpdatedAt:      ts,
		}
		if err := repository.NewTreeSubtaskRepo(tx).Create(ctx, taskID, st); err != nil {
			return err
		}
		fields["subtask_id"] = id
		out = st.Clone()
		return nil
	})
	return out, err
}

func (s *subtaskService) GetByID(ctx context.Context, id int) (*domain.Subtask, error) {
	var out *domain.Subtask
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		st, err := repository.NewTreeSubtaskRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		out = st.Clone()
		return nil
	})
	return out, err
}

func (s *subtaskService) Update(ctx context.Context, id int, req contract.UpdateSubtaskRequest) (out *domain.Subtask, err error) {
	done := startUseCase(ctx, s.observer, "update-subtask", map[string]any{"subtask_id": id})
	defer func() { done(err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		st, err := repository.NewTreeSubtaskRepo(tx).GetByID(ctx, id)
		if err != nil {
			return err
		}
		st.Name = domain.StrFromPtr(st.Name, req.Name)
		st.Description = domain.StrFromPtr(st.Description, req.Description)
		if req.AssigneeID != nil {
			st.AssigneeID = domain.CloneIntPtr(req.AssigneeID)
		}
		st.AssigneeName = domain.StrFromPtr(st.AssigneeName, req.AssigneeName)
		st.StatusID = domain.IntFromPtrWithDefault(st.StatusID, req.StatusID)
		if req.PriorityID != nil {
			st.PriorityID = domain.CloneIntPtr(req.PriorityID)
		}
		if req.DepartmentID != nil {
			st.DepartmentID = domain.CloneIntPtr(req.DepartmentID)
		}
		st.EstimatedHours = domain.Float64FromPtrWithDefault(st.EstimatedHours, req.EstimatedHours)
		st.ActualHours = domain.Float64FromPtrWithDefault(st.ActualHours, req.ActualHours)
		st.Touch(now())
		out = st.Clone()
		return nil
	})
	return out, err
}

func (s *subtaskService) Delete(ctx context.Context, id int) (res *DeleteResult, err error) {
	done := startUseCase(ctx, s.observer, "delete-subtask", map[string]any{"subtask_id": id})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx *db.Tree) error {
		if _, err := repository.NewTreeSubtaskRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		res = &DeleteResult{Kind: domain.KindSubtask, ID: id, Subtasks: 1}
		return nil
	})
	return res, err
}

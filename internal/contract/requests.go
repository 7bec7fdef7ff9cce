package contract

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintline/internal/domain"
)

// ErrInvalidRequest is returned by Validate for values no default can repair.
var ErrInvalidRequest = errors.New("invalid request")

// Defaults substituted for fields missing on create. Missing fields are never
// rejected; these are the documented fallbacks.
const (
	DefaultName           = ""
	DefaultDescription    = ""
	DefaultStatusID       = domain.DefaultStatusID
	DefaultPriorityID     = domain.DefaultPriorityID
	DefaultEstimatedHours = 0.0
	DefaultActualHours    = 0.0
)

// Ptr returns a pointer to v. Handy for building partial requests.
func Ptr[T any](v T) *T {
	return &v
}

type CreateTimelineRequest struct {
	ProjectID   int
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type UpdateTimelineRequest struct {
	ProjectID   *int
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type CreateSprintRequest struct {
	Name         *string
	Description  *string
	StartDate    *time.Time // defaults to now
	EndDate      *time.Time // defaults to now
	StatusID     *int
	DepartmentID *int
}

// UpdateSprintRequest carries only the fields to change. MoveDays shifts the
// stored dates and is never itself stored.
type UpdateSprintRequest struct {
	Name         *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	StatusID     *int
	DepartmentID *int
	MoveDays     *int
}

func (r UpdateSprintRequest) HasDates() bool {
	return r.StartDate != nil || r.EndDate != nil
}

type CreateTaskRequest struct {
	Name           *string
	Description    *string
	StartDate      *time.Time
	EndDate        *time.Time
	StatusID       *int
	PriorityID     *int
	DepartmentID   *int
	AssigneeID     *int
	AssigneeName   *string
	EstimatedHours *float64
	ActualHours    *float64
	Progress       *float64
	Dependencies   []int
	Members        []int
}

func (r CreateTaskRequest) Validate() error {
	if err := validateHours(r.EstimatedHours, r.ActualHours); err != nil {
		return err
	}
	return validateIDs("dependencies", r.Dependencies)
}

// UpdateTaskRequest carries only the fields to change. A nil slice leaves the
// stored list alone; a non-nil empty slice clears it. MoveDays shifts the
// stored dates and is never itself stored.
type UpdateTaskRequest struct {
	Name           *string
	Description    *string
	StartDate      *time.Time
	EndDate        *time.Time
	StatusID       *int
	PriorityID     *int
	DepartmentID   *int
	AssigneeID     *int
	AssigneeName   *string
	EstimatedHours *float64
	ActualHours    *float64
	Progress       *float64
	Dependencies   []int
	Members        []int
	MoveDays       *int
}

func (r UpdateTaskRequest) Validate() error {
	if err := validateHours(r.EstimatedHours, r.ActualHours); err != nil {
		return err
	}
	return validateIDs("dependencies", r.Dependencies)
}

func (r UpdateTaskRequest) HasDates() bool {
	return r.StartDate != nil || r.EndDate != nil
}

func (r UpdateTaskRequest) HasHours() bool {
	return r.EstimatedHours != nil || r.ActualHours != nil
}

type CreateSubtaskRequest struct {
	Name           *string
	Description    *string
	AssigneeID     *int
	AssigneeName   *string
	StatusID       *int
	PriorityID     *int
	DepartmentID   *int
	EstimatedHours *float64
	ActualHours    *float64
}

func (r CreateSubtaskRequest) Validate() error {
	return validateHours(r.EstimatedHours, r.ActualHours)
}

type UpdateSubtaskRequest struct {
	Name           *string
	Description    *string
	AssigneeID     *int
	AssigneeName   *string
	StatusID       *int
	PriorityID     *int
	DepartmentID   *int
	EstimatedHours *float64
	ActualHours    *float64
}

func (r UpdateSubtaskRequest) Validate() error {
	return validateHours(r.EstimatedHours, r.ActualHours)
}

func validateHours(estimated, actual *float64) error {
	if estimated != nil && *estimated < 0 {
		return fmt.Errorf("%w: estimated hours must be >= 0, got %v", ErrInvalidRequest, *estimated)
	}
	if actual != nil && *actual < 0 {
		return fmt.Errorf("%w: actual hours must be >= 0, got %v", ErrInvalidRequest, *actual)
	}
	return nil
}

func validateIDs(field string, ids []int) error {
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: %s contains invalid id %d", ErrInvalidRequest, field, id)
		}
	}
	return nil
}

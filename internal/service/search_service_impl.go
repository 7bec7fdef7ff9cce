package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/sprintline/internal/db"
	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/repository"
	"golang.org/x/text/cases"
)

type searchService struct {
	uow db.UnitOfWork
}

func NewSearchService(uow db.UnitOfWork) SearchService {
	return &searchService{uow: uow}
}

// SearchMembers matches the query against username, id number, full name,
// grade and department. A blank query returns the whole roster.
func (s *searchService) SearchMembers(ctx context.Context, query string) ([]domain.Member, error) {
	m := newFoldMatcher(query)
	var out []domain.Member
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		members, err := repository.NewTreeDirectoryRepo(tx).Members(ctx)
		if err != nil {
			return err
		}
		out = make([]domain.Member, 0, len(members))
		for _, mem := range members {
			if m.matches(mem.Username, mem.IDNumber, mem.FullName, mem.Grade, mem.Department) {
				out = append(out, mem)
			}
		}
		return nil
	})
	return out, err
}

// SearchTasks projects every task in the store to a WorkItem and matches the
// query against name, description, department name and the resolved
// members' full names and usernames. A blank query returns every task.
func (s *searchService) SearchTasks(ctx context.Context, query string) ([]domain.WorkItem, error) {
	m := newFoldMatcher(query)
	var out []domain.WorkItem
	err := s.uow.WithinRead(ctx, func(ctx context.Context, tx *db.Tree) error {
		dir := repository.NewTreeDirectoryRepo(tx)
		departments, err := dir.Departments(ctx)
		if err != nil {
			return err
		}
		members, err := dir.MembersByID(ctx)
		if err != nil {
			return err
		}
		tasks, err := repository.NewTreeTaskRepo(tx).List(ctx)
		if err != nil {
			return err
		}

		out = make([]domain.WorkItem, 0, len(tasks))
		for _, t := range tasks {
			w := domain.ProjectTask(t, departments, members)
			if m.matchesWorkItem(w) {
				out = append(out, w)
			}
		}
		return nil
	})
	return out, err
}

// foldMatcher does Unicode case-insensitive substring matching. A Caser is
// stateful, so each search builds its own.
type foldMatcher struct {
	caser  cases.Caser
	needle string
}

func newFoldMatcher(query string) *foldMatcher {
	m := &foldMatcher{caser: cases.Fold()}
	if q := strings.TrimSpace(query); q != "" {
		m.needle = m.caser.String(q)
	}
	return m
}

func (m *foldMatcher) matches(fields ...string) bool {
	if m.needle == "" {
		return true
	}
	for _, f := range fields {
		if f != "" && strings.Contains(m.caser.String(f), m.needle) {
			return true
		}
	}
	return false
}

func (m *foldMatcher) matchesWorkItem(w domain.WorkItem) bool {
	if m.matches(w.Name, w.Description, w.Department) {
		return true
	}
	for _, mem := range w.Members {
		if m.matches(mem.FullName, mem.Username) {
			return true
		}
	}
	return false
}

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/alexanderramin/sprintline/internal/service"
	"github.com/spf13/pflag"
)

// flagReader turns explicitly set flags into optional request fields. Flags
// the user did not pass come back nil so partial updates leave them alone.
// Parse errors accumulate and come back from err.
type flagReader struct {
	fs   *pflag.FlagSet
	now  func() time.Time
	errs []error
}

func newFlagReader(fs *pflag.FlagSet) *flagReader {
	return &flagReader{fs: fs, now: time.Now}
}

func (r *flagReader) err() error {
	return errors.Join(r.errs...)
}

func (r *flagReader) fail(name string, err error) {
	r.errs = append(r.errs, fmt.Errorf("--%s: %w", name, err))
}

func (r *flagReader) str(name string) *string {
	if !r.fs.Changed(name) {
		return nil
	}
	v, err := r.fs.GetString(name)
	if err != nil {
		r.fail(name, err)
		return nil
	}
	return &v
}

func (r *flagReader) integer(name string) *int {
	if !r.fs.Changed(name) {
		return nil
	}
	v, err := r.fs.GetInt(name)
	if err != nil {
		r.fail(name, err)
		return nil
	}
	return &v
}

func (r *flagReader) float(name string) *float64 {
	if !r.fs.Changed(name) {
		return nil
	}
	v, err := r.fs.GetFloat64(name)
	if err != nil {
		r.fail(name, err)
		return nil
	}
	return &v
}

func (r *flagReader) date(name string) *time.Time {
	s := r.str(name)
	if s == nil {
		return nil
	}
	t, err := parseDateFlag(*s, r.now())
	if err != nil {
		r.fail(name, err)
		return nil
	}
	return &t
}

// status accepts a label such as "in_progress" or a raw numeric code.
func (r *flagReader) status(name string) *int {
	s := r.str(name)
	if s == nil {
		return nil
	}
	if id := domain.WorkStatus(normalizeLabel(*s)).ID(); id != 0 {
		return &id
	}
	id, err := strconv.Atoi(*s)
	if err != nil {
		r.fail(name, fmt.Errorf("unknown status %q", *s))
		return nil
	}
	return &id
}

// priority accepts a label such as "high" or a raw numeric code.
func (r *flagReader) priority(name string) *int {
	s := r.str(name)
	if s == nil {
		return nil
	}
	if id := domain.Priority(normalizeLabel(*s)).ID(); id != 0 {
		return &id
	}
	id, err := strconv.Atoi(*s)
	if err != nil {
		r.fail(name, fmt.Errorf("unknown priority %q", *s))
		return nil
	}
	return &id
}

// refs parses a comma-separated list of ids or display ids of kind. A flag
// given with an empty value yields an empty, non-nil slice, which clears the
// stored list on update.
func (r *flagReader) refs(name string, kind domain.EntityKind) []int {
	return r.list(name, func(s string) (int, error) { return service.ParseRef(kind, s) })
}

// ids is refs for plain numeric ids such as member ids.
func (r *flagReader) ids(name string) []int {
	return r.list(name, service.ParseID)
}

func (r *flagReader) list(name string, parse func(string) (int, error)) []int {
	if !r.fs.Changed(name) {
		return nil
	}
	raw, err := r.fs.GetStringSlice(name)
	if err != nil {
		r.fail(name, err)
		return nil
	}
	ids := make([]int, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := parse(s)
		if err != nil {
			r.fail(name, err)
			return nil
		}
		ids = append(ids, id)
	}
	return ids
}

func normalizeLabel(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// addScheduleFlags registers the date flags shared by sprints and tasks.
func addScheduleFlags(fs *pflag.FlagSet) {
	fs.String("start", "", "Start date (YYYY-MM-DD, or e.g. \"next monday\")")
	fs.String("end", "", "End date (YYYY-MM-DD, or e.g. \"in 2 weeks\")")
}

func addNameFlags(fs *pflag.FlagSet) {
	fs.String("name", "", "Name")
	fs.String("description", "", "Description")
}

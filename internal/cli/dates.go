package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sprintline/internal/domain"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// parseDateFlag accepts YYYY-MM-DD or an English phrase such as "tomorrow"
// or "next friday", resolved against base. The result is a UTC calendar date.
func parseDateFlag(s string, base time.Time) (time.Time, error) {
	if t, err := domain.ParseDate(s); err == nil {
		return t, nil
	}
	r, err := dateParser.Parse(s, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or e.g. \"tomorrow\")", s)
	}
	y, m, d := r.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

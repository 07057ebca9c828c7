package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStatNotFound reports a leaderboard request for a statistic path that is
// not a row of the merged table. This signals a misconfigured category, not
// a data problem, so it carries its own sentinel.
var ErrStatNotFound = errors.New("statistic not found")

// UserNotFoundError reports a best/worst request for a blank or unknown
// player name. It carries the available players so the caller can report
// them; the run itself continues.
type UserNotFoundError struct {
	Username  string
	Available []string
}

func (e *UserNotFoundError) Error() string {
	if e.Username == "" {
		return "no username specified"
	}
	return fmt.Sprintf("user %q does not exist in the provided data (available: %s)",
		e.Username, strings.Join(e.Available, ", "))
}

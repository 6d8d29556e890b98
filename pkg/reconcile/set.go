package reconcile

import (
	"context"
	"strings"

	"github.com/agentstation/offboard/pkg/logging"
	"github.com/agentstation/offboard/pkg/roster"
	"github.com/agentstation/offboard/pkg/tabular"
)

// TerminationSet is the set of lowercase work emails confirmed terminated by
// the HR feed. It is immutable once built.
type TerminationSet map[string]struct{}

// Contains reports whether the lowercase form of email is in the set.
func (s TerminationSet) Contains(email string) bool {
	_, ok := s[strings.ToLower(email)]
	return ok
}

// Len returns the number of distinct emails in the set.
func (s TerminationSet) Len() int {
	return len(s)
}

// BuildTerminationSet filters the normalized termination feed to rows whose
// employment status equals roster.StatusTerminated exactly, lowercases their
// work emails, and collects them into a set. Duplicates collapse silently
// and blank emails are dropped; an empty set is valid and simply yields zero
// candidates downstream. The feed missing either column is a schema error.
func BuildTerminationSet(ctx context.Context, feed *tabular.Table) (TerminationSet, error) {
	statuses, err := feed.Column(roster.ColEmploymentStatus)
	if err != nil {
		return nil, err
	}
	emails, err := feed.Column(roster.ColWorkEmail)
	if err != nil {
		return nil, err
	}

	set := make(TerminationSet)
	for i, status := range statuses {
		if status != roster.StatusTerminated {
			continue
		}
		email := strings.ToLower(emails[i])
		if email == "" {
			continue
		}
		set[email] = struct{}{}
	}

	logging.FromContext(ctx).Debug().
		Int("feed_rows", feed.Len()).
		Int("terminated", set.Len()).
		Msg("Built termination set")
	return set, nil
}

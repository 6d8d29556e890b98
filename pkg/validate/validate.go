// Package validate applies the acceptance rules that gate the output file.
//
// The rules run in a fixed order and stop at the first violation, so the
// reported reason always names the earliest failing rule. Validation never
// mutates its inputs and never lets an internal failure escape: anything a
// rule cannot handle is folded into a generic validation error.
package validate

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/agentstation/offboard/pkg/errors"
	"github.com/agentstation/offboard/pkg/logging"
	"github.com/agentstation/offboard/pkg/reconcile"
	"github.com/agentstation/offboard/pkg/roster"
	"github.com/agentstation/offboard/pkg/tabular"
)

// Rule names, in evaluation order.
const (
	RuleDuplicateEmails    = "duplicate_emails"
	RuleAlreadyInactive    = "already_inactive"
	RuleNotInTerminations  = "not_in_terminations"
	RuleMissingColumns     = "missing_columns"
	RuleStatusCorrectness  = "status_correctness"
	RuleNullCriticalFields = "null_critical_fields"
)

// Input bundles the tables and set the rules inspect.
type Input struct {
	// Output is the candidate output table.
	Output *tabular.Table

	// Roster is the normalized roster the candidates came from.
	Roster *tabular.Table

	// Terminated is the termination set the candidates were matched
	// against.
	Terminated reconcile.TerminationSet
}

// rule pairs a stable name with its predicate. A predicate returns a
// *errors.ValidationError to report a violation; any other error counts as
// an unexpected failure.
type rule struct {
	name  string
	check func(in *Input) error
}

// rules in evaluation order; the first violation wins.
var rules = []rule{
	{RuleDuplicateEmails, noDuplicateEmails},
	{RuleAlreadyInactive, noPreviouslyInactive},
	{RuleNotInTerminations, subsetOfTerminations},
	{RuleMissingColumns, schemaComplete},
	{RuleStatusCorrectness, statusForcedInactive},
	{RuleNullCriticalFields, noEmptyCriticalFields},
}

// Validate applies the acceptance rules to the candidate output in fixed
// order and stops at the first violation. An unexpected failure inside a
// rule, such as a column lookup on a table that lost the column, is
// reported as a generic validation error instead of propagating.
func Validate(ctx context.Context, in *Input) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &errors.ValidationError{
				Message: fmt.Sprintf("unexpected error during validation: %v", rec),
			}
		}
	}()

	log := logging.FromContext(ctx)
	for _, r := range rules {
		if err := r.check(in); err != nil {
			var verr *errors.ValidationError
			if !stderrors.As(err, &verr) {
				return &errors.ValidationError{
					Message: fmt.Sprintf("unexpected error during validation: %v", err),
				}
			}
			return verr
		}
		log.Debug().Str("rule", r.name).Msg("Validation rule passed")
	}
	return nil
}

// noDuplicateEmails requires the output email column to hold no repeated
// value. Values compare as stored, so two emails differing only in case
// pass this rule.
func noDuplicateEmails(in *Input) error {
	emails, err := in.Output.Column(roster.ColEmail)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(emails))
	dups := make(map[string]struct{})
	for _, email := range emails {
		if _, ok := seen[email]; ok {
			dups[email] = struct{}{}
			continue
		}
		seen[email] = struct{}{}
	}

	if len(dups) > 0 {
		return errors.NewValidationError(RuleDuplicateEmails,
			"output contains duplicate emails", keys(dups)...)
	}
	return nil
}

// noPreviouslyInactive forbids output emails that belong to roster rows
// already marked inactive. Both sides compare lowercase.
func noPreviouslyInactive(in *Input) error {
	outEmails, err := in.Output.Column(roster.ColEmail)
	if err != nil {
		return err
	}
	rosterEmails, err := in.Roster.Column(roster.ColEmail)
	if err != nil {
		return err
	}
	rosterActive, err := in.Roster.Column(roster.ColActive)
	if err != nil {
		return err
	}

	inactive := make(map[string]struct{})
	for i, active := range rosterActive {
		if strings.ToUpper(active) == roster.StatusInactive {
			inactive[strings.ToLower(rosterEmails[i])] = struct{}{}
		}
	}

	overlap := make(map[string]struct{})
	for _, email := range outEmails {
		lower := strings.ToLower(email)
		if _, ok := inactive[lower]; ok {
			overlap[lower] = struct{}{}
		}
	}

	if len(overlap) > 0 {
		return errors.NewValidationError(RuleAlreadyInactive,
			"output contains users already inactive in the roster", keys(overlap)...)
	}
	return nil
}

// subsetOfTerminations requires every lowercase output email to belong to
// the termination set.
func subsetOfTerminations(in *Input) error {
	outEmails, err := in.Output.Column(roster.ColEmail)
	if err != nil {
		return err
	}

	missing := make(map[string]struct{})
	for _, email := range outEmails {
		if !in.Terminated.Contains(email) {
			missing[strings.ToLower(email)] = struct{}{}
		}
	}

	if len(missing) > 0 {
		return errors.NewValidationError(RuleNotInTerminations,
			"output contains users not in the termination feed", keys(missing)...)
	}
	return nil
}

// schemaComplete requires all output columns to be present. This is a
// structural check, independent of row values.
func schemaComplete(in *Input) error {
	var missing []string
	for _, col := range roster.OutputColumns {
		if !in.Output.HasColumn(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return errors.NewValidationError(RuleMissingColumns,
			fmt.Sprintf("output is missing required columns: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// statusForcedInactive requires every row's active field to equal the exact
// literal, not merely case-insensitively.
func statusForcedInactive(in *Input) error {
	actives, err := in.Output.Column(roster.ColActive)
	if err != nil {
		return err
	}

	for _, active := range actives {
		if active != roster.StatusInactive {
			return errors.NewValidationError(RuleStatusCorrectness,
				fmt.Sprintf("some rows do not have %q in the active field", roster.StatusInactive))
		}
	}
	return nil
}

// noEmptyCriticalFields forbids empty values in the critical fields,
// reporting the first offending field.
func noEmptyCriticalFields(in *Input) error {
	for _, col := range roster.CriticalColumns {
		values, err := in.Output.Column(col)
		if err != nil {
			return err
		}
		for _, v := range values {
			if v == "" {
				return errors.NewValidationError(RuleNullCriticalFields,
					fmt.Sprintf("null values in critical field: %s", col))
			}
		}
	}
	return nil
}

// keys returns the map's keys as a slice, in no particular order.
func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

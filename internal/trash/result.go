package trash

import (
	"errors"
	"fmt"

	"github.com/babarot/trashcan/internal/trash/core"
)

// Move records one entry that was moved
type Move struct {
	From string
	To   string
}

// Failure records one entry that could not be processed
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Result reports what a batch did. Partial success is a valid terminal
// state: entries in Moved/Removed are not rolled back when a later one fails.
type Result struct {
	Op core.Op

	// Moved lists successful moves in order (trash-in and restore)
	Moved []Move

	// Removed lists permanently deleted paths in order (purge and empty)
	Removed []string

	// Skipped lists entries that failed without stopping the batch
	Skipped []Failure

	// Failed is the entry that stopped the batch, if any
	Failed *Failure

	// Pending lists entries never attempted because the batch stopped
	Pending []string

	// Declined is true when the confirmation was answered "no"
	Declined bool
}

func newResult(op core.Op) *Result {
	return &Result{Op: op}
}

// OK reports whether every entry of the batch was processed
func (r *Result) OK() bool {
	return r.Failed == nil && len(r.Skipped) == 0 && !r.Declined
}

// Err joins every per-file error of the batch, or returns nil
func (r *Result) Err() error {
	var errs []error
	for _, s := range r.Skipped {
		errs = append(errs, s)
	}
	if r.Failed != nil {
		errs = append(errs, *r.Failed)
		if n := len(r.Pending); n > 0 {
			errs = append(errs, fmt.Errorf("%d remaining item(s) not processed", n))
		}
	}
	return errors.Join(errs...)
}


// Package levelorder provides tunable options, error definitions, and the
// Result type for level-order traversal over a *tree.Node.
package levelorder

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("levelorder: invalid option supplied")

// Strategy selects how LevelOrder enumerates levels.
//
//   - RescanPerLevel — for each level 1..h, re-walk the tree from the
//     root collecting values at exactly that depth. No auxiliary queue;
//     O(n·h) total time. The classic textbook formulation.
//
//   - QueueScan — one FIFO pass over the whole tree, grouping values by
//     level as they are dequeued. O(n) total time, O(width) queue.
//
// Both strategies produce identical Results for the same tree.
type Strategy int

const (
	// RescanPerLevel mode: recursive per-level descent, no queue, O(n·h) time.
	RescanPerLevel Strategy = iota

	// QueueScan mode: explicit FIFO breadth-first pass, O(n) time.
	QueueScan
)

// Option configures LevelOrder behavior via functional arguments.
// If an Option is invalid (e.g. negative MaxLevel), it is recorded
// internally and surfaced as ErrOptionViolation when LevelOrder runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize traversal.
type Options struct {
	// Strategy picks RescanPerLevel or QueueScan.
	Strategy Strategy

	// MaxLevel, if > 0, stops emitting beyond this level.
	// A value of 0 explicitly disables any limit.
	MaxLevel int

	// OnVisit is called for each value as it is emitted, with its level.
	// If it returns an error, the traversal aborts and propagates it.
	OnVisit func(v int64, level int) error

	// OnLevel is called after each level's values are complete.
	// If it returns an error, the traversal aborts and propagates it.
	OnLevel func(level int, values []int64) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - RescanPerLevel strategy
//   - no level limit (MaxLevel == 0)
//   - no-op hooks (OnVisit, OnLevel)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Strategy: RescanPerLevel,
		MaxLevel: 0,
		OnVisit:  func(int64, int) error { return nil },
		OnLevel:  func(int, []int64) error { return nil },
		err:      nil,
	}
}

// WithStrategy selects the traversal strategy.
// An unknown Strategy value is invalid → ErrOptionViolation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case RescanPerLevel, QueueScan:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown Strategy (%d)", ErrOptionViolation, s)
		}
	}
}

// WithMaxLevel stops emission after the given level.
//
//	k > 0: emit only levels 1..k
//	k == 0: explicit no limit
//	k < 0: invalid option → ErrOptionViolation
func WithMaxLevel(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: MaxLevel cannot be negative (%d)", ErrOptionViolation, k)
		case k == 0:
			// explicit "no limit"
			o.MaxLevel = 0
		default:
			o.MaxLevel = k
		}
	}
}

// WithOnVisit registers a callback per emitted value; returning an error
// from this callback stops the traversal.
func WithOnVisit(fn func(v int64, level int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnLevel registers a callback per completed level; returning an
// error from this callback stops the traversal.
func WithOnLevel(fn func(level int, values []int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// Result holds the outcome of a level-order traversal:
//   - Height: the full tree height (nodes on the longest root-to-leaf
//     path), regardless of any MaxLevel truncation.
//   - Levels: one slice per emitted level, root first, values in
//     left-to-right order within each level.
type Result struct {
	Height int
	Levels [][]int64
}

// Fprint writes the traversal to w, one line per level, values
// space-separated in left-to-right order. An empty Result writes nothing.
func (r *Result) Fprint(w io.Writer) error {
	var line strings.Builder
	for _, level := range r.Levels {
		line.Reset()
		for i, v := range level {
			if i > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(strconv.FormatInt(v, 10))
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return fmt.Errorf("levelorder: print: %w", err)
		}
	}

	return nil
}

// String renders the traversal as Fprint does, without a trailing newline.
// An empty Result renders as "".
func (r *Result) String() string {
	var sb strings.Builder
	_ = r.Fprint(&sb) // strings.Builder never fails

	return strings.TrimSuffix(sb.String(), "\n")
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SemenBogdanov/remindbot2/internal/domain"
)

// Target is a wall-clock time of day the daily dispatch fires at.
type Target struct {
	Hour   int
	Minute int
}

var ErrBadTarget = errors.New("invalid fire time")

// ParseTargets parses "HH:MM" strings. Order is irrelevant and duplicates
// are tolerated, but an empty list is a configuration error.
func ParseTargets(items []string) ([]Target, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no fire times configured", ErrBadTarget)
	}
	targets := make([]Target, 0, len(items))
	for _, it := range items {
		t, err := parseHHMM(it)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}

func parseHHMM(s string) (Target, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Target{}, fmt.Errorf("%w: %q, expected HH:MM", ErrBadTarget, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Target{}, fmt.Errorf("%w: %q, bad hour", ErrBadTarget, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Target{}, fmt.Errorf("%w: %q, bad minute", ErrBadTarget, s)
	}
	return Target{Hour: h, Minute: m}, nil
}

// NextTarget returns the nearest occurrence of any target strictly after
// now: the minimal future target today, else the earliest target shifted
// to tomorrow. Recomputing this from the wall clock on every cycle is
// what makes the loop restart-safe.
func NextTarget(now time.Time, targets []Target) time.Time {
	var next time.Time
	for _, t := range targets {
		cand := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
		if !cand.After(now) {
			continue
		}
		if next.IsZero() || cand.Before(next) {
			next = cand
		}
	}
	if !next.IsZero() {
		return next
	}
	earliest := targets[0]
	for _, t := range targets[1:] {
		if t.Hour*60+t.Minute < earliest.Hour*60+earliest.Minute {
			earliest = t
		}
	}
	return time.Date(now.Year(), now.Month(), now.Day()+1, earliest.Hour, earliest.Minute, 0, 0, now.Location())
}

// Job is one dispatch entry point fired at every target.
type Job struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler sleeps until the next configured wall-clock target and runs
// the dispatch jobs in order. It keeps no cursor between cycles.
type Scheduler struct {
	log     *zap.Logger
	clock   domain.Clock
	targets []Target
	jobs    []Job
}

// New creates a Scheduler over the given targets and jobs.
func New(log *zap.Logger, clock domain.Clock, targets []Target, jobs []Job) *Scheduler {
	return &Scheduler{log: log, clock: clock, targets: targets, jobs: jobs}
}

// Run loops until ctx is canceled. A failed job is logged and never
// terminates the loop or skips the remaining jobs of the slot.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		now := s.clock.Now()
		next := NextTarget(now, s.targets)
		s.log.Info("scheduler waiting",
			zap.Time("next", next),
			zap.Duration("in", next.Sub(now)),
		)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info("scheduler stopping")
			return
		case <-timer.C:
		}

		for _, j := range s.jobs {
			if err := j.Run(ctx); err != nil {
				s.log.Error("dispatch failed", zap.String("job", j.Name), zap.Error(err))
			}
		}
	}
}

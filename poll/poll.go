// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poll provides a cooperative scheduler for recurring tasks,
// such as re-evaluating values that do not send change notifications.
// There are no goroutines: the host calls [Scheduler.Tick] from its
// frame loop and due tasks run synchronously within that call.
package poll

import (
	"slices"
	"time"
)

// Scheduler runs recurring [Task]s cooperatively.
// The zero value is ready to use.
type Scheduler struct {

	// Now returns the current time. It defaults to [time.Now],
	// and is mainly set in tests.
	Now func() time.Time

	tasks []*Task
}

// Task is a function that runs at a fixed interval until cancelled.
type Task struct {

	// Interval is the time between runs.
	Interval time.Duration

	// Func is the function to run.
	Func func()

	// Runs is the number of times the task has run.
	Runs int

	next      time.Time
	cancelled bool
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Every schedules f to run every d, starting d from now.
func (s *Scheduler) Every(d time.Duration, f func()) *Task {
	t := &Task{Interval: d, Func: f, next: s.now().Add(d)}
	s.tasks = append(s.tasks, t)
	return t
}

// Cancel stops the task. It is safe to call more than once,
// and from within the task itself.
func (t *Task) Cancel() {
	t.cancelled = true
}

// Cancelled returns whether the task has been cancelled.
func (t *Task) Cancelled() bool {
	return t.cancelled
}

// Tick runs every task that is due at the given time, and returns
// the number of tasks that ran. A task that is overdue by several
// intervals runs once and is rescheduled one interval after now.
func (s *Scheduler) Tick(now time.Time) int {
	n := 0
	for _, t := range slices.Clone(s.tasks) {
		if t.cancelled || now.Before(t.next) {
			continue
		}
		t.next = now.Add(t.Interval)
		t.Runs++
		n++
		t.Func()
	}
	s.tasks = slices.DeleteFunc(s.tasks, func(t *Task) bool { return t.cancelled })
	return n
}

// Len returns the number of scheduled tasks that have not been cancelled.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// CancelAll cancels every scheduled task.
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = nil
}

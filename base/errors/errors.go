// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error handling helpers,
// extending the standard library errors package with
// logging helpers built on [log/slog].
package errors

import (
	"errors"
	"log/slog"
	"sync"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

var (
	logged   = map[string]struct{}{}
	loggedMu sync.Mutex
)

// LogOnce logs the given warning message with the given attributes
// only the first time it is called for the given key, and reports
// whether it was logged. It is used for configuration diagnostics
// that would otherwise repeat on every update.
func LogOnce(key, msg string, args ...any) bool {
	loggedMu.Lock()
	_, has := logged[key]
	if !has {
		logged[key] = struct{}{}
	}
	loggedMu.Unlock()
	if has {
		return false
	}
	slog.Warn(msg, args...)
	return true
}

// ResetLogOnce forgets all keys recorded by [LogOnce].
func ResetLogOnce() {
	loggedMu.Lock()
	logged = map[string]struct{}{}
	loggedMu.Unlock()
}

// New is the same as the standard library [errors.New].
func New(text string) error { return errors.New(text) }

// Is is the same as the standard library [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is the same as the standard library [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is the same as the standard library [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

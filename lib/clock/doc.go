// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts the wall clock so that time-dependent UI
// behavior (double-click detection on the split divider) can be tested
// without sleeping.
//
// [Real] wraps time.Now. [Fake] returns a [FakeClock] that stands
// still until [FakeClock.Advance] or [FakeClock.Set] moves it.
package clock

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile holds the pure translation rules applied wherever data
// crosses between the device and the server: identifier normalization and the
// category code table.
//
// Every function is total and stateless, so it is safe to call from any
// goroutine.
package reconcile

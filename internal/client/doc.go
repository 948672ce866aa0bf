// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires local storage, the server adapter, the session provider, the
// sync services and the background workers (connectivity monitor,
// connectivity trigger and periodic pending sync) into a single process
// lifecycle, optionally fronted by the terminal dashboard.
package client

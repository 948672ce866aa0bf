// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser turns raw server response bodies into typed note and post
// values.
//
// The server is not consistent about response shapes: an entity may arrive
// as a flat object, wrapped under a field such as "note" or "data", or as
// the first element of an array, and lists may be bare arrays or wrapped
// under "notes", "posts", "data" or "results". The parser tries the shapes
// in a fixed order and reports [ErrParse] when none matches.
//
// The parser only reports what the body contains. Absent fields are left
// nil in [models.RemoteNote] and [models.RemotePost]; deciding what to do
// about them belongs to the synchronizers.
package parser

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "strings"

// Every list query orders by the explicit sort key first and falls back to
// newest-first creation time so the ordering stays deterministic when sort
// keys collide.
const (
	orderBySortKey   = "sort_order ASC"
	orderByCreatedAt = "created_at DESC"
)

// returning renders a RETURNING clause for the given column list. Both
// supported backends (SQLite and PostgreSQL) understand RETURNING, which lets
// every insert and update hand back the canonical stored row in one
// round-trip.
func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

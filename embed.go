// Package codescanner holds assets embedded into the binary.
package codescanner

import "embed"

// Migrations are the goose SQL migrations of the capture journal.
//
//go:embed migrations/*.sql
var Migrations embed.FS

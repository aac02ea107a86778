// Package data holds the persistence entities and the database schema.
package data

import _ "embed"

//go:embed schema.sql
var Schema string

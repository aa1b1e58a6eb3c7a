// Package postgres implements the store interfaces against PostgreSQL.
// The data-preparation pipeline writes normalized plant records into the
// plants table; this package only reads them.
package postgres

// Package models contains the database model definitions.
//
// The models describe the table layout for schema bootstrap and are the scan
// targets of the handlers' queries.
package models

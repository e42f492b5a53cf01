// Package uniuri generates random identifiers from a URL safe alphabet,
// used as per-request ids in the access log.
package uniuri

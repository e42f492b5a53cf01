// Package main provides the entry point of siteadmin.
//
// siteadmin is the data-access and authentication backend of a small
// content and portfolio website. It stores contact form messages, static
// pages, portfolio items and local user accounts in MySQL, PostgreSQL or
// SQLite and serves them through a JSON API built with fiber.
//
// Commands:
//
//	siteadmin start [--dev]          run the web service
//	siteadmin migrate [--all]        create the database tables
//	siteadmin user add ...           register an account
//	siteadmin config dump [--json]   print the configuration, secrets redacted
package main

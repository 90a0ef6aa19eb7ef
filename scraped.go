// Package scraped downloads websites and turns them into markdown.
// It crawls a site recursively within a depth bound and the start
// URL's domain, materializes each page's raw bytes under a local
// directory tree derived from its URL, and assembles the fetched
// pages into a single markdown document.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, sqlite/).
package scraped

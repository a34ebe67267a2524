package platform

// Package platform contains OS integration helpers: resolving the per-user
// data directory that holds the catalog database and filesystem plumbing.

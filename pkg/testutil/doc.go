// Package testutil provides helpers shared by expedition's tests: isolated
// XDG directories, fixture files and a few canned documents.
package testutil

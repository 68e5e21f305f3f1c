// Package testutil holds helpers shared by the package tests: a thread-safe
// output buffer, a fake process runner, and a helper that lays out shader
// source trees on disk.
package testutil

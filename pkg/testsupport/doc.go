// Package testsupport holds fixtures, golden-file helpers, and HTML query
// helpers shared by the package tests. Goldens are rewritten when the
// UPDATE_GOLDENS environment variable is set.
package testsupport

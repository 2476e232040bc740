// Package crosscheck holds tests that replay positions and games through
// both the engine and github.com/notnil/chess and compare the legal moves,
// SAN and game status each side reports.
package crosscheck

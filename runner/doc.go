// Package runner executes registered puzzle days and prints one line per
// (day, part):
//
//	🎄 d6p1 41 (1.234ms)
//
// Inputs are resolved per part, in order: an explicit path, the example
// directory (with an optional "-p2" variant for part 2), the input directory.
// Each part reads and parses its own copy of the input and is timed from the
// start of parsing to the answer.
//
// Running a single day stops at the first failure. Running all days reports
// missing inputs as "no input", unregistered days as "no solution", logs
// solver failures, and carries on.
package runner

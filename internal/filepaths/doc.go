// Package filepaths expands CLI file arguments, some of which may be glob
// patterns, into a sorted list of concrete paths.
package filepaths

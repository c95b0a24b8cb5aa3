// Package report renders diffs, export statistics and catalogs for the
// console, plus a JSON form of the diff.
//
// Category markers are coloured with fatih/color, which disables colour
// automatically when stdout is not a terminal.
package report

// Package progress draws the per-book export progress bar.
package progress

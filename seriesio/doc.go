// Package seriesio reads and writes series.Series as plain text files: one
// integer per line, newline separated, no trailing newline, no header.
//
//	1
//	0
//	1
//
// The writer and reader are inverses: ReadFile(WriteFile(s)) == s for any
// series. Split cuts a series chronologically into train, validation and
// test parts for forecasting experiments.
//
// Errors:
//   - ErrBadValue - a line that is not a base-10 integer.
//   - ErrBadRatio - Split ratios outside [0,1] or summing above 1.
//
// I/O failures are returned wrapped with the file path; nothing is retried
// and a partially written file is left as is.
package seriesio

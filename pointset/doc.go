// SPDX-License-Identifier: MIT

// Package pointset holds the Vector Set: an ordered, immutable collection of
// points of uniform dimension, and the delimited-text reader that builds it.
//
// Input format:
//   - one point per line, coordinates separated by a single delimiter rune
//     (default ','); surrounding blanks around a field are ignored;
//   - the dimension is fixed by the first non-empty line;
//   - blank lines (including trailing ones) are skipped.
//
// Errors:
//   - ErrEmpty when no point could be read;
//   - ErrRaggedRow when a line has a different coordinate count;
//   - ErrBadNumber when a field is not a finite decimal number.
package pointset

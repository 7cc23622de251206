// Package mapx provides generic map helpers. SortedKeys gives a stable
// iteration order where Go's map order is randomized.
package mapx

// Package rangeindex implements a generic augmented AVL tree over
// half-open integer intervals, used by the terminal renderer to look up
// caller-added style overlays in O(log n + k) per query.
package rangeindex

// Package markers splices generated content into files that users may also
// edit by hand.
//
// A target document may hold one marked region, delimited by the MarkerBegin
// and MarkerEnd lines. Everything between the two lines belongs to devw and is
// replaced wholesale on every merge; everything outside them belongs to the
// user and is preserved byte for byte. Documents without a valid region get a
// fresh one appended.
package markers

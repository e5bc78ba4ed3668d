// Package ptcio reads the particle input stream format specified in spec
// §6: whitespace-separated records, one per line, "id x y z" or
// "id x y z r" in the radical variant. Opening "-" as a filename (reading
// stdin instead) is the caller's concern, not this package's — ptcio reads
// from whatever io.Reader it is given.
//
// Non-goals: the command-line front end that resolves a filename/"-" into
// a reader, and pre-container chunk storage used only to size a grid from
// an unknown-count stream (spec §1, both explicit external collaborators).
package ptcio

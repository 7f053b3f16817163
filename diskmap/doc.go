// Package diskmap expands a dense disk map into blocks and compacts it.
//
// The map alternates file lengths and free-space lengths, one digit per run;
// file ids count up from 0 in order of appearance.
//
// Two strategies are provided:
//
//   - CompactBlocks moves single blocks from the tail into the earliest free
//     block until no gap is left before the last file block. Files get split.
//   - CompactFiles moves whole files, highest id first, into the leftmost
//     free run that lies entirely before the file and is large enough.
//     A file never moves right and is never split; each file is tried once.
//
// Checksum sums id × index over all file blocks.
package diskmap

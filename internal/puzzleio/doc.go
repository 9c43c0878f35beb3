// Package puzzleio parses spec.md §6's puzzle input format: a first
// non-comment `R C` line, one `id north east south west` line per tile,
// `#`-prefixed comments anywhere, and an optional trailing block of
// `row col tile_id rotation` fixed-piece (hint) lines. It is ambient
// plumbing around the core spec components, not one of them — grounded on
// the line-oriented scanning idiom (bufio.Scanner + strings.Fields) the
// corpus uses for its own small text formats.
package puzzleio

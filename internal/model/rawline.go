package model

// RawLine is the intermediate type produced by ingest sources and consumed
// by the normalizer: one trimmed, non-blank line of text tagged with the
// source that produced it.
type RawLine struct {
	Source string // source name (e.g. "file", "dir", "udp")
	Text   string // trimmed line content, never empty
}

package model

import "time"

// NormalizedEvent is the canonical unit of the pipeline — one log line,
// either fully structured or degraded to its raw text.
//
// Every field except Message is optional. Absence is expressed with zero
// values: a zero Timestamp means the line carried no parseable time, an
// empty string means the field was not present, PID 0 means no (or an
// unparseable) pid token. Message is always populated: on a pattern match
// it is the message body, otherwise the entire original line.
type NormalizedEvent struct {
	Timestamp time.Time // zero when unparseable or absent
	Host      string
	Process   string
	PID       int
	Message   string // never empty
	SrcIP     string // first dotted-quad token found in Message
	User      string // token following "user " in Message
}

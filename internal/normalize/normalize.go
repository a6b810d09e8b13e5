// Package normalize turns raw log lines into structured events. It never
// rejects a line: structure extraction is best-effort and a line that
// matches nothing still yields an event carrying the raw text as its
// message.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	syslog "github.com/leodido/go-syslog/v4"
	"github.com/leodido/go-syslog/v4/rfc3164"

	"github.com/crimson-sun/winnow/internal/model"
)

var (
	// syslogPattern is the loose BSD-syslog shape without the <PRI>
	// header: "Jan  1 00:00:05 host1 sshd[123]: message". The pid suffix
	// is optional and captures any bracketed token, so a malformed pid
	// costs only that field, not the whole match.
	syslogPattern = regexp.MustCompile(`^(\w+\s+\d+\s+\d+:\d+:\d+)\s+(\S+)\s+([^\s\[:]+)(?:\[([^\]]*)\])?:\s+(.*)$`)

	// ipPattern matches the first dotted-quad shaped token. Shape only —
	// octet range is not validated.
	ipPattern = regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`)

	// userPattern captures the token after a literal "user " (case-sensitive).
	userPattern = regexp.MustCompile(`user (\S+)`)
)

// Normalizer converts RawLines into NormalizedEvents. Not safe for
// concurrent use: the embedded RFC3164 machine keeps parse state.
type Normalizer struct {
	rfc3164 syslog.Machine
}

// New creates a Normalizer. Datagrams framed with an RFC3164 <PRI> header
// are decoded by a best-effort go-syslog machine (year-less stamps get
// the current year); everything else goes through the loose pattern.
func New() *Normalizer {
	return &Normalizer{
		rfc3164: rfc3164.NewParser(
			rfc3164.WithBestEffort(),
			rfc3164.WithYear(rfc3164.CurrentYear{}),
		),
	}
}

// Normalize converts one raw line into exactly one event. The Message
// field is never empty: on any parse failure it is the entire raw line.
func (n *Normalizer) Normalize(line model.RawLine) model.NormalizedEvent {
	ev, ok := n.parseRFC3164(line.Text)
	if !ok {
		ev, ok = parseLoose(line.Text)
	}
	if !ok {
		ev = model.NormalizedEvent{Message: line.Text}
	}

	// Independent of the parse path, scan the message for an IPv4-shaped
	// token and a "user <token>" pattern.
	ev.SrcIP = ipPattern.FindString(ev.Message)
	if m := userPattern.FindStringSubmatch(ev.Message); m != nil {
		ev.User = m[1]
	}
	return ev
}

// parseRFC3164 decodes a <PRI>-framed BSD syslog line. Lines without the
// priority header are not offered to the machine at all.
func (n *Normalizer) parseRFC3164(text string) (model.NormalizedEvent, bool) {
	if !strings.HasPrefix(text, "<") {
		return model.NormalizedEvent{}, false
	}
	msg, err := n.rfc3164.Parse([]byte(text))
	if err != nil || msg == nil {
		return model.NormalizedEvent{}, false
	}
	m, ok := msg.(*rfc3164.SyslogMessage)
	if !ok || m.Message == nil || *m.Message == "" {
		return model.NormalizedEvent{}, false
	}

	ev := model.NormalizedEvent{Message: *m.Message}
	if m.Timestamp != nil {
		ev.Timestamp = m.Timestamp.UTC()
	}
	if m.Hostname != nil {
		ev.Host = *m.Hostname
	}
	if m.Appname != nil {
		ev.Process = *m.Appname
	}
	if m.ProcID != nil {
		ev.PID = parsePID(*m.ProcID)
	}
	return ev, true
}

// parseLoose matches the PRI-less syslog shape. A match with an
// unparseable timestamp still populates the remaining fields.
func parseLoose(text string) (model.NormalizedEvent, bool) {
	m := syslogPattern.FindStringSubmatch(text)
	if m == nil {
		return model.NormalizedEvent{}, false
	}
	body := m[5]
	if body == "" {
		// An empty body would break the message invariant; treat the
		// line as unstructured instead.
		return model.NormalizedEvent{}, false
	}
	return model.NormalizedEvent{
		Timestamp: parseTimestamp(m[1]),
		Host:      m[2],
		Process:   m[3],
		PID:       parsePID(m[4]),
		Message:   body,
	}, true
}

// parsePID converts a pid token to int; malformed tokens leave the field
// absent (0).
func parsePID(s string) int {
	pid, err := strconv.Atoi(s)
	if err != nil || pid < 0 {
		return 0
	}
	return pid
}

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/crimson-sun/winnow/internal/model"
)

const (
	// recvBufSize is sized for the largest datagram worth keeping; syslog
	// messages are far smaller, but senders are not trusted.
	recvBufSize = 64 * 1024

	// pollInterval is the read deadline used so the receive loop can
	// notice cancellation and idle expiry between datagrams.
	pollInterval = 500 * time.Millisecond
)

func init() {
	Register("udp", func() Source { return udpSource{} })
}

// udpSource binds a UDP socket and receives datagrams until MaxLogs lines
// have been accepted, the idle timeout expires, or the context is
// cancelled. One datagram becomes at most one RawLine. Delivery is
// best-effort: dropped or truncated datagrams are not detected.
type udpSource struct{}

func (udpSource) Collect(ctx context.Context, cfg Config) ([]model.RawLine, error) {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("ingest: bind udp %s: %w", addr, err)
	}
	slog.Info("listening for syslog datagrams", "addr", conn.LocalAddr().String(), "max_logs", cfg.MaxLogs)
	return collectUDP(ctx, conn, cfg.MaxLogs, cfg.IdleTimeout)
}

// collectUDP runs the receive loop over an already-bound socket. The
// socket is closed on every exit path; a close failure is logged, never
// propagated. Receive errors other than deadline expiry end the loop with
// whatever was collected so far — syslog-over-UDP has no delivery
// guarantee to recover.
func collectUDP(ctx context.Context, conn net.PacketConn, maxLogs int, idleTimeout time.Duration) ([]model.RawLine, error) {
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("closing udp socket", "error", err)
		}
	}()

	buf := make([]byte, recvBufSize)
	var lines []model.RawLine
	lastRecv := time.Now()

	for len(lines) < maxLogs {
		if err := conn.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
			slog.Warn("setting udp read deadline", "error", err)
			break
		}
		n, _, err := conn.ReadFrom(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				if ctx.Err() != nil {
					slog.Info("udp ingestion cancelled", "received", len(lines))
					break
				}
				if idleTimeout > 0 && time.Since(lastRecv) > idleTimeout {
					slog.Info("udp ingestion idle timeout", "received", len(lines))
					break
				}
				continue
			}
			slog.Warn("udp receive error", "error", err, "received", len(lines))
			break
		}
		lastRecv = time.Now()

		text := strings.TrimSpace(decodeString(buf[:n]))
		if text == "" {
			continue
		}
		lines = append(lines, model.RawLine{Source: "udp", Text: text})
		if len(lines)%100 == 0 {
			slog.Debug("udp ingestion progress", "received", len(lines))
		}
	}

	slog.Info("udp ingestion finished", "received", len(lines))
	return lines, nil
}

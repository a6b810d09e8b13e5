package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/crimson-sun/winnow/internal/model"
)

// maxLineBytes caps a single log line; syslog lines are short, but file
// sources may contain arbitrary text. Lines beyond the cap are truncated,
// never fatal: one irregular line must not abort a run.
const maxLineBytes = 1024 * 1024

func init() {
	Register("file", func() Source { return fileSource{} })
	Register("dir", func() Source { return dirSource{} })
}

// fileSource reads one text file, permissively decoded, one RawLine per
// non-blank line.
type fileSource struct{}

func (fileSource) Collect(_ context.Context, cfg Config) ([]model.RawLine, error) {
	lines, err := readFile(cfg.Path, "file")
	if err != nil {
		return nil, err
	}
	slog.Info("ingested file", "path", cfg.Path, "lines", len(lines))
	return lines, nil
}

// dirSource applies the file reader to every regular file directly inside
// a directory, in enumeration order. Subdirectories and other non-regular
// entries are skipped; per-file read failures are logged and skipped.
type dirSource struct{}

func (dirSource) Collect(_ context.Context, cfg Config) ([]model.RawLine, error) {
	entries, err := os.ReadDir(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read dir %s: %w", cfg.Path, err)
	}

	var lines []model.RawLine
	files := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(cfg.Path, entry.Name())
		fileLines, err := readFile(path, "dir")
		if err != nil {
			slog.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		files++
		if len(fileLines) > 0 {
			slog.Debug("ingested file", "path", path, "lines", len(fileLines))
		}
		lines = append(lines, fileLines...)
	}
	slog.Info("ingested directory", "path", cfg.Path, "files", files, "lines", len(lines))
	return lines, nil
}

// readFile reads every non-blank line of a file through the permissive
// decoder. A missing or unreadable file is a hard error; an oversized
// line is truncated with a warning and the read continues.
func readFile(path, source string) ([]model.RawLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []model.RawLine
	r := bufio.NewReaderSize(transform.NewReader(f, permissive()), 64*1024)
	for {
		text, truncated, err := readLine(r)
		if truncated {
			slog.Warn("truncating oversized line", "path", path, "kept_bytes", maxLineBytes)
		}
		if text != "" {
			lines = append(lines, model.RawLine{Source: source, Text: text})
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: read %s: %w", path, err)
		}
	}
}

// readLine reads one line, keeping at most maxLineBytes of it. The excess
// of an oversized line is consumed and discarded, so the next call starts
// on the next line. The returned error is io.EOF after the last line.
func readLine(r *bufio.Reader) (text string, truncated bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return finishLine(buf, truncated), truncated, err
		}
		if room := maxLineBytes - len(buf); len(chunk) > room {
			chunk = chunk[:room]
			truncated = true
		}
		buf = append(buf, chunk...)
		if !isPrefix {
			return finishLine(buf, truncated), truncated, nil
		}
	}
}

// finishLine trims the assembled line. Truncation can split a multi-byte
// rune at the cap; the partial rune is dropped so the text stays valid
// UTF-8.
func finishLine(buf []byte, truncated bool) string {
	if truncated {
		for len(buf) > 0 && !utf8.Valid(buf) {
			buf = buf[:len(buf)-1]
		}
	}
	return strings.TrimSpace(string(buf))
}

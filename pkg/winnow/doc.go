// Package winnow turns raw security logs into windowed ML feature
// vectors: ingest from files, directories or live UDP syslog, normalize
// every line into a structured event, and aggregate fixed-length time
// windows of numeric statistics.
//
// Quick start:
//
//	p := winnow.New(winnow.WithWindow(60 * time.Second))
//	if err := p.IngestFile("logs/auth.log"); err != nil {
//	    log.Fatal(err)
//	}
//	features := p.Features()
//	_ = p.ExportCSV(os.Stdout)
//
// A Pipeline is a batch: ingest everything first, then read Events or
// Features. It is not safe for concurrent use.
package winnow

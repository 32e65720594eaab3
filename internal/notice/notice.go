// Package notice turns rename outcomes into human-readable notices.
package notice

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/taigrr/batch-renamer/internal/types"
)

// Printer writes one line per rename and per skip to an io.Writer.
// Skips caused by a missing or unmatched extension are not printed.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Header announces the run.
func (p *Printer) Header(directory string, extensions []string) {
	p.printf("We are renaming files in folder %q with extensions [%s] ... \n", directory, strings.Join(extensions, ", "))
}

// Renamed prints a rename notice.
func (p *Printer) Renamed(oldPath, newPath string) {
	p.printf("Renaming `%s` to `%s`\n", oldPath, newPath)
}

// Skipped prints a skip notice.
func (p *Printer) Skipped(path string, reason types.SkipReason) {
	if reason.Silent() {
		return
	}
	p.printf("Skipping `%s`\n", path)
}

// Summary prints the total, or an explicit notice when nothing was renamed.
func (p *Printer) Summary(renamed int) {
	switch renamed {
	case 0:
		p.printf("Oops! No files were renamed.\n")
	case 1:
		p.printf("Renamed 1 file.\n")
	default:
		p.printf("Renamed %d files.\n", renamed)
	}
}

func (p *Printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Collector records outcomes in memory.
type Collector struct {
	Renames []types.Rename
	Skips   []types.Skip
}

// Renamed records a rename.
func (c *Collector) Renamed(oldPath, newPath string) {
	c.Renames = append(c.Renames, types.Rename{OldPath: oldPath, NewPath: newPath})
}

// Skipped records a skip.
func (c *Collector) Skipped(path string, reason types.SkipReason) {
	c.Skips = append(c.Skips, types.Skip{Path: path, Reason: reason})
}

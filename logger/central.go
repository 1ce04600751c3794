package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Entry represents a single line in the log.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Tag       string
	Detail    string
	Repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s: %s", e.Level, e.Tag, e.Detail))
	if e.Repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.Repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Central is a bounded in-memory log. Identical consecutive entries are
// collapsed into one entry with a repeat count.
type Central struct {
	mu         sync.Mutex
	maxEntries int
	entries    []Entry
	recent     int
	echo       io.Writer
}

// NewCentral creates a log holding at most maxEntries entries.
func NewCentral(maxEntries int) *Central {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Central{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0),
	}
}

// Log implements Sink.
func (c *Central) Log(level Level, tag, detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tag = clean(tag)
	detail = clean(detail)

	var e *Entry
	if len(c.entries) > 0 {
		e = &c.entries[len(c.entries)-1]
	}

	if e != nil && e.Level == level && e.Tag == tag && e.Detail == detail {
		e.Repeated++
		e.Timestamp = time.Now()
	} else {
		c.entries = append(c.entries, Entry{Timestamp: time.Now(), Level: level, Tag: tag, Detail: detail})
		e = &c.entries[len(c.entries)-1]
	}

	if c.echo != nil {
		io.WriteString(c.echo, e.String())
	}

	// maintain maximum length
	if len(c.entries) > c.maxEntries {
		drop := len(c.entries) - c.maxEntries
		c.entries = c.entries[drop:]
		c.recent = max(0, c.recent-drop)
	}
}

// Clear all entries.
func (c *Central) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = c.entries[:0]
	c.recent = 0
}

// Len returns the number of entries held.
func (c *Central) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Entries returns a copy of the held entries, oldest first.
func (c *Central) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Entry(nil), c.entries...)
}

// Write all entries to output.
func (c *Central) Write(output io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.entries {
		io.WriteString(output, c.entries[i].String())
	}
}

// WriteRecent writes only the entries added since the previous call.
func (c *Central) WriteRecent(output io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := c.recent; i < len(c.entries); i++ {
		io.WriteString(output, c.entries[i].String())
	}
	c.recent = len(c.entries)
}

// Tail writes the last number entries to output.
func (c *Central) Tail(output io.Writer, number int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := max(0, len(c.entries)-number)
	for i := start; i < len(c.entries); i++ {
		io.WriteString(output, c.entries[i].String())
	}
}

// SetEcho prints every new entry to output as well. A nil output disables
// echoing.
func (c *Central) SetEcho(output io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.echo = output
}

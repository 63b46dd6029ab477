package log

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// JSONFormatter renders entries as single-line JSON objects.
type JSONFormatter struct{}

// Format implements Formatter.
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	payload := make(map[string]interface{}, len(entry.Fields)+3)
	payload["ts"] = entry.Timestamp.Format(time.RFC3339Nano)
	payload["level"] = entry.Level.String()
	payload["msg"] = entry.Message
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			payload[k] = err.Error()
			continue
		}
		payload[k] = v
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// TextFormatter renders entries as "ts LEVEL msg k=v ..." lines with
// fields in sorted key order.
type TextFormatter struct{}

// Format implements Formatter.
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(entry.Timestamp.Format(time.RFC3339))
	sb.WriteByte(' ')
	sb.WriteString(entry.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteByte('=')
			sb.WriteString(fmt.Sprint(entry.Fields[k]))
		}
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// ConsoleOutput writes formatted entries to stderr.
type ConsoleOutput struct {
	mu sync.Mutex
}

// NewConsoleOutput returns a stderr-backed output.
func NewConsoleOutput() *ConsoleOutput { return &ConsoleOutput{} }

// Write implements Output.
func (o *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := os.Stderr.Write(formatted)
	return err
}

// Close implements Output.
func (o *ConsoleOutput) Close() error { return nil }

// nopOutput discards everything.
type nopOutput struct{}

func (nopOutput) Write(*Entry, []byte) error { return nil }
func (nopOutput) Close() error               { return nil }

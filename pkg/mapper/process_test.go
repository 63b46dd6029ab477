package mapper

import (
	"errors"
	"strings"
	"testing"

	"github.com/telophasehq/tangent/pkg/frame"
	"github.com/telophasehq/tangent/pkg/logview"
	"github.com/telophasehq/tangent/pkg/record"
	"github.com/telophasehq/tangent/pkg/selector"
)

func mustRecords(t *testing.T, docs ...string) []*record.Record {
	t.Helper()
	recs := make([]*record.Record, 0, len(docs))
	for _, doc := range docs {
		rec, err := record.Parse([]byte(doc))
		if err != nil {
			t.Fatalf("parse %q: %v", doc, err)
		}
		recs = append(recs, rec)
	}
	return recs
}

func TestProcessRawFlavor(t *testing.T) {
	r := NewRegistry()
	h, err := r.Register(&rawEcho{
		meta: Meta{Name: "errors"},
		probe: []selector.Selector{
			{All: []selector.Predicate{selector.Eq("level", record.Str("error"))}},
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	recs := mustRecords(t,
		`{"level":"error","msg":"first"}`,
		`{"level":"info","msg":"skip"}`,
		`{"level":"error","msg":"second"}`,
	)
	out, err := r.Process(h, recs)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Frames != nil {
		t.Fatalf("raw mapper produced frames")
	}
	lines := strings.Split(strings.TrimSuffix(string(out.Raw), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: %v", lines)
	}
	// Output preserves input order.
	if !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Fatalf("order: %v", lines)
	}
}

func TestProcessFrameFlavor(t *testing.T) {
	r := NewRegistry()
	h, err := r.Register(&frameLift{
		meta:  Meta{Name: "lift"},
		probe: acceptAnything(),
		field: "msg",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	recs := mustRecords(t, `{"msg":"boot"}`, `{"msg":"ready"}`)
	out, err := r.Process(h, recs)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Raw != nil {
		t.Fatalf("frame mapper produced raw output")
	}
	if len(out.Frames) != 2 {
		t.Fatalf("frames: %d", len(out.Frames))
	}
	encoded, err := frame.AppendNDJSON(nil, out.Frames)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(encoded) != "{\"msg\":\"boot\"}\n{\"msg\":\"ready\"}\n" {
		t.Fatalf("encoded: %s", encoded)
	}
}

func TestProcessEmptyAcceptance(t *testing.T) {
	r := NewRegistry()
	h, err := r.Register(&rawEcho{
		meta: Meta{Name: "never"},
		probe: []selector.Selector{
			{All: []selector.Predicate{selector.Has("no.such.field")}},
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := r.Process(h, mustRecords(t, `{"msg":"x"}`))
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if out.Raw != nil || out.Frames != nil {
		t.Fatalf("empty batch produced output: %+v", out)
	}
}

// failing returns a fixed error from ProcessLogs and captures its views.
type failing struct {
	meta     Meta
	captured []*logview.View
}

var errBroken = errors.New("broken pipeline")

func (m *failing) Metadata() Meta             { return m.meta }
func (m *failing) Probe() []selector.Selector { return acceptAnything() }
func (m *failing) ProcessLogs(views []*logview.View) ([]byte, error) {
	m.captured = views
	return []byte("partial"), errBroken
}

func TestProcessErrorDiscardsBatch(t *testing.T) {
	r := NewRegistry()
	m := &failing{meta: Meta{Name: "broken"}}
	h, err := r.Register(m)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := r.Process(h, mustRecords(t, `{"msg":"x"}`, `{"msg":"y"}`))
	if !errors.Is(err, errBroken) {
		t.Fatalf("process error: %v", err)
	}
	if out.Raw != nil || out.Frames != nil {
		t.Fatalf("failed batch leaked output: %+v", out)
	}
}

// capturing records the views it was handed so the test can check their
// lifecycle after Process returns.
type capturing struct {
	meta     Meta
	captured []*logview.View
}

func (m *capturing) Metadata() Meta             { return m.meta }
func (m *capturing) Probe() []selector.Selector { return acceptAnything() }
func (m *capturing) ProcessLogs(views []*logview.View) ([]byte, error) {
	m.captured = views
	return nil, nil
}

func TestProcessReleasesViews(t *testing.T) {
	r := NewRegistry()
	m := &capturing{meta: Meta{Name: "capture"}}
	h, err := r.Register(m)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := r.Process(h, mustRecords(t, `{"msg":"x"}`)); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(m.captured) != 1 {
		t.Fatalf("captured views: %d", len(m.captured))
	}
	if _, err := m.captured[0].Raw(); !errors.Is(err, logview.ErrReleased) {
		t.Fatalf("view still live after Process: %v", err)
	}

	// Failure path releases too.
	f := &failing{meta: Meta{Name: "broken"}}
	fh, err := r.Register(f)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := r.Process(fh, mustRecords(t, `{"msg":"x"}`)); err == nil {
		t.Fatalf("expected failure")
	}
	if _, err := f.captured[0].Raw(); !errors.Is(err, logview.ErrReleased) {
		t.Fatalf("view still live after failed Process: %v", err)
	}
}

package mapper

import (
	"fmt"
	"time"

	"github.com/telophasehq/tangent/pkg/log"
	"github.com/telophasehq/tangent/pkg/logview"
	"github.com/telophasehq/tangent/pkg/record"
)

// Process runs one batch through a registered mapper: it opens a view per
// record, routes through the mapper's probe, invokes ProcessLogs on the
// accepted views in input order, and returns the output. Every view is
// released before Process returns, on every exit path. A ProcessLogs
// error discards the whole batch's output.
func (r *Registry) Process(h *Handle, records []*record.Record) (out Output, err error) {
	invocation := r.gen.Next()
	start := time.Now()

	views := make([]*logview.View, 0, len(records))
	defer func() {
		for _, v := range views {
			_ = v.Close()
		}
	}()

	accepted := make([]*logview.View, 0, len(records))
	for _, rec := range records {
		v := logview.Open(rec)
		views = append(views, v)
		if h.Accepts(v) {
			accepted = append(accepted, v)
		}
	}

	switch m := h.mapper.(type) {
	case RawMapper:
		raw, perr := m.ProcessLogs(accepted)
		if perr != nil {
			err = fmt.Errorf("mapper %q: process_logs: %w", h.meta.Name, perr)
		} else {
			out.Raw = raw
		}
	case FrameMapper:
		frames, perr := m.ProcessLogs(accepted)
		if perr != nil {
			err = fmt.Errorf("mapper %q: process_logs: %w", h.meta.Name, perr)
		} else {
			out.Frames = frames
		}
	default:
		err = fmt.Errorf("mapper %q: %w", h.meta.Name, ErrFlavor)
	}

	if err != nil {
		r.logger.Warn("batch discarded",
			log.Str("invocation", invocation.String()),
			log.Str("name", h.meta.Name),
			log.Int("records", len(records)),
			log.Err(err),
		)
		return Output{}, err
	}

	r.logger.Debug("batch processed",
		log.Str("invocation", invocation.String()),
		log.Str("name", h.meta.Name),
		log.Int("records", len(records)),
		log.Int("accepted", len(accepted)),
		log.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// Package locate implements the "first success wins" record lookup over the
// ordered candidate keys produced by the yearkey resolver, with a final
// most-recent-record fallback. The fallback policy lives here, declaratively,
// so it stays auditable and testable apart from the business logic above it.
package locate

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/yearkey"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// Path records which probe finally produced the record. The fallback steps
// are the historical source of data-integrity bugs, so every outcome must be
// distinguishable in logs and traces.
type Path struct {
	Table string `json:"table"`
	// Step is "canonical", a fallback reason from the yearkey candidate,
	// "latest_fallback", or "none".
	Step string `json:"step"`
	// CandidateValue is the year key that hit, rendered for telemetry.
	CandidateValue interface{} `json:"candidate_value,omitempty"`
	Found          bool        `json:"found"`
}

// ExactFn issues an exact department+year point query for one candidate.
type ExactFn[T any] func(ctx context.Context, cand yearkey.Candidate) (*T, bool, error)

// LatestFn fetches the most recent record for the department regardless of
// year; the last-resort guard against total data loss.
type LatestFn[T any] func(ctx context.Context) (*T, bool, error)

// Locate walks the candidate list in order and returns the first hit, then
// falls back to the latest record. A failed probe degrades to a miss for
// that candidate; the query error is surfaced only if nothing hits at all.
func Locate[T any](ctx context.Context, log *logger.Logger, table string, cands []yearkey.Candidate, exact ExactFn[T], latest LatestFn[T]) (*T, Path, error) {
	var firstErr error
	for _, cand := range cands {
		rec, found, err := exact(ctx, cand)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			log.Warn("locate probe failed, trying next candidate",
				"table", table, "step", cand.Reason, "year_key", cand.Value(), "error", err)
			continue
		}
		if found {
			p := Path{Table: table, Step: cand.Reason, CandidateValue: cand.Value(), Found: true}
			record(ctx, log, p)
			return rec, p, nil
		}
	}

	rec, found, err := latest(ctx)
	if err != nil {
		if firstErr == nil {
			firstErr = err
		}
		log.Warn("locate latest-record fallback failed", "table", table, "error", err)
	}
	if found {
		p := Path{Table: table, Step: "latest_fallback", Found: true}
		record(ctx, log, p)
		return rec, p, nil
	}

	p := Path{Table: table, Step: "none"}
	record(ctx, log, p)
	return nil, p, firstErr
}

func record(ctx context.Context, log *logger.Logger, p Path) {
	if p.Step != "canonical" {
		log.Info("record located via fallback path", "table", p.Table, "step", p.Step, "found", p.Found)
	} else {
		log.Debug("record located", "table", p.Table, "step", p.Step)
	}
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("locate."+p.Table+".step", p.Step),
			attribute.Bool("locate."+p.Table+".found", p.Found),
		)
	}
}

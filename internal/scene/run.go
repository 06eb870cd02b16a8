package scene

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-collide/internal/collide"
	"github.com/vovakirdan/tui-collide/internal/core"
	"github.com/vovakirdan/tui-collide/internal/entity"
)

// Result is the outcome of one query.
type Result struct {
	Query   QuerySpec
	Value   string // printable answer: entity name, list, point or sector
	Matched bool
	Passed  bool // true when the query has no expectation
}

// Label returns the query name, or its kind and index when unnamed.
func (r Result) Label(i int) string {
	if r.Query.Name != "" {
		return r.Query.Name
	}
	return fmt.Sprintf("%s#%d", r.Query.Kind, i)
}

// Run builds the scene and evaluates every query in order.
// Queries never move entities, so their order does not affect results.
func Run(doc *Document, logger *log.Logger) ([]Result, error) {
	if logger == nil {
		logger = log.Default()
	}

	w, err := Build(doc)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(doc.Queries))
	for i, q := range doc.Queries {
		r, err := w.Eval(q)
		if err != nil {
			return results, fmt.Errorf("scene %s: query %s: %w", doc.ID, r.Label(i), err)
		}
		logger.Debug("query",
			"scene", doc.ID,
			"name", r.Label(i),
			"kind", q.Kind,
			"value", r.Value,
			"passed", r.Passed,
		)
		results = append(results, r)
	}
	return results, nil
}

// Eval evaluates a single query against the world.
func (w *World) Eval(q QuerySpec) (Result, error) {
	res := Result{Query: q}

	var subject *entity.Entity
	if NeedsSubject(q.Kind) {
		e, ok := w.Lookup(q.Subject)
		if !ok {
			return res, fmt.Errorf("unknown subject %q", q.Subject)
		}
		subject = e
	}
	targets := w.Select(q.Targets)

	switch q.Kind {
	case KindCheck:
		if len(targets) != 1 {
			return res, fmt.Errorf("check query needs exactly one target")
		}
		if q.At != nil {
			res.Matched = collide.CheckAt(subject, targets[0], q.At.Vector())
		} else {
			res.Matched = collide.Check(subject, targets[0])
		}
		res.Value = fmt.Sprint(res.Matched)

	case KindAny:
		if q.At != nil {
			res.Matched = collide.AnyAt(subject, targets, q.At.Vector())
		} else {
			res.Matched = collide.Any(subject, targets)
		}
		res.Value = fmt.Sprint(res.Matched)

	case KindFirst:
		var hit *entity.Entity
		if q.At != nil {
			hit, res.Matched = collide.FirstAt(subject, targets, q.At.Vector())
		} else {
			hit, res.Matched = collide.First(subject, targets)
		}
		res.Value = "none"
		if res.Matched {
			res.Value = hit.String()
		}

	case KindAll:
		var hits []*entity.Entity
		if q.At != nil {
			hits = collide.AllAt(subject, targets, q.At.Vector())
		} else {
			hits = collide.All(subject, targets)
		}
		res.Matched = len(hits) > 0
		res.Value = names(hits)

	case KindPoint:
		if q.At != nil {
			res.Matched = collide.CheckPointAt(subject, q.Point.Vector(), q.At.Vector())
		} else {
			res.Matched = collide.CheckPoint(subject, q.Point.Vector())
		}
		res.Value = fmt.Sprint(res.Matched)

	case KindLine:
		if q.At != nil {
			res.Matched = collide.CheckLineAt(subject, q.From.Vector(), q.To.Vector(), q.At.Vector())
		} else {
			res.Matched = collide.CheckLine(subject, q.From.Vector(), q.To.Vector())
		}
		res.Value = fmt.Sprint(res.Matched)

	case KindRect:
		if q.At != nil {
			res.Matched = collide.CheckRectAt(subject, q.Rect.Rect(), q.At.Vector())
		} else {
			res.Matched = collide.CheckRect(subject, q.Rect.Rect())
		}
		res.Value = fmt.Sprint(res.Matched)

	case KindSegments:
		p, ok := collide.SegmentIntersection(q.From.Vector(), q.To.Vector(), q.OtherFrom.Vector(), q.OtherTo.Vector())
		res.Matched = ok
		res.Value = "none"
		if ok {
			res.Value = FormatPoint(p)
		}

	case KindRectLine:
		res.Matched = collide.RectSegment(q.Rect.Rect(), q.From.Vector(), q.To.Vector())
		res.Value = fmt.Sprint(res.Matched)

	case KindSector:
		s := collide.SectorOf(q.Rect.Rect(), q.Point.Vector())
		res.Matched = s == collide.SectorCenter
		res.Value = s.String()

	default:
		return res, fmt.Errorf("unknown kind %q", q.Kind)
	}

	res.Passed = passed(q, res)
	return res, nil
}

// Failed returns the results whose expectations did not hold.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}

// FormatPoint formats a point the way scene files write it.
func FormatPoint(p core.Vector2) string {
	return fmt.Sprintf("[%g, %g]", p.X, p.Y)
}

func passed(q QuerySpec, r Result) bool {
	if q.Expect != nil && *q.Expect != r.Matched {
		return false
	}
	if q.ExpectValue != "" && q.ExpectValue != r.Value {
		return false
	}
	return true
}

func names(list []*entity.Entity) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

package eveapi

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"evexml/lib/xmltree"
)

// row wraps a folded element with lenient field readers. Unparseable
// numerics log a warning and yield the zero value so one bad row does
// not abort a whole feed.
type row struct {
	ctx context.Context
	n   *xmltree.Node
}

func (r row) str(attr string) string {
	return r.n.Attr(attr)
}

func (r row) int64(attr string) int64 {
	return r.parseInt(attr, r.n.Attr(attr))
}

func (r row) float64(attr string) float64 {
	return r.parseFloat(attr, r.n.Attr(attr))
}

func (r row) bool(attr string) bool {
	return parseBool(r.n.Attr(attr))
}

// text readers for feeds whose fields are scalar child elements
// instead of attributes

func (r row) text(tag string) string {
	return r.n.ChildText(tag)
}

func (r row) textInt64(tag string) int64 {
	return r.parseInt(tag, r.n.ChildText(tag))
}

func (r row) textFloat64(tag string) float64 {
	return r.parseFloat(tag, r.n.ChildText(tag))
}

func (r row) textBool(tag string) bool {
	return parseBool(r.n.ChildText(tag))
}

func (r row) parseInt(field, raw string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.WarnContext(r.ctx, "unparseable integer field",
			"tag", r.n.Tag, "field", field, "value", raw)
		return 0
	}
	return v
}

func (r row) parseFloat(field, raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.WarnContext(r.ctx, "unparseable decimal field",
			"tag", r.n.Tag, "field", field, "value", raw)
		return 0
	}
	return v
}

// the API is inconsistent about booleans, numeric feeds use 1/0 while
// status feeds spell out True/False
func parseBool(raw string) bool {
	switch raw {
	case "1", "True", "true":
		return true
	}
	return false
}

// splitIDList breaks a comma separated id list attribute into a slice,
// yielding nil for an absent or empty value.
func splitIDList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

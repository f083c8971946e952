package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// JSON record keys. Run fields (correlation_id, stage, component) pass through
// under their own names.
const (
	jsonTimeKey   = "ts"
	jsonLevelKey  = "level"
	jsonSourceKey = "source"
)

func newJSONHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   addSource,
		ReplaceAttr: jsonAttr,
	})
}

// jsonAttr rewrites the built-in attributes: UTC RFC 3339 timestamps,
// lower-case levels, and file:line sources. Grouped attributes are untouched.
func jsonAttr(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		if attr.Value.Kind() == slog.KindTime {
			return slog.String(jsonTimeKey, attr.Value.Time().UTC().Format(time.RFC3339))
		}
		attr.Key = jsonTimeKey
	case slog.LevelKey:
		if level, ok := attr.Value.Any().(slog.Level); ok {
			return slog.String(jsonLevelKey, strings.ToLower(levelLabel(level)))
		}
		return slog.String(jsonLevelKey, strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			return slog.String(jsonSourceKey, filepath.Base(src.File)+":"+strconv.Itoa(src.Line))
		}
	}
	return attr
}

package interpreter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"moviescout/internal/movie"
	"moviescout/internal/services/llm"
)

const (
	fieldGenres        = "genres"
	fieldYearStart     = "year_start"
	fieldYearEnd       = "year_end"
	fieldMinScore      = "min_score"
	fieldMinRuntime    = "min_runtime"
	fieldMaxRuntime    = "max_runtime"
	fieldCertification = "certification"
)

var errNotObject = errors.New("reply is not a JSON object")

// FieldIssue records a recognised key whose value could not be used.
type FieldIssue struct {
	Field string
	Err   error
}

// ParseReply extracts a FilterSet from a model reply. Recognised keys with
// unusable values are left unset and reported in the returned field errors;
// the error is non-nil only when the reply holds no JSON object at all.
func ParseReply(reply string) (movie.FilterSet, []FieldIssue, error) {
	var raw map[string]json.RawMessage
	payload := llm.FirstCodeBlock(reply)
	if err := llm.DecodeLLMJSON(payload, &raw); err != nil {
		return movie.FilterSet{}, nil, err
	}
	if raw == nil {
		return movie.FilterSet{}, nil, errNotObject
	}

	var (
		filters movie.FilterSet
		issues  []FieldIssue
	)
	note := func(field string, err error) {
		if err != nil {
			issues = append(issues, FieldIssue{Field: field, Err: err})
		}
	}

	var err error
	filters.Genres, err = decodeGenres(raw[fieldGenres])
	note(fieldGenres, err)
	filters.YearStart, err = decodeInt(raw[fieldYearStart])
	note(fieldYearStart, err)
	filters.YearEnd, err = decodeInt(raw[fieldYearEnd])
	note(fieldYearEnd, err)
	filters.MinScore, err = decodeFloat(raw[fieldMinScore])
	note(fieldMinScore, err)
	filters.MinRuntime, err = decodeInt(raw[fieldMinRuntime])
	note(fieldMinRuntime, err)
	filters.MaxRuntime, err = decodeInt(raw[fieldMaxRuntime])
	note(fieldMaxRuntime, err)
	filters.Certification, err = decodeString(raw[fieldCertification])
	note(fieldCertification, err)

	return normalize(filters), issues, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeGenres(raw json.RawMessage) ([]string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		var single string
		if errSingle := json.Unmarshal(raw, &single); errSingle != nil {
			return nil, fmt.Errorf("expected list of strings: %w", err)
		}
		return movie.NormalizeGenres(strings.Split(single, ",")), nil
	}
	names := make([]string, 0, len(list))
	for _, item := range list {
		if name, ok := item.(string); ok {
			names = append(names, name)
		}
	}
	return movie.NormalizeGenres(names), nil
}

func decodeFloat(raw json.RawMessage) (*float64, error) {
	if isNull(raw) {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case float64:
		return movie.Float(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || strings.EqualFold(trimmed, "null") {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", v)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return nil, fmt.Errorf("not a finite number: %q", v)
		}
		return movie.Float(parsed), nil
	default:
		return nil, fmt.Errorf("unexpected %T", value)
	}
}

func decodeInt(raw json.RawMessage) (*int, error) {
	value, err := decodeFloat(raw)
	if err != nil || value == nil {
		return nil, err
	}
	rounded := math.Round(*value)
	if rounded > math.MaxInt32 || rounded < math.MinInt32 {
		return nil, fmt.Errorf("out of range: %g", *value)
	}
	return movie.Int(int(rounded)), nil
}

func decodeString(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, err
	}
	switch v := value.(type) {
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, nil
		}
		return movie.String(trimmed), nil
	case float64:
		return movie.String(strconv.FormatFloat(v, 'f', -1, 64)), nil
	default:
		return nil, fmt.Errorf("unexpected %T", value)
	}
}

// normalize enforces the FilterSet range invariants on model output.
func normalize(f movie.FilterSet) movie.FilterSet {
	if f.YearStart != nil && *f.YearStart <= 0 {
		f.YearStart = nil
	}
	if f.YearEnd != nil && *f.YearEnd <= 0 {
		f.YearEnd = nil
	}
	if f.HasYearRange() && *f.YearStart > *f.YearEnd {
		f.YearStart, f.YearEnd = f.YearEnd, f.YearStart
	}
	if f.MinScore != nil {
		f.MinScore = movie.Float(math.Min(10, math.Max(0, *f.MinScore)))
	}
	if f.MinRuntime != nil && *f.MinRuntime < 0 {
		f.MinRuntime = nil
	}
	if f.MaxRuntime != nil && *f.MaxRuntime < 0 {
		f.MaxRuntime = nil
	}
	if f.MinRuntime != nil && f.MaxRuntime != nil && *f.MinRuntime > *f.MaxRuntime {
		f.MinRuntime, f.MaxRuntime = f.MaxRuntime, f.MinRuntime
	}
	return f
}

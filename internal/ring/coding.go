package ring

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/orbit/internal/paint"
)

// Record keys.
const (
	KeyProgress     = "progress"
	KeyProgressTint = "progressTintColor"
	KeyTrackTint    = "trackTintColor"
)

// Record is the coded form of a ring: progress and the explicit tints.
// Unset tints are omitted. The observed source is runtime-only and never
// encoded.
type Record map[string]any

// Encode captures r's persistent state.
func Encode(r *Ring) Record {
	rec := Record{KeyProgress: r.progress}
	if r.progressTint != nil {
		rec[KeyProgressTint] = r.progressTint.String()
	}
	if r.trackTint != nil {
		rec[KeyTrackTint] = r.trackTint.String()
	}
	return rec
}

// Decode builds a ring from rec. Missing or malformed values fall back to
// defaults: progress 0 and unset tints. Decode never fails.
func Decode(rec Record, opts ...Option) *Ring {
	r := New(opts...)

	if raw, ok := rec[KeyProgress]; ok {
		if v, err := decodeFloat(raw); err == nil {
			r.progress = Clamp(v)
		} else {
			r.log.Debug("ring %d: ignoring %s: %v", r.id, KeyProgress, err)
		}
	}

	r.progressTint = r.decodeTint(rec, KeyProgressTint)
	r.trackTint = r.decodeTint(rec, KeyTrackTint)
	return r
}

// decodeTint reads a color string. Bare integers are ANSI palette indexes.
func (r *Ring) decodeTint(rec Record, key string) *paint.Color {
	raw, ok := rec[key]
	if !ok || raw == nil {
		return nil
	}
	var s string
	switch v := raw.(type) {
	case string:
		s = v
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case json.Number:
		s = v.String()
	default:
		r.log.Debug("ring %d: ignoring %s: unsupported type %T", r.id, key, raw)
		return nil
	}
	c, err := paint.Parse(s)
	if err != nil {
		r.log.Debug("ring %d: ignoring %s: %v", r.id, key, err)
		return nil
	}
	return &c
}

// decodeFloat accepts the numeric shapes YAML and JSON decoders produce.
func decodeFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}

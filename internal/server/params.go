package server

import (
	"fmt"

	"github.com/mj1618/xrandroll/internal/model"
)

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that clients may send unquoted
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}

func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}

// editFromParams builds an edit from tool arguments. snap is used when the
// call moves an output without giving its own threshold.
func editFromParams(params map[string]interface{}, snap int) (model.Edit, error) {
	e := model.Edit{
		Output:    stringParam(params, "output", ""),
		Enable:    boolParam(params, "enable", false),
		Disable:   boolParam(params, "disable", false),
		Primary:   boolParam(params, "primary", false),
		NoPrimary: boolParam(params, "no_primary", false),
		Mode:      stringParam(params, "mode", ""),
		Rotate:    stringParam(params, "rotate", ""),
		ScaleMode: stringParam(params, "scale_mode", ""),
		ReplicaOf: stringParam(params, "replica_of", ""),
	}
	if pos := stringParam(params, "pos", ""); pos != "" {
		x, y, err := model.ParsePosition(pos)
		if err != nil {
			return e, err
		}
		e.HasPos, e.X, e.Y = true, x, y
		e.Snap = intParam(params, "snap", snap)
	}
	if scale := stringParam(params, "scale", ""); scale != "" {
		h, v, err := model.ParseScale(scale)
		if err != nil {
			return e, err
		}
		e.ScaleX, e.ScaleY = h, v
	}
	return e, nil
}

package html5

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/goliatone/go-quizgen/pkg/model"
)

// templateFuncs returns the built-in helpers merged with extra; extra wins.
//
//	{{ total_points|points }} -> "20 points"
func templateFuncs(extra map[string]any) map[string]any {
	funcs := map[string]any{
		"points": pointsFilter,
	}
	maps.Copy(funcs, extra)
	return funcs
}

func pointsFilter(input any, _ any) (any, error) {
	switch v := input.(type) {
	case float64:
		return model.FormatPoints(v), nil
	case int:
		return model.FormatPoints(float64(v)), nil
	case string:
		total, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("points: %q is not a number", v)
		}
		return model.FormatPoints(total), nil
	default:
		return nil, fmt.Errorf("points: unsupported value %T", input)
	}
}

package core

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// QueryMoods evaluates a jq expression over the mood entries and returns every emitted value.
func QueryMoods(moods []MoodEntry, expr string) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}

	if moods == nil {
		moods = []MoodEntry{}
	}
	// gojq only accepts generic JSON values
	data, err := json.Marshal(moods)
	if err != nil {
		return nil, err
	}
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, err
	}

	values := []any{}
	iter := query.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, fmt.Errorf("query %q failed: %w", expr, err)
		}
		values = append(values, v)
	}
	return values, nil
}

package sales

import (
	"strconv"
	"strings"
)

// ParseCarModel interprets free-form text as a car model. The input is either
// the model's numeric index ("0".."3") or its canonical name, matched
// case-insensitively. A string that parses as an integer is only ever treated
// as an index: an out-of-range number fails with INVALID_MODEL_INDEX and is
// never retried against the names.
func ParseCarModel(input string) (CarModel, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, errEmptyCarModel()
	}

	if index, err := strconv.Atoi(trimmed); err == nil {
		model := CarModel(index)
		if !model.Valid() {
			return 0, errInvalidModelIndex(index)
		}
		return model, nil
	}

	for _, model := range CarModels() {
		if strings.EqualFold(trimmed, model.String()) {
			return model, nil
		}
	}
	return 0, errInvalidModelName(input)
}

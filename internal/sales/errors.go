package sales

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/noah-isme/backend-carsales/internal/common"
)

// Error codes surfaced to API clients. All four classify bad request input;
// anything else reaching a handler is an internal failure.
const (
	CodeEmptyCarModel     = "EMPTY_CAR_MODEL"
	CodeInvalidModelIndex = "INVALID_MODEL_INDEX"
	CodeInvalidModelName  = "INVALID_MODEL_NAME"
	CodeCenterNotFound    = "CENTER_NOT_FOUND"
)

func errEmptyCarModel() *common.AppError {
	return common.NewAppError(CodeEmptyCarModel, "car model must not be empty", http.StatusBadRequest, nil)
}

func errInvalidModelIndex(index int) *common.AppError {
	return common.NewAppError(
		CodeInvalidModelIndex,
		fmt.Sprintf("model index %d is out of range; valid values are 0 (Sedan), 1 (SUV), 2 (Offroad), 3 (Sport)", index),
		http.StatusBadRequest,
		nil,
	)
}

func errInvalidModelName(input string) *common.AppError {
	names := make([]string, 0, len(carModelNames))
	names = append(names, carModelNames[:]...)
	return common.NewAppError(
		CodeInvalidModelName,
		fmt.Sprintf("unknown car model %q; valid models are: %s", input, strings.Join(names, ", ")),
		http.StatusBadRequest,
		nil,
	)
}

func errCenterNotFound(id int) *common.AppError {
	return common.NewAppError(
		CodeCenterNotFound,
		fmt.Sprintf("distribution center %d does not exist", id),
		http.StatusBadRequest,
		nil,
	)
}

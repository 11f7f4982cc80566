package handler

import (
	"errors"
	"net/http"
	"strconv"

	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"

	"github.com/gorilla/mux"
)

// statusByKind maps usecase failure kinds to HTTP status codes
var statusByKind = map[usecase.ErrorKind]int{
	usecase.KindNotFound:            http.StatusNotFound,
	usecase.KindUnknownPatient:      http.StatusUnprocessableEntity,
	usecase.KindUnknownDoctor:       http.StatusUnprocessableEntity,
	usecase.KindDuplicateIdentifier: http.StatusConflict,
	usecase.KindHasDependents:       http.StatusConflict,
	usecase.KindInvalidDate:         http.StatusBadRequest,
	usecase.KindInvalidDateTime:     http.StatusBadRequest,
}

// writeError renders err with its precise message. Storage failures and
// unexpected errors become 500 with fallback as message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var ue *usecase.Error
	if !errors.As(err, &ue) || ue.Kind == usecase.KindStorageFailure {
		response.InternalServerError(w, fallback)
		return
	}

	status, ok := statusByKind[ue.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	response.Kind(w, status, string(ue.Kind), ue.Error())
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

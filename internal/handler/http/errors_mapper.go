package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                 http.StatusBadRequest,
	service.ErrWrongPassword:                       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:             http.StatusUnauthorized,
	service.ErrValidationNoContactsProvided:        http.StatusBadRequest,
	service.ErrValidationNoDownloadRequestProvided: http.StatusBadRequest,
	service.ErrValidationNoUpdateRequestsProvided:  http.StatusBadRequest,
	service.ErrValidationNoDeleteRequestsProvided:  http.StatusBadRequest,
	service.ErrValidationNoUserID:                  http.StatusBadRequest,

	store.ErrLoginAlreadyExists:   http.StatusConflict,
	store.ErrUserNotFound:         http.StatusNotFound,
	store.ErrContactNotSaved:      http.StatusInternalServerError,
	store.ErrContactNotFound:      http.StatusNotFound,
	store.ErrContactAlreadyExists: http.StatusConflict,
	store.ErrVersionConflict:      http.StatusConflict,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package controllers

import (
	"net/http"

	"github.com/angelmondragon/gash-demo/api/responses"
	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/angelmondragon/gash-demo/pkg/logger"
)

// notFoundStyle picks the envelope a route family uses for a missing record.
type notFoundStyle int

const (
	// `{success:false, message}`
	notFoundSuccess notFoundStyle = iota
	// `{message}`
	notFoundMessage
)

func writeLookupError(w http.ResponseWriter, r *http.Request, logg *logger.Logger, err error, style notFoundStyle) {
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		responses.WriteError(r.Context(), logg, w, err)
		return
	}
	if style == notFoundMessage {
		responses.WriteMessage(w, http.StatusNotFound, typed.Message())
		return
	}
	responses.WriteNotFound(w, typed.Message())
}

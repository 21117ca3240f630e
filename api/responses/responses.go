package responses

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	pkgerrors "github.com/angelmondragon/gash-demo/pkg/errors"
	"github.com/angelmondragon/gash-demo/pkg/logger"
	"github.com/angelmondragon/gash-demo/pkg/types"
)

// emptyObject renders as `{}`.
var emptyObject = struct{}{}

// WriteData writes `200 {data}`.
func WriteData(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, types.Envelope{Data: data})
}

// WriteSuccess writes `200 {success:true, data}`.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, types.Envelope{Success: types.Bool(true), Data: data})
}

// WriteSuccessMessage writes `status {success:true, message, data}`.
func WriteSuccessMessage(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, types.Envelope{Success: types.Bool(true), Message: message, Data: data})
}

// WriteAck writes the demo acknowledgement `{success:true, message, data:{}}`.
func WriteAck(w http.ResponseWriter, message string) {
	WriteSuccessMessage(w, http.StatusOK, message, emptyObject)
}

// WriteMessage writes `status {message}`.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, types.Envelope{Message: message})
}

// WriteNotFound writes `404 {success:false, message}`.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusNotFound, types.Envelope{Success: types.Bool(false), Message: message})
}

func WriteError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if m := typed.Message(); meta.ShowMessage && m != "" {
		msg = m
	}

	payload := types.ErrorEnvelope{
		Success: false,
		Message: msg,
		Code:    string(typed.Code()),
	}

	if meta.DetailsAllowed {
		if details := typed.Details(); details != nil {
			payload.Details = details
		}
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, pkgerrors.Dump(err).Fields())
		if meta.HTTPStatus >= http.StatusInternalServerError {
			logg.Error(ctx, "request.error", err)
		} else {
			logg.Warn(ctx, "request.rejected")
		}
	}

	WriteJSON(w, meta.HTTPStatus, payload)
}

// WriteJSON encodes payload with the given status. A nil payload writes no body.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}

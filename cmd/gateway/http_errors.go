package main

import (
	"encoding/json"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// httpStatusFromGRPC maps an upstream error to an HTTP status, a stable error
// code and a client-facing message.
func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", "upstream unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func writeJSON(w http.ResponseWriter, httpStatus int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, httpStatus int, code, msg string) {
	writeJSON(w, httpStatus, errorBody{Error: code, Message: msg})
}

func writeGRPCError(w http.ResponseWriter, err error) {
	httpStatus, code, msg := httpStatusFromGRPC(err)
	writeError(w, httpStatus, code, msg)
}

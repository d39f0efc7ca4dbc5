package response

import (
	"encoding/json"
	"net/http"
)

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

type Error struct {
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

func RenderValidationError(rw http.ResponseWriter, msg string) {
	RenderError(rw, CodeBadRequest, msg, http.StatusUnprocessableEntity)
}

func RenderInternalError(rw http.ResponseWriter) {
	RenderError(rw, CodeInternal, "internal error", http.StatusInternalServerError)
}

func RenderError(rw http.ResponseWriter, code string, msg string, status int) {
	Render(rw, Error{Code: code, Status: status, Message: msg}, status)
}

func RenderNoContent(rw http.ResponseWriter) {
	rw.WriteHeader(http.StatusNoContent)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}

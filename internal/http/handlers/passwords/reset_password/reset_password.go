package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/core/services"
	resetpassword "roleplay/internal/core/services/reset_password"
	"roleplay/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.Password, validation.Required, validation.Length(4, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderValidationError(rw, "invalid request data")
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err.Error())
		return
	}

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Token:       user.ResetToken(input.Token),
			NewPassword: user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, user.ErrResetTokenDoesNotExist) {
		response.RenderError(rw, response.CodeBadRequest, "token not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrResetTokenExpired) {
		response.RenderError(rw, response.CodeTokenExpired, "token has expired", http.StatusGone)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderNoContent(rw)
}

package forgotpassword

import (
	"encoding/json"
	"io"
	"net/http"
	c "roleplay/internal/core/domain/common"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/services"
	service "roleplay/internal/core/services/send_password_reset_token"
	"roleplay/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[service.Input, service.Result]
	isTestMode bool
}

func New(
	service services.Service[service.Input, service.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email            string `json:"email"`
	ResetPasswordURL string `json:"resetPasswordUrl"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.ResetPasswordURL, validation.Required, validation.Length(0, 1024)),
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

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Email:            c.NewEmail(input.Email),
			ResetPasswordURL: input.ResetPasswordURL,
		},
	)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode && result.Token != "" {
		rw.Header().Set("x-test-password-reset-token", string(result.Token))
	}
	response.RenderNoContent(rw)
}

package createuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "roleplay/internal/core/domain/common"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/core/services"
	createuser "roleplay/internal/core/services/create_user"
	"roleplay/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[createuser.Input, createuser.Result]
}

func New(
	service services.Service[createuser.Input, createuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Username, validation.Required, validation.Length(1, 255)),
		validation.Field(&i.Password, validation.Required, validation.Length(4, 256)),
		validation.Field(&i.Avatar, is.URL),
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
		createuser.Input{
			Email:    c.NewEmail(input.Email),
			Username: user.Username(input.Username),
			Password: user.RawPassword(input.Password),
			Avatar:   c.NewOptional(input.Avatar, input.Avatar != ""),
		},
	)
	if errors.Is(err, user.ErrEmailAlreadyExists) || errors.Is(err, user.ErrUsernameAlreadyExists) {
		response.RenderError(rw, response.CodeBadRequest, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	createdUser := response.User{}
	createdUser.FromDomainUser(result.User)
	response.Render(rw, response.UserResult{User: createdUser}, http.StatusCreated)
}

package updateuser

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "roleplay/internal/core/domain/common"
	e "roleplay/internal/core/domain/errors"
	"roleplay/internal/core/domain/user"
	"roleplay/internal/core/services"
	updateuser "roleplay/internal/core/services/update_user"
	"roleplay/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service services.Service[updateuser.Input, updateuser.Result]
}

func New(
	service services.Service[updateuser.Input, updateuser.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email    string `json:"email"`
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
		validation.Field(&i.Password, validation.Required, validation.Length(4, 256)),
		validation.Field(&i.Avatar, validation.Required, is.URL),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawUserID := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil {
		response.RenderError(rw, response.CodeBadRequest, "user does not exist", http.StatusNotFound)
		return
	}

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
		updateuser.Input{
			UserID:   user.ID(userID),
			Email:    c.NewEmail(input.Email),
			Password: user.RawPassword(input.Password),
			Avatar:   c.NewOptional(input.Avatar, true),
		},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderError(rw, response.CodeBadRequest, "user does not exist", http.StatusNotFound)
		return
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		response.RenderError(rw, response.CodeBadRequest, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	updatedUser := response.User{}
	updatedUser.FromDomainUser(result.User)
	response.Render(rw, response.UserResult{User: updatedUser}, http.StatusOK)
}

package app

import (
	"fmt"
	"net/http"
	"roleplay/internal/app/deps"
	"roleplay/internal/app/services"
	forgotpassword "roleplay/internal/http/handlers/passwords/forgot_password"
	resetpassword "roleplay/internal/http/handlers/passwords/reset_password"
	createuser "roleplay/internal/http/handlers/users/create_user"
	updateuser "roleplay/internal/http/handlers/users/update_user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	router.Method(http.MethodPost, "/users", createuser.New(s.CreateUser))
	router.Method(http.MethodPut, "/users/{userID:[0-9]+}", updateuser.New(s.UpdateUser))
	router.Method(http.MethodPost, "/forgot-password", forgotpassword.New(s.SendPasswordResetToken, isTestMode))
	router.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}

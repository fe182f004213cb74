package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
)

type CreateUserRequest struct {
	Username          string  `json:"username"`
	Password          string  `json:"password"`
	RoleID            int     `json:"role_id"`
	SalespersonFilter *string `json:"salesperson_filter"`
}

// CreateUser cadastra um usuário novo. Somente o master acessa esta rota.
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := authenticating.ValidatePasswordStrength(req.Password); err != nil {
			writeServiceError(w, err, "Senha inválida")
			return
		}

		user, err := service.CreateUser(&domain.User{
			Username:          req.Username,
			PasswordHash:      req.Password,
			Active:            true,
			RoleID:            req.RoleID,
			SalespersonFilter: req.SalespersonFilter,
		})
		if err != nil {
			writeServiceError(w, err, "Erro ao criar usuário")
			return
		}

		user.PasswordHash = ""
		writeJSON(w, http.StatusCreated, user)
	}
}

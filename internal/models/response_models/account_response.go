package response_models

import "raahi/internal/models/db_models"

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	User  AccountResponse `json:"user"`
	Token string          `json:"token"`
}

func NewAccountResponse(account *db_models.Account) AccountResponse {
	return AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}
}

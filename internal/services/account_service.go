package services

import (
	"context"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"raahi/internal/models/db_models"
	"raahi/internal/models/request_models"
	"raahi/internal/models/response_models"
	"raahi/internal/repositories"
	mem "raahi/pkg/memcache"
	"raahi/pkg/utils"
)

type AccountServiceInterface interface {
	Signup(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error)
	Authenticate(ctx context.Context, token string) (*db_models.Account, error)
	UpdateAccount(ctx context.Context, account *db_models.Account, request request_models.UpdateAccountRequest) (response_models.AccountResponse, error)
	Logout(ctx context.Context, token string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	denylist    mem.TokenDenylist
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, denylist mem.TokenDenylist) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		denylist:    denylist,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const (
	minNameLength     = 2
	maxNameLength     = 60
	minPasswordLength = 6
)

func validateName(name string) error {
	if n := len([]rune(name)); n < minNameLength || n > maxNameLength {
		return fmt.Errorf("%w: valid name is required", utils.ErrInvalidInput)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least 6 characters", utils.ErrInvalidInput)
	}
	return nil
}

func (a *AccountService) Signup(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error) {
	name := strings.TrimSpace(request.DisplayName())
	if err := validateName(name); err != nil {
		return response_models.AuthResponse{}, err
	}
	email := normalizeEmail(request.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return response_models.AuthResponse{}, fmt.Errorf("%w: valid email is required", utils.ErrInvalidInput)
	}
	if err := validatePassword(request.Password); err != nil {
		return response_models.AuthResponse{}, err
	}

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Error finding account: %v", err)
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.AuthResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	account := &db_models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		log.Printf("Error creating account: %v", err)
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	return a.issue(account)
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		log.Printf("Error finding account: %v", err)
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	log.Printf("Login for %s took %s", account.ID, time.Since(startTime))
	return a.issue(account)
}

func (a *AccountService) issue(account *db_models.Account) (response_models.AuthResponse, error) {
	token, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		return response_models.AuthResponse{}, fmt.Errorf("sign token: %w", err)
	}
	return response_models.AuthResponse{
		User:  response_models.NewAccountResponse(account),
		Token: token,
	}, nil
}

// Authenticate resolves a bearer token to the live account it was issued for.
func (a *AccountService) Authenticate(ctx context.Context, token string) (*db_models.Account, error) {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}

	revoked, err := a.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.Printf("Error checking token denylist: %v", err)
		return nil, utils.ErrUnauthorized
	}
	if revoked {
		return nil, utils.ErrUnauthorized
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	account, err := a.accountRepo.FindById(ctx, accountID.String())
	if err != nil {
		log.Printf("Error finding account: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrUnauthorized
	}
	return account, nil
}

func (a *AccountService) UpdateAccount(ctx context.Context, account *db_models.Account, request request_models.UpdateAccountRequest) (response_models.AccountResponse, error) {
	var name string
	if request.Name != nil {
		name = strings.TrimSpace(*request.Name)
		if err := validateName(name); err != nil {
			return response_models.AccountResponse{}, err
		}
	}
	if request.Password != nil {
		if err := validatePassword(*request.Password); err != nil {
			return response_models.AccountResponse{}, err
		}
	}

	if request.Name != nil {
		account.Name = name
	}
	if request.Password != nil {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return response_models.AccountResponse{}, fmt.Errorf("hash password: %w", err)
		}
		account.PasswordHash = hashedPassword
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		log.Printf("Error updating account: %v", err)
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	return response_models.NewAccountResponse(account), nil
}

// Logout revokes token for the rest of its lifetime. Tokens that no longer
// validate are ignored.
func (a *AccountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := a.tokens.ValidateToken(token)
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := a.denylist.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		log.Printf("Error revoking token: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

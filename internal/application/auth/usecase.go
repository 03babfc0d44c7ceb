package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/estoque-pro/estoque-api/internal/application/dto"
	"github.com/estoque-pro/estoque-api/internal/domain"
	"github.com/estoque-pro/estoque-api/internal/domain/entity"
	"github.com/estoque-pro/estoque-api/internal/domain/repository"
	"github.com/estoque-pro/estoque-api/pkg/jwt"
)

// UseCase autentica usuários e revoga tokens via blacklist com TTL.
type UseCase struct {
	userRepo  repository.UserRepository
	blacklist TokenBlacklist
	secret    string
	issuer    string
	expMin    int
}

// NewUseCase constrói o caso de uso de autenticação.
func NewUseCase(userRepo repository.UserRepository, blacklist TokenBlacklist, secret, issuer string, expMinutes int) *UseCase {
	return &UseCase{
		userRepo:  userRepo,
		blacklist: blacklist,
		secret:    secret,
		issuer:    issuer,
		expMin:    expMinutes,
	}
}

// Login valida email+senha e emite um JWT com user_id e role nas claims.
// Credencial errada e usuário inexistente produzem o mesmo ErrUnauthorized.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.secret, user.ID, user.Role, uc.issuer, uc.expMin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// Logout coloca o token na blacklist pelo tempo de vida que ainda lhe resta.
// Token já expirado ou ilegível não precisa de revogação.
func (uc *UseCase) Logout(ctx context.Context, token string) error {
	claims, err := jwt.Parse(uc.secret, token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return uc.blacklist.Add(ctx, token, ttl)
}

// IsRevoked informa se o token foi revogado por logout.
func (uc *UseCase) IsRevoked(ctx context.Context, token string) (bool, error) {
	return uc.blacklist.IsBlacklisted(ctx, token)
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		CPF:         u.CPF,
		Birthday:    u.Birthday,
		CEP:         u.CEP,
		PhoneNumber: u.PhoneNumber,
		Email:       u.Email,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

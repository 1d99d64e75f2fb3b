package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"training-portal-backend/internal/domain"
	"training-portal-backend/internal/repository"
	"training-portal-backend/internal/security"
)

type authService struct {
	userRepo    repository.UserRepository
	partnerRepo repository.PartnerRepository
	tokens      security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, partnerRepo repository.PartnerRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		tokens:      tokens,
	}
}

// Login authenticates by email and password for the requested role. The same
// "invalid credentials" answer covers unknown email, wrong password and wrong
// role so the endpoint does not leak which one failed. Partner logins are
// additionally gated on registration approval and account status.
func (s *authService) Login(ctx context.Context, email, password string, role domain.Role) (*domain.User, *domain.Partner, string, error) {
	if role != domain.RoleAdmin && role != domain.RolePartner {
		return nil, nil, "", domain.NewValidationError("role", fmt.Sprintf("invalid role: %s", role))
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.Role != role {
		return nil, nil, "", domain.NewAuthorizationError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, "", domain.NewAuthorizationError("invalid credentials")
	}

	var partner *domain.Partner
	if user.Role == domain.RolePartner {
		partner, err = s.partnerRepo.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, nil, "", err
		}
		if partner.AccountStatus == domain.AccountBlocked {
			return nil, nil, "", domain.NewAuthorizationError("partner account is blocked")
		}
		if partner.RegistrationStatus != domain.RegistrationApproved {
			return nil, nil, "", domain.NewAuthorizationError("partner registration is not approved")
		}
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, partner, token, nil
}

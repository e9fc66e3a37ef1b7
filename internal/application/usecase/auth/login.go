package auth

import (
	"context"
	"crypto/subtle"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/Sameer-B786/portfolio/adapters/persistence"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/auth"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

// LoginUseCase gates the editing surface. The site has exactly one owner, so
// credentials live in configuration instead of a user table. Success issues
// an edit token and records its id as the local session marker; the content
// core itself never checks any of this.
type LoginUseCase struct {
	ownerEmail        string
	ownerPasswordHash string
	jwtSvc            *auth.JWTService
	sessions          *persistence.SessionStore
	logger            logger.Logger
}

func NewLoginUseCase(ownerEmail, ownerPasswordHash string, jwtSvc *auth.JWTService, sessions *persistence.SessionStore, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		ownerEmail:        ownerEmail,
		ownerPasswordHash: ownerPasswordHash,
		jwtSvc:            jwtSvc,
		sessions:          sessions,
		logger:            log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	emailMatch := subtle.ConstantTimeCompare([]byte(input.Email), []byte(uc.ownerEmail)) == 1
	if !emailMatch || !auth.CheckPasswordHash(input.Password, uc.ownerPasswordHash) {
		err := apperror.NewUnauthorized("incorrect email or password", nil)
		span.RecordError(err)
		return nil, err
	}

	token, tokenID, expiresAt, err := uc.jwtSvc.GenerateToken()
	if err != nil {
		uc.logger.Error("Failed to generate token", err)
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	marker := persistence.SessionMarker{
		TokenID:   tokenID,
		IssuedAt:  expiresAt.Add(-uc.jwtSvc.TokenLifespan()),
		ExpiresAt: expiresAt,
	}
	if err := uc.sessions.Put(ctx, marker); err != nil {
		uc.logger.Error("Failed to persist session marker", err)
		span.RecordError(err)
		return nil, err
	}

	uc.logger.Info("owner logged in", zap.String("token_id", tokenID))
	return &LoginOutput{AccessToken: token}, nil
}

// Logout clears the session marker; outstanding tokens stop passing the
// capability check regardless of their remaining lifespan.
func (uc *LoginUseCase) Logout(ctx context.Context) error {
	return uc.sessions.Clear(ctx)
}

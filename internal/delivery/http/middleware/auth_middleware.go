package middleware

import (
	"strings"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// accountContextKey is the echo.Context key holding the authenticated account.
const accountContextKey = "authenticatedAccount"

// AuthMiddleware resolves the bearer token on a request into a live account.
type AuthMiddleware struct {
	tokenService service.TokenService
	accountRepo  repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		accountRepo:  accountRepo,
	}
}

// Authenticate validates the access token and loads the account it names.
// Every failure mode, from a missing header to a deactivated account,
// yields the same unauthenticated error so callers cannot probe which
// stage rejected them.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "missing or malformed authorization header")
		}

		claims, err := m.tokenService.Verify(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "token verification failed")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), claims.AccountID)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "token subject lookup failed")
		}

		if !account.Active {
			return errors.Wrap(domainerrors.ErrUnauthenticated, "account is deactivated")
		}

		c.Set(accountContextKey, account)

		return next(c)
	}
}

// CurrentAccount returns the account placed on the context by Authenticate.
func CurrentAccount(c echo.Context) (*entity.Account, bool) {
	account, ok := c.Get(accountContextKey).(*entity.Account)

	return account, ok
}

// extractBearerToken splits an Authorization header into its token part.
// The scheme comparison is case-insensitive, the token must be non-empty.
func extractBearerToken(header string) (string, bool) {
	const prefix = "bearer "

	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}

	return token, true
}

package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/config"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
)

const principalKey = "principal"

// UserStore is what the auth middleware needs to resolve a principal.
type UserStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)
	GetProviderProfileByUser(ctx context.Context, userID string) (*models.ProviderProfile, error)
}

// Protected verifies the session JWT from the Authorization header or the
// session cookie, syncs the user from its claims and stores the resulting
// access.Principal in the request locals.
func Protected(cfg config.AuthConfig, users UserStore) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:Authorization,cookie:" + cfg.SessionCookie,
		AuthScheme:  "Bearer",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return apperr.Unauthorized("Unauthorized")
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return apperr.Unauthorized("Unauthorized")
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return apperr.Unauthorized("Invalid token claims")
			}

			user, err := userFromClaims(claims)
			if err != nil {
				return apperr.Unauthorized("Invalid token claims")
			}

			ctx := c.UserContext()
			stored, err := syncUser(ctx, users, user)
			if err != nil {
				return apperr.Unexpected("Failed to fetch user", err)
			}

			principal := access.Principal{User: *stored}
			profile, err := users.GetProviderProfileByUser(ctx, stored.ID)
			switch {
			case err == nil:
				principal.Profile = profile
			case !errors.Is(err, repository.ErrNotFound):
				return apperr.Unexpected("Failed to fetch user", err)
			}

			c.Locals(principalKey, principal)
			return c.Next()
		},
	})
}

// syncUser writes the claims only when they differ from the stored row.
func syncUser(ctx context.Context, users UserStore, claimed *models.User) (*models.User, error) {
	stored, err := users.GetUser(ctx, claimed.ID)
	switch {
	case err == nil && sameIdentity(stored, claimed):
		return stored, nil
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}
	return users.UpsertUser(ctx, claimed)
}

func sameIdentity(a, b *models.User) bool {
	if (a.Email == nil) != (b.Email == nil) || (a.Email != nil && *a.Email != *b.Email) {
		return false
	}
	return a.FirstName == b.FirstName &&
		a.LastName == b.LastName &&
		a.ProfileImageURL == b.ProfileImageURL
}

// userFromClaims maps identity-provider claims onto a User. The role is
// left empty so an upsert never changes it.
func userFromClaims(claims jwt.MapClaims) (*models.User, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, fmt.Errorf("no subject in claims")
	}

	user := &models.User{
		ID:              sub,
		FirstName:       stringClaim(claims, "first_name"),
		LastName:        stringClaim(claims, "last_name"),
		ProfileImageURL: stringClaim(claims, "profile_image_url"),
	}
	if email := stringClaim(claims, "email"); email != "" {
		user.Email = &email
	}
	return user, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

// CurrentPrincipal returns the caller set by Protected.
func CurrentPrincipal(c *fiber.Ctx) (access.Principal, error) {
	p, ok := c.Locals(principalKey).(access.Principal)
	if !ok {
		return access.Principal{}, apperr.Unauthorized("Unauthorized")
	}
	return p, nil
}

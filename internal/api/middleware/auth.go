package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jil-inventory/inventory-api/internal/api/handler/v1/response"
	"github.com/jil-inventory/inventory-api/internal/pkg/jwthelper"
)

const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

var (
	errMissingToken   = errors.New("missing bearer token")
	errMalformedToken = errors.New("authorization header must be 'Bearer <token>'")
)

type Authenticator struct {
	jwtSigningKey []byte
}

func NewAuthenticator(jwtSigningKey string) *Authenticator {
	return &Authenticator{
		jwtSigningKey: []byte(jwtSigningKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		if err := a.authenticate(ctx, header); err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Next()
	}
}

// OptionalJWT lets anonymous requests through but still rejects a token that
// is present and invalid.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}

		if err := a.authenticate(ctx, header); err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		ctx.Next()
	}
}

func (a *Authenticator) authenticate(ctx *gin.Context, header string) error {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return errMalformedToken
	}

	claims, err := jwthelper.ParseToken(a.jwtSigningKey, strings.TrimSpace(token))
	if err != nil {
		return err
	}

	ctx.Set(ContextKeyUserID, claims.UserID)
	ctx.Set(ContextKeyRole, claims.Role)

	return nil
}

// UserID returns the authenticated user, if any.
func UserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)

	return id, ok && id != 0
}

package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shenikar/wildfire_risk_service/internal/config"
	"github.com/shenikar/wildfire_risk_service/internal/models"
	"github.com/shenikar/wildfire_risk_service/internal/service"
	"github.com/sirupsen/logrus"
)

const currentUserKey = "currentUser"

// tokenClaims are the JWT claims carried by issued bearer tokens.
type tokenClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// issueToken signs a bearer token for the user.
func issueToken(user *models.User, secret string, ttl time.Duration, now time.Time) (string, error) {
	claims := tokenClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// parseToken validates a bearer token and returns its claims.
func parseToken(tokenString, secret string) (*tokenClaims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// JWTAuthMiddleware validates the Authorization bearer token and loads the
// account it belongs to into the request context. The account is re-read on
// every request so deactivation and privilege changes take effect
// immediately.
func JWTAuthMiddleware(cfg *config.Config, users service.UserService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		claims, err := parseToken(strings.TrimPrefix(authHeader, "Bearer "), cfg.JWTSecret)
		if err != nil {
			log.WithError(err).Warn("Invalid bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := users.GetUser(c.Request.Context(), claims.UserID)
		if err != nil {
			log.WithError(err).WithField("user_id", claims.UserID).Warn("Token user not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is inactive"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireSuperuser rejects requests whose authenticated user lacks superuser
// privilege. Must run after JWTAuthMiddleware.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "superuser privilege required"})
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated user placed by JWTAuthMiddleware,
// or nil outside an authenticated route.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// @Summary Obtain a bearer token
// @Description Exchange email and password for a signed JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 403 {object} map[string]string "Account inactive"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	token, err := issueToken(user, h.cfg.JWTSecret, h.cfg.TokenTTL, time.Now())
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

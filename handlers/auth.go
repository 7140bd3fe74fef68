package handlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/Dirk1989/ideal-car/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// loginFailureDelay slows brute-force attempts; shortened in tests.
var loginFailureDelay = time.Second

// Claims represents the admin session token claims
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Login checks the submitted credentials against the environment-configured
// admin account and issues a signed session token.
func Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	cfg := config.AppConfig
	usernameMatch := secureCompare(req.Username, cfg.AdminUsername)
	passwordMatch := verifyAdminPassword(req.Password)

	if usernameMatch && passwordMatch {
		expiresAt := time.Now().Add(sessionTTL)
		token, err := generateAdminToken(cfg.AdminUsername, expiresAt)
		if err != nil {
			log.WithError(err).Error("failed to sign session token")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"token":     token,
			"expiresAt": expiresAt.UnixMilli(),
			"user": gin.H{
				"username": cfg.AdminUsername,
				"role":     "admin",
			},
		})
		return
	}

	// Delay failed attempts to blunt brute forcing
	time.Sleep(loginFailureDelay)

	c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
}

// AdminAuthMiddleware validates admin session tokens. Mounted on every
// admin-mutating route; the browser UI alone is not trusted to gate access.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})

		if err != nil || !token.Valid || claims.Role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("admin_user", claims.Username)
		c.Next()
	}
}

func generateAdminToken(username string, expiresAt time.Time) (string, error) {
	claims := &Claims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// verifyAdminPassword prefers a bcrypt hash when one is configured and falls
// back to a constant-time comparison against the plaintext env value. An
// unset password rejects every attempt.
func verifyAdminPassword(password string) bool {
	cfg := config.AppConfig

	if cfg.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(password)) == nil
	}
	if cfg.AdminPassword == "" {
		return false
	}
	return secureCompare(password, cfg.AdminPassword)
}

// secureCompare hashes both inputs before the constant-time comparison so the
// comparison length never leaks.
func secureCompare(a, b string) bool {
	ah := sha256.Sum256([]byte(a))
	bh := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ah[:], bh[:]) == 1
}

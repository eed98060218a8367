package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const roleController = "controller"

var (
	ErrInvalidPIN   = errors.New("invalid pin")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is what a verified controller token carries.
type Claims struct {
	Role      string
	SessionID string
	ExpiresAt time.Time
}

// Manager issues and verifies controller tokens. A browser that holds one
// drives the human paddle; everyone else only watches.
type Manager struct {
	secret  []byte
	pinHash string
	ttl     time.Duration
}

// NewManager returns a Manager. An empty pinHash lets anyone take control.
func NewManager(secret, pinHash string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Manager{secret: []byte(secret), pinHash: pinHash, ttl: ttl}
}

// PINRequired reports whether Issue checks the PIN.
func (m *Manager) PINRequired() bool {
	return m.pinHash != ""
}

// Issue checks pin and returns a signed HS256 token.
func (m *Manager) Issue(pin string) (string, time.Time, error) {
	if m.pinHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(m.pinHash), []byte(pin)); err != nil {
			log.Printf("[SESSION] Rejected controller PIN")
			return "", time.Time{}, ErrInvalidPIN
		}
	}

	exp := time.Now().Add(m.ttl)
	sid := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": roleController,
		"sid":  sid,
		"exp":  jwt.NewNumericDate(exp).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Printf("[SESSION] Issued controller session %s (expires %s)", sid, exp.Format(time.RFC3339))
	return signed, exp, nil
}

// Verify parses token and returns its claims. Expired, tampered or
// non-controller tokens yield ErrInvalidToken.
func (m *Manager) Verify(token string) (Claims, error) {
	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	role, _ := mc["role"].(string)
	sid, _ := mc["sid"].(string)
	expf, _ := mc["exp"].(float64)
	if role != roleController || sid == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		Role:      role,
		SessionID: sid,
		ExpiresAt: time.Unix(int64(expf), 0),
	}, nil
}

// HashPIN returns a bcrypt hash suitable for CONTROLLER_PIN_HASH.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash pin: %w", err)
	}
	return string(hash), nil
}

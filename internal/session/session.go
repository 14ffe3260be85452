// Package session tracks the logged-in role. Login is a role pick with an
// optional passcode; the provider hands out a signed token that later runs
// verify before the state manager is allowed to hydrate.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"capstone-hub/config"
	"capstone-hub/internal/model"
)

var (
	// ErrUnknownRole is returned for a role outside the fixed set.
	ErrUnknownRole = errors.New("unknown role")
	// ErrBadPasscode signals a failed passcode check for a protected role.
	ErrBadPasscode = errors.New("wrong passcode")
	// ErrBadToken signals an unparseable, expired or tampered token.
	ErrBadToken = errors.New("invalid token")
	// ErrTooManyAttempts signals login rate limiting kicked in.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

// Claims carry the identity and role of an active session.
type Claims struct {
	Identity string `json:"uid"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Provider issues and verifies session tokens.
type Provider struct {
	secret    string
	ttl       time.Duration
	passcodes map[string]string // role -> bcrypt hash
	log       *zap.SugaredLogger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewProvider(cfg config.SessionConfig, log *zap.SugaredLogger) *Provider {
	return &Provider{
		secret:    cfg.Secret,
		ttl:       cfg.TokenTTL,
		passcodes: cfg.Passcodes,
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		rps:       rate.Limit(cfg.LoginRPS),
		burst:     cfg.LoginBurst,
	}
}

// limiter tracks login attempts per role.
func (p *Provider) limiter(role string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()
	if l, ok := p.limiters[role]; ok {
		return l
	}
	l := rate.NewLimiter(p.rps, p.burst)
	p.limiters[role] = l
	return l
}

// Login checks the role (and its passcode when one is configured) and
// returns a signed token plus the role's fixed identity.
func (p *Provider) Login(role, passcode string) (token, identity string, err error) {
	identity = model.IdentityFor(role)
	if identity == "" {
		return "", "", ErrUnknownRole
	}
	if !p.limiter(role).Allow() {
		p.log.Warnw("login throttled", "role", role)
		return "", "", ErrTooManyAttempts
	}
	if hash, ok := p.passcodes[role]; ok {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)) != nil {
			return "", "", ErrBadPasscode
		}
	}

	c := Claims{
		Identity: identity,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(p.secret))
	if err != nil {
		return "", "", err
	}
	p.log.Infow("session started", "role", role, "identity", identity)
	return token, identity, nil
}

// Verify parses and validates a session token.
func (p *Provider) Verify(raw string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return []byte(p.secret), nil
	})
	if err != nil {
		return nil, ErrBadToken
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return c, nil
}

// HashPasscode produces the bcrypt hash stored in config for a role.
func HashPasscode(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

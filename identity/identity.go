// Package identity 会话与登录。对外只有一个 Provider，登录结果用 HS256 token 表示。
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"Rozi/config"
	"Rozi/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Anonymous 未登录时的投票人 ID
const Anonymous = "anonymous"

var ErrInvalidToken = errors.New("invalid token")

// Provider 身份提供方
type Provider interface {
	Session(ctx context.Context) model.Session
	Login(ctx context.Context) (model.Session, string, error)
	Logout(ctx context.Context) error
}

type claims struct {
	Address     string `json:"addr"`
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

// TokenProvider 给演示用户签发 token，并校验请求带来的 token
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
	user   model.User
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // jti -> 过期时间
}

func NewTokenProvider(c config.IdentityConf) *TokenProvider {
	return &TokenProvider{
		secret: []byte(c.Secret),
		ttl:    c.TokenTTL,
		user: model.User{
			ID:          c.UserID,
			Address:     c.Address,
			DisplayName: c.DisplayName,
		},
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

// Issue 为用户签发 token
func (p *TokenProvider) Issue(u model.User) (string, error) {
	now := p.now()
	c := claims{
		Address:     u.Address,
		DisplayName: u.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(p.secret)
}

// Parse 校验签名、过期时间和吊销列表
func (p *TokenProvider) Parse(token string) (model.User, string, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if err != nil {
		return model.User{}, "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if p.isRevoked(c.ID) {
		return model.User{}, "", fmt.Errorf("%w: revoked", ErrInvalidToken)
	}
	return model.User{ID: c.Subject, Address: c.Address, DisplayName: c.DisplayName}, c.ID, nil
}

func (p *TokenProvider) Session(ctx context.Context) model.Session {
	return SessionFrom(ctx)
}

// Login 登录演示用户，返回新会话和 token
func (p *TokenProvider) Login(ctx context.Context) (model.Session, string, error) {
	token, err := p.Issue(p.user)
	if err != nil {
		return model.Session{}, "", fmt.Errorf("issue token: %w", err)
	}
	u := p.user
	log.WithField("user", u.ID).Info("user logged in")
	return model.Session{IsLoggedIn: true, User: &u}, token, nil
}

// Logout 吊销当前请求的 token，未登录时什么都不做
func (p *TokenProvider) Logout(ctx context.Context) error {
	id := tokenIDFrom(ctx)
	if id == "" {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	for jti, exp := range p.revoked {
		if exp.Before(now) {
			delete(p.revoked, jti)
		}
	}
	p.revoked[id] = now.Add(p.ttl)
	return nil
}

func (p *TokenProvider) isRevoked(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.revoked[id]
	return ok
}

// Middleware 解析 Authorization: Bearer，无效 token 按匿名处理
func (p *TokenProvider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		u, id, err := p.Parse(strings.TrimSpace(raw))
		if err != nil {
			log.Debugf("drop bearer token: %v", err)
			next.ServeHTTP(w, r)
			return
		}
		ctx := WithSession(r.Context(), model.Session{IsLoggedIn: true, User: &u}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type ctxKey struct{}

type ctxValue struct {
	session model.Session
	tokenID string
}

// WithSession 把会话放进 context
func WithSession(ctx context.Context, s model.Session, tokenID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ctxValue{session: s, tokenID: tokenID})
}

// SessionFrom 取不到时返回未登录会话
func SessionFrom(ctx context.Context) model.Session {
	v, _ := ctx.Value(ctxKey{}).(ctxValue)
	return v.session
}

func tokenIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(ctxValue)
	return v.tokenID
}

// VoterID 会话对应的投票人
func VoterID(s model.Session) string {
	if !s.IsLoggedIn || s.User == nil || s.User.ID == "" {
		return Anonymous
	}
	return s.User.ID
}

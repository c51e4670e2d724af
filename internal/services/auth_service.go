package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
	"tr4cking/internal/repositories"
	"tr4cking/internal/utils"
)

// ErrCredenciales cubre usuario inexistente, inactivo o password
// incorrecto con un solo mensaje; el login no distingue cuál falló.
var ErrCredenciales = domain.ValidationError{Campo: "credenciales", Msg: "usuario o contraseña incorrectos"}

// AuthService maneja login, refresh y logout. El access token es un
// JWT HS256 corto; el refresh token es aleatorio y se guarda hasheado.
type AuthService struct {
	UsuarioRepo repositories.UsuarioRepository
	TokenRepo   repositories.TokenRepository

	JWTSecret  []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	RequestID  string
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Rol     string `json:"rol"`
}

func (s AuthService) Login(ctx context.Context, username, password string) (TokenPair, error) {
	var out TokenPair

	usuario, hash, err := s.UsuarioRepo.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return out, ErrCredenciales
		}
		return out, err
	}
	if !usuario.Activo {
		return out, ErrCredenciales
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return out, ErrCredenciales
	}

	return s.emitir(ctx, usuario)
}

// Refresh canjea un refresh token vigente por un par nuevo. El token
// usado se revoca: cada refresh rota el token.
func (s AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	var out TokenPair

	usuarioID, err := s.TokenRepo.Validate(ctx, refreshToken)
	if err != nil {
		if domain.IsNotFound(err) {
			return out, ErrCredenciales
		}
		return out, err
	}
	usuario, err := s.UsuarioRepo.GetByID(ctx, usuarioID)
	if err != nil {
		return out, err
	}
	if !usuario.Activo {
		return out, ErrCredenciales
	}
	if err := s.TokenRepo.Revoke(ctx, refreshToken); err != nil {
		return out, err
	}
	return s.emitir(ctx, usuario)
}

func (s AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.TokenRepo.Revoke(ctx, refreshToken)
}

func (s AuthService) emitir(ctx context.Context, usuario models.Usuario) (TokenPair, error) {
	var out TokenPair

	claims := jwt.MapClaims{
		"user_id": usuario.ID,
		"rol":     usuario.Rol,
		"exp":     time.Now().Add(s.AccessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
	if err != nil {
		return out, err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return out, err
	}
	refresh := hex.EncodeToString(buf)

	if err := s.TokenRepo.Save(ctx, usuario.ID, refresh, time.Now().Add(s.RefreshTTL)); err != nil {
		return out, err
	}

	utils.LogEvent(s.RequestID, "auth", "emitir_tokens", fmt.Sprintf("usuario_id=%d rol=%s", usuario.ID, usuario.Rol))
	return TokenPair{Access: access, Refresh: refresh, Rol: usuario.Rol}, nil
}

// ParseAccess valida el access token y devuelve la credencial que
// viaja por la request.
func (s AuthService) ParseAccess(tokenString string) (domain.Credencial, error) {
	var cred domain.Credencial

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return cred, ErrCredenciales
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return cred, ErrCredenciales
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return cred, ErrCredenciales
	}
	rol, _ := claims["rol"].(string)
	return domain.Credencial{UsuarioID: domain.ID(id), Rol: rol}, nil
}

// HashPassword genera el hash bcrypt para alta o cambio de contraseña.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", domain.ValidationError{Campo: "password", Msg: "la contraseña debe tener al menos 8 caracteres"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

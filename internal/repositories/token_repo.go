package repositories

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"tr4cking/internal/domain"
)

// TokenRepository guarda refresh tokens hasheados con sha256. El token
// en claro sólo existe en la respuesta del login.
type TokenRepository struct {
	DB *sql.DB
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (r TokenRepository) Save(ctx context.Context, usuarioID int64, token string, expira time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO refresh_tokens (usuario, token_hash, expira, revocado)
		VALUES (?, ?, ?, 0)`,
		usuarioID, hashToken(token), expira.UTC().Format("2006-01-02 15:04:05"))
	return err
}

// Validate devuelve el usuario dueño del token si existe, no está
// revocado y no venció.
func (r TokenRepository) Validate(ctx context.Context, token string) (int64, error) {
	var usuarioID int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT usuario FROM refresh_tokens
		WHERE token_hash = ? AND revocado = 0 AND expira > UTC_TIMESTAMP()`,
		hashToken(token)).Scan(&usuarioID)
	if err == sql.ErrNoRows {
		return 0, domain.NotFoundError{Recurso: "refresh token", Err: err}
	}
	return usuarioID, err
}

func (r TokenRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE refresh_tokens SET revocado = 1 WHERE token_hash = ?`, hashToken(token))
	return err
}

// RevokeAll invalida todos los tokens de un usuario, para logout
// global o desactivación de cuenta.
func (r TokenRepository) RevokeAll(ctx context.Context, usuarioID int64) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE refresh_tokens SET revocado = 1 WHERE usuario = ?`, usuarioID)
	return err
}

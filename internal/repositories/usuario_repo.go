package repositories

import (
	"context"
	"database/sql"

	"tr4cking/internal/domain"
	"tr4cking/internal/domain/models"
)

type UsuarioRepository struct {
	DB *sql.DB
}

const usuarioSelect = `
	SELECT id_usuario, username, COALESCE(email,''), rol, activo
	FROM usuarios`

func (r UsuarioRepository) List(ctx context.Context) ([]models.Usuario, error) {
	rows, err := r.DB.QueryContext(ctx, usuarioSelect+` ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Usuario{}
	for rows.Next() {
		var u models.Usuario
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Rol, &u.Activo); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r UsuarioRepository) GetByID(ctx context.Context, id int64) (models.Usuario, error) {
	var u models.Usuario
	err := r.DB.QueryRowContext(ctx, usuarioSelect+` WHERE id_usuario = ?`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.Rol, &u.Activo)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Recurso: "usuario", Err: err}
	}
	return u, err
}

// GetByUsername devuelve el usuario y su hash bcrypt para el login. El
// hash nunca viaja en el modelo que exponen los handlers.
func (r UsuarioRepository) GetByUsername(ctx context.Context, username string) (models.Usuario, string, error) {
	var u models.Usuario
	var hash string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id_usuario, username, COALESCE(email,''), rol, activo, password_hash
		FROM usuarios WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Email, &u.Rol, &u.Activo, &hash)
	if err == sql.ErrNoRows {
		return u, "", domain.NotFoundError{Recurso: "usuario", Err: err}
	}
	return u, hash, err
}

func (r UsuarioRepository) Create(ctx context.Context, u models.Usuario, hash string) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO usuarios (username, email, rol, activo, password_hash)
		VALUES (?, ?, ?, ?, ?)`,
		u.Username, nullIfEmpty(u.Email), u.Rol, u.Activo, hash)
	if err != nil {
		if mysqlDuplicate(err) {
			return 0, domain.ConflictError{Recurso: "usuario", Msg: "el username ya está en uso", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

func (r UsuarioRepository) Update(ctx context.Context, u models.Usuario) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE usuarios SET username = ?, email = ?, rol = ?, activo = ?
		WHERE id_usuario = ?`,
		u.Username, nullIfEmpty(u.Email), u.Rol, u.Activo, u.ID)
	if err != nil {
		if mysqlDuplicate(err) {
			return domain.ConflictError{Recurso: "usuario", Msg: "el username ya está en uso", Err: err}
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "usuario"}
	}
	return nil
}

func (r UsuarioRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE usuarios SET password_hash = ? WHERE id_usuario = ?`, hash, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "usuario"}
	}
	return nil
}

func (r UsuarioRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM usuarios WHERE id_usuario = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Recurso: "usuario"}
	}
	return nil
}

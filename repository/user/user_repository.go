package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/heytrack/heytrack-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO app_user (name, business_name, email, phone, password_hash, created_at) VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING id`
	getUserBase     = `SELECT id, name, business_name, email, phone, password_hash, created_at, updated_at FROM app_user WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	var id uint64
	err := s.conn.QueryRowxContext(ctx, insertUserQuery, data.Name, data.BusinessName, data.Email, data.Phone, data.PasswordHash).Scan(&id)
	if err != nil {
		return nil, err
	}

	data.ID = id
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		args = append(args, filter.ID)
		query += fmt.Sprintf(" AND id = $%d", len(args))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		query += fmt.Sprintf(" AND email = $%d", len(args))
	}
	if filter.Phone != "" {
		args = append(args, filter.Phone)
		query += fmt.Sprintf(" AND phone = $%d", len(args))
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/herbpot/shoppingmol/internal/models"
)

// ErrNotFound возвращается, когда запрошенной строки нет в таблице.
var ErrNotFound = errors.New("repository: not found")

type DB struct {
	db *gorm.DB
}

func New(gdb *gorm.DB) *DB {
	return &DB{db: gdb}
}

// Migrate идемпотентно создаёт схему при старте.
func (r *DB) Migrate() error {
	return r.db.AutoMigrate(&models.User{}, &models.Product{})
}

func (r *DB) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return items, nil
}

func (r *DB) GetProductByID(ctx context.Context, id uint) (models.Product, error) {
	var item models.Product
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("get product %d: %w", id, err)
	}
	return item, nil
}

func (r *DB) GetUserByID(ctx context.Context, id uint) (models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (r *DB) GetUserByNick(ctx context.Context, nick string) (models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("nick = ?", nick).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user by nick: %w", err)
	}
	return u, nil
}

func (r *DB) NickTaken(ctx context.Context, nick string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("nick = ?", nick).Count(&cnt).Error; err != nil {
		return false, fmt.Errorf("count nick: %w", err)
	}
	return cnt > 0, nil
}

func (r *DB) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *DB) UpdateUser(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	return nil
}

func (r *DB) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

package preference

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists the unit preference flag. A flag that was never written
// reads as false (Celsius).
type Store interface {
	IsFahrenheit(ctx context.Context) (bool, error)
	SetFahrenheit(ctx context.Context, value bool) error
	Close() error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (r *GormStore) IsFahrenheit(ctx context.Context) (bool, error) {
	var pref Preference
	err := r.db.WithContext(ctx).Where("name = ?", FahrenheitKey).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read preference: %w", err)
	}
	return pref.Value, nil
}

func (r *GormStore) SetFahrenheit(ctx context.Context, value bool) error {
	pref := Preference{
		Name:  FahrenheitKey,
		Value: value,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

func (r *GormStore) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

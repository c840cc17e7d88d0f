package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotRecord is one row of the kv_slots table
type SlotRecord struct {
	Key       string `gorm:"primaryKey;column:slot_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (SlotRecord) TableName() string {
	return "kv_slots"
}

// GormSlot keeps slots in a relational table through gorm.
type GormSlot struct {
	db *gorm.DB
}

// NewGormSlot migrates the kv_slots table and returns a slot backed by db
func NewGormSlot(db *gorm.DB) (*GormSlot, error) {
	if err := db.AutoMigrate(&SlotRecord{}); err != nil {
		return nil, fmt.Errorf("migrate kv_slots: %w", err)
	}
	return &GormSlot{db: db}, nil
}

func (s *GormSlot) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var rec SlotRecord
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %s: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

func (s *GormSlot) Save(ctx context.Context, key string, value []byte) error {
	rec := SlotRecord{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	log.WithFields(logrus.Fields{"slot": key, "bytes": len(value)}).Debug("Slot saved")
	return nil
}

func (s *GormSlot) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

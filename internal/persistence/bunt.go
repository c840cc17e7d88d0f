package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/buntdb"
)

// BuntSlot keeps slots in a buntdb file. Use ":memory:" for a volatile store.
type BuntSlot struct {
	db *buntdb.DB
}

// OpenBuntSlot opens or creates the buntdb file at path
func OpenBuntSlot(path string) (*BuntSlot, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open buntdb %s: %w", path, err)
	}
	log.WithField("db_path", path).Info("Local slot store opened")
	return &BuntSlot{db: db}, nil
}

func (s *BuntSlot) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	var value string
	err := s.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err != nil {
			return err
		}
		value = v
		return nil
	})
	if errors.Is(err, buntdb.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *BuntSlot) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, string(value), nil)
		return err
	})
	if err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	log.WithFields(logrus.Fields{"slot": key, "bytes": len(value)}).Debug("Slot saved")
	return nil
}

func (s *BuntSlot) Close() error {
	return s.db.Close()
}

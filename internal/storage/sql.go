package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/gash-demo/pkg/db"
	"github.com/angelmondragon/gash-demo/pkg/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQL persists the session as rows of demo_storage_entries, scoped by namespace.
type SQL struct {
	client    *db.Client
	namespace string
}

// NewSQL migrates the entry table and returns a store bound to namespace.
func NewSQL(ctx context.Context, client *db.Client, namespace string) (*SQL, error) {
	if err := client.DB().WithContext(ctx).AutoMigrate(&models.StorageEntry{}); err != nil {
		return nil, fmt.Errorf("migrating storage entries: %w", err)
	}
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = "gash"
	}
	return &SQL{client: client, namespace: namespace}, nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.StorageEntry
	err := s.client.DB().WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", s.namespace, key).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	entry := models.StorageEntry{Namespace: s.namespace, Key: key, Value: value}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "namespace"}, {Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *SQL) Delete(ctx context.Context, key string) error {
	return s.client.DB().WithContext(ctx).
		Where("namespace = ? AND entry_key = ?", s.namespace, key).
		Delete(&models.StorageEntry{}).Error
}

func (s *SQL) Clear(ctx context.Context) error {
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Where("namespace = ?", s.namespace).Delete(&models.StorageEntry{}).Error
	})
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *SQL) Close() error {
	return s.client.Close()
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"gitlab.com/dirk.krummacker/persons-service/internal/model"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenORM initializes the object relational mapper on top of an existing connection pool.
func OpenORM(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open orm: %w", err)
	}
	return db, nil
}

// OrderTable is the gorm implementation of OrderStore.
type OrderTable struct {
	db *gorm.DB
}

// NewOrderTable returns an order store backed by db.
func NewOrderTable(db *gorm.DB) *OrderTable {
	return &OrderTable{db: db}
}

func (t *OrderTable) AddBuyOrder(ctx context.Context, order *model.BuyOrder) error {
	if err := t.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("insert buy order: %w", translate(err))
	}
	return nil
}

func (t *OrderTable) AddSellOrder(ctx context.Context, order *model.SellOrder) error {
	if err := t.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("insert sell order: %w", translate(err))
	}
	return nil
}

func (t *OrderTable) FindBuyOrders(ctx context.Context) ([]model.BuyOrder, error) {
	orders := []model.BuyOrder{}
	if err := t.db.WithContext(ctx).Order("date_and_time_of_order DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("select buy orders: %w", err)
	}
	return orders, nil
}

func (t *OrderTable) FindSellOrders(ctx context.Context) ([]model.SellOrder, error) {
	orders := []model.SellOrder{}
	if err := t.db.WithContext(ctx).Order("date_and_time_of_order DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("select sell orders: %w", err)
	}
	return orders, nil
}

// MigrateOrders creates or alters the order tables to match the order models.
func MigrateOrders(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.BuyOrder{}, &model.SellOrder{}); err != nil {
		return fmt.Errorf("migrate order tables: %w", err)
	}
	return nil
}

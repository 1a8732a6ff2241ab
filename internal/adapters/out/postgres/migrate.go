package postgres

import (
	"fmt"
	"strings"

	"canteen/internal/adapters/out/postgres/dishrepo"
	"canteen/internal/adapters/out/postgres/orderrepo"
	"canteen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// Migrate creates or upgrades the schema. It is idempotent.
//
// Besides the tables it creates the queue number sequence and a partial unique
// index that keeps queue numbers unique among active orders.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.PickupCodeDTO{},
		&dishrepo.DishDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + orderrepo.QueueNumberSequence).Error; err != nil {
		return fmt.Errorf("create queue number sequence: %w", err)
	}

	active := order.ActiveStatuses()
	quoted := make([]string, 0, len(active))
	for _, s := range active {
		quoted = append(quoted, "'"+s.String()+"'")
	}
	index := fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_active_queue_number ON orders (queue_number) WHERE status IN (%s)",
		strings.Join(quoted, ", "),
	)
	if err := db.Exec(index).Error; err != nil {
		return fmt.Errorf("create active queue number index: %w", err)
	}

	return nil
}

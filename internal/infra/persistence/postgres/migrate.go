package postgres

import (
	"context"
	"fmt"
	"strings"

	"tracker/internal/domain/entity"
	"tracker/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type tableConstraint struct {
	model      any
	table      string
	name       string
	definition string
}

// Models lists every table owned by the tracker, in dependency order.
func Models() []any {
	return []any{
		&model.DeliveryModel{},
		&model.LocationPingModel{},
		&model.RouteModel{},
		&model.StatusHistoryModel{},
		&model.UserDeviceModel{},
		&model.NotificationLogModel{},
	}
}

// Migrate creates or updates the schema, then adds the foreign keys and
// check constraints that the struct tags cannot express.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto migrate")
	}

	migrator := db.Migrator()
	for _, c := range constraints() {
		if migrator.HasConstraint(c.model, c.name) {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", c.table, c.name, c.definition)
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to add constraint %s", c.name)
		}
	}

	return nil
}

func constraints() []tableConstraint {
	statuses := make([]string, 0, len(entity.AllStatuses()))
	for _, status := range entity.AllStatuses() {
		statuses = append(statuses, "'"+string(status)+"'")
	}
	statusCheck := fmt.Sprintf("CHECK (status IN (%s))", strings.Join(statuses, ", "))

	return []tableConstraint{
		{&model.DeliveryModel{}, "deliveries", "chk_deliveries_status", statusCheck},
		{&model.StatusHistoryModel{}, "delivery_status_history", "chk_status_history_status", statusCheck},
		{
			&model.LocationPingModel{}, "delivery_location_pings", "fk_location_pings_delivery",
			"FOREIGN KEY (delivery_id) REFERENCES deliveries(id) ON DELETE CASCADE",
		},
		{
			&model.RouteModel{}, "delivery_routes", "fk_routes_delivery",
			"FOREIGN KEY (delivery_id) REFERENCES deliveries(id) ON DELETE CASCADE",
		},
		{
			&model.StatusHistoryModel{}, "delivery_status_history", "fk_status_history_delivery",
			"FOREIGN KEY (delivery_id) REFERENCES deliveries(id) ON DELETE CASCADE",
		},
		{
			&model.LocationPingModel{}, "delivery_location_pings", "chk_location_pings_coordinates",
			"CHECK (latitude BETWEEN -90 AND 90 AND longitude BETWEEN -180 AND 180)",
		},
	}
}

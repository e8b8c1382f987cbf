package infra

import (
	"fmt"

	"github.com/Javier-GarciaP/sunbody/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for the full schema. The schema is small and owned entirely by
// this service, so AutoMigrate is the migration mechanism.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Color{},
		&model.Producto{},
		&model.Variante{},
		&model.Cliente{},
		&model.TasaCambio{},
		&model.Venta{},
		&model.VentaItem{},
		&model.Pago{},
		&model.Pedido{},
		&model.PedidoItem{},
		&model.Paquete{},
		&model.PaqueteItem{},
		&model.MovimientoStock{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

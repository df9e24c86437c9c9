package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kitchenops/entity"
	"kitchenops/logger"
	"kitchenops/model"

	"go.uber.org/zap"
)

var DB *gorm.DB

// summaryViewSQL aggregates ingredient requirements per day: one row per
// (group date, ingredient, unit) with the summed quantity across all orders
// for recipes using that ingredient. Reads go through model.DailySummaryRow.
const summaryViewSQL = `
CREATE OR REPLACE VIEW v_daily_ingredient_summary AS
SELECT
    COALESCE(o.prep_date, o.order_date) AS order_date,
    o.day_name,
    i.name AS ingredient,
    r.unit,
    SUM(r.quantity_base * o.quantity) AS total_quantity
FROM order_items o
JOIN recipes r ON r.name = o.recipe_name
JOIN ingredients i ON i.id = r.ingredient_id
GROUP BY COALESCE(o.prep_date, o.order_date), o.day_name, i.name, r.unit
`

// InitDB opens the PostgreSQL connection.
func InitDB(c *entity.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host, c.PostgresConfig.User, c.PostgresConfig.Password,
		c.PostgresConfig.DBName, c.PostgresConfig.Port, c.PostgresConfig.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established",
		zap.String("host", c.PostgresConfig.Host), zap.String("dbname", c.PostgresConfig.DBName))
	return nil
}

// Migrate creates the tables and the summary view.
func Migrate() error {
	if err := DB.AutoMigrate(
		&model.Ingredient{},
		&model.RecipeType{},
		&model.RecipeLine{},
		&model.OrderItem{},
		&model.User{},
		&model.UserRole{},
		&model.UserPermission{},
	); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}
	if err := DB.Exec(summaryViewSQL).Error; err != nil {
		return fmt.Errorf("create summary view: %w", err)
	}
	return nil
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Warn("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing the database connection", zap.Error(err))
	}
}

func GetDBInstance() *gorm.DB {
	return DB
}

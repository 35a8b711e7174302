package database

import (
	"fmt"

	"inventory-app/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// OpenDatabaseConnection opens the configured database. The driver comes
// from DB_DRIVER; sqlite is the zero-setup default for development.
func OpenDatabaseConnection() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, config.DBName, config.DBPort)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)
		dialector = mysql.Open(dsn)
	case "mssql":
		dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" +
			config.DBHost + ":" + config.DBPort + "?database=" + config.DBName
		dialector = sqlserver.Open(dsn)
	default:
		dialector = sqlite.Open(config.DBName + ".db")
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s database: %w", config.DBDriver, err)
	}
	return db, nil
}

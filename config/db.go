package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"booking-wizard/models"

	sqldriver "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}

	c := sqldriver.NewConfig()
	c.User = u.User.Username()
	c.Passwd, _ = u.User.Password()
	c.Net = "tcp"
	c.Addr = net.JoinHostPort(u.Hostname(), port)
	c.DBName = dbName
	c.ParseTime = true
	c.Loc = time.Local
	c.Params = map[string]string{"charset": "utf8mb4"}

	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "parseTime":
			c.ParseTime = values[0] != "false"
		case "loc":
			loc, err := time.LoadLocation(values[0])
			if err != nil {
				return "", fmt.Errorf("mysql url: invalid loc %q: %w", values[0], err)
			}
			c.Loc = loc
		default:
			c.Params[key] = values[0]
		}
	}

	return c.FormatDSN(), nil
}

// ResolveDSN turns the configured database settings into a go-sql-driver DSN.
// A mysql:// URL or raw DSN in DatabaseURL wins over the discrete DB_* fields.
func (c Config) ResolveDSN() (string, error) {
	if c.DatabaseURL != "" {
		if strings.HasPrefix(c.DatabaseURL, "mysql://") {
			return mysqlDSNFromURL(c.DatabaseURL)
		}
		if _, err := sqldriver.ParseDSN(c.DatabaseURL); err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		return c.DatabaseURL, nil
	}

	dc := sqldriver.NewConfig()
	dc.User = c.DBUser
	dc.Passwd = c.DBPass
	dc.Net = "tcp"
	dc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	dc.DBName = c.DBName
	dc.ParseTime = true
	dc.Loc = time.Local
	dc.Params = map[string]string{"charset": "utf8mb4"}
	return dc.FormatDSN(), nil
}

// ConnectDatabase opens the pool once at startup. The returned handle is
// passed to the repositories and must be released with CloseDatabase.
func ConnectDatabase(cfg Config, log *zap.Logger) (*gorm.DB, error) {
	dsn, err := cfg.ResolveDSN()
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             cfg.DBSlowThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdle)

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("database migrations applied")
	}

	return db, nil
}

// Migrate creates or updates the Entries and RoomBookings tables, parent first.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Entry{}, &models.RoomBooking{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

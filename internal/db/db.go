package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// ErrUnknownDriver 表示不支持的数据库驱动。
var ErrUnknownDriver = errors.New("unknown database driver")

// Init 初始化数据库连接并执行自动迁移。
// sqlite 下 dsn 为文件路径，为空时回退到 folio.db；mysql 下为 go-sql-driver DSN。
func Init(driver, dsn string) error {
	dialector, err := Dialector(driver, dsn)
	if err != nil {
		return err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return err
	}

	DB = gdb
	return nil
}

// Dialector picks the gorm dialector for driver. The sqlite parent
// directory is created when missing.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	dsn = strings.TrimSpace(dsn)
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSQLite:
		if dsn == "" {
			dsn = "folio.db"
		}
		if err := ensureParentDir(dsn); err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	case DriverMySQL:
		if dsn == "" {
			return nil, errors.New("mysql requires a DSN")
		}
		return mysql.New(mysql.Config{
			DSN:               dsn,
			DefaultStringSize: 191,
		}), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

// Migrate 为内容模型创建或更新表结构。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Entry{},
		&Project{},
		&Author{},
	)
}

func ensureParentDir(path string) error {
	if strings.HasPrefix(path, "file:") {
		return nil
	}

	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}

package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"Rozi/config"
	"Rozi/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN 拼接 mysql 数据源
func DSN(c config.DbConf) string {
	return fmt.Sprintf("%s:%s@(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Dbname)
}

// OpenAudit 打开审计库并迁移通知表。Host 为空时返回 nil, nil
func OpenAudit(c config.DbConf) (*gorm.DB, error) {
	if c.Host == "" {
		return nil, nil
	}
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer（日志输出的地方）
		logger.Config{
			SlowThreshold: 200 * time.Millisecond, // 慢SQL阈值
			LogLevel:      logger.Warn,            // 日志级别
			Colorful:      true,
		},
	)
	gdb, err := gorm.Open(mysql.Open(DSN(c)), &gorm.Config{
		Logger:                 newLogger,
		SkipDefaultTransaction: true, // 单行插入，不需要事务
	})
	if err != nil {
		return nil, fmt.Errorf("connect audit db: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(c.MaxIdleConn)                                        // 最大空闲连接
	sqlDB.SetMaxOpenConns(c.MaxOpenConn)                                        // 最大打开连接
	sqlDB.SetConnMaxLifetime(time.Duration(c.MaxIdleTime * int64(time.Second))) // 最大空闲时间（s）

	if err := gdb.AutoMigrate(&model.Notification{}); err != nil {
		return nil, fmt.Errorf("migrate notifications: %w", err)
	}
	return gdb, nil
}

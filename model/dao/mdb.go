package dao

import (
	"fmt"
	"time"

	"github.com/gookit/color"
	"github.com/neko-project/nekopay/config"
	"github.com/neko-project/nekopay/model/mdb"
	"github.com/neko-project/nekopay/util/log"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var Mdb *gorm.DB

// MysqlInit MySQL 数据库初始化
func MysqlInit() {
	var err error
	// 格式: username:password@tcp(host:port)/database?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.MysqlUser,
		config.MysqlPassword,
		config.MysqlHost,
		config.MysqlPort,
		config.MysqlDatabase,
	)

	Mdb, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   viper.GetString("db_table_prefix"),
			SingularTable: true,
		},
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		color.Red.Printf("[store_db] mysql open failed, err=%s\n", err)
		panic(err)
	}

	if config.AppDebug {
		Mdb = Mdb.Debug()
	}

	sqlDB, err := Mdb.DB()
	if err != nil {
		color.Red.Printf("[store_db] mysql get DB, err=%s\n", err)
		panic(err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = sqlDB.Ping()
	if err != nil {
		color.Red.Printf("[store_db] mysql connDB err:%s", err.Error())
		panic(err)
	}

	err = Mdb.AutoMigrate(&mdb.CheckoutSlot{})
	if err != nil {
		color.Red.Printf("[store_db] mysql migrate err:%s", err.Error())
		panic(err)
	}

	log.Sugar.Info("[store_db] mysql connDB success")
}

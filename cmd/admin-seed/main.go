// admin-seed สร้างบัญชีผู้ดูแลระบบจาก ADMIN_EMAIL และ ADMIN_PASSWORD
// ถ้ามีอีเมลนี้อยู่แล้วจะไม่เปลี่ยนแปลงอะไร
package main

import (
	"context"
	"time"

	"go-cartmaster/config"
	"go-cartmaster/migrations"
	"go-cartmaster/modules/auth"
	"go-cartmaster/shared/common/env"
	"go-cartmaster/shared/common/idgen"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/storage/sqldb"
	"go-cartmaster/shared/common/storage/sqldb/transactor"

	"go.uber.org/zap"
)

func main() {
	closeLog, err := logger.Init()
	if err != nil {
		panic(err.Error())
	}
	defer closeLog()

	config, err := config.Load()
	if err != nil {
		logger.Log().Fatal("Error loading config", zap.Error(err))
	}

	if err := idgen.SetNode(config.IDNode); err != nil {
		logger.Log().Fatal("Error initializing id generator", zap.Error(err))
	}

	email := env.Get("ADMIN_EMAIL")
	password := env.Get("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Log().Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	dbCtx, closeDB, err := sqldb.NewDBContext(config.DSN)
	if err != nil {
		logger.Log().Fatal("Error connecting database", zap.Error(err))
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if config.DBAutoMigrate {
		if err := migrations.Up(ctx, dbCtx.DB()); err != nil {
			logger.Log().Fatal("Error migrating database", zap.Error(err))
		}
	}

	_, dbtxCtx := transactor.New(dbCtx.DB())
	created, err := auth.SeedAdministrator(ctx, dbtxCtx, email, password)
	if err != nil {
		logger.Log().Fatal("Error seeding administrator", zap.Error(err))
	}
	if !created {
		logger.Log().Info("Administrator already exists", zap.String("email", email))
		return
	}
	logger.Log().Info("Administrator created", zap.String("email", email))
}

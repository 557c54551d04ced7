package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-cartmaster/application"
	"go-cartmaster/build"
	"go-cartmaster/config"
	"go-cartmaster/migrations"
	"go-cartmaster/modules/auth"
	"go-cartmaster/modules/card"
	"go-cartmaster/modules/customer"
	"go-cartmaster/shared/common/idgen"
	"go-cartmaster/shared/common/logger"
	"go-cartmaster/shared/common/module"
	"go-cartmaster/shared/common/observability"
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

	// ถ้าไม่ได้ตั้ง OTEL_COLLECTOR_ADDR จะได้ shutdown ที่ไม่ทำอะไร
	shutdownOtel, err := observability.InitOtlp(context.Background(), config.OtelCollectorAddr, config.ServiceName, build.Version)
	if err != nil {
		logger.Log().Fatal("Error initializing telemetry", zap.Error(err))
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Log().Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	dbCtx, closeDB, err := sqldb.NewDBContext(config.DSN, sqldb.Options{
		MaxOpenConns:    config.DBMaxOpenConns,
		MaxIdleConns:    config.DBMaxIdleConns,
		ConnMaxLifetime: config.DBConnMaxLifetime,
	})
	if err != nil {
		logger.Log().Fatal("Error connecting database", zap.Error(err))
	}
	defer func() { // ใช่ท่า IIFE เพราะต้องการแสดง error ถ้าปิดไม่ได้
		if err := closeDB(); err != nil {
			logger.Log().Error("Error closing database", zap.Error(err))
		}
	}()

	if config.DBAutoMigrate {
		if err := migrations.Up(context.Background(), dbCtx.DB()); err != nil {
			logger.Log().Fatal("Error migrating database", zap.Error(err))
		}
		logger.Log().Info("Database migrated")
	}

	app := application.New(*config, func(ctx context.Context) error {
		return sqldb.Ping(ctx, dbCtx)
	})

	transactor, dbtxCtx := transactor.New(dbCtx.DB(),
		// เพิ่มใช้งาน nested transaction strategy ที่ใช้ Savepoints
		transactor.WithNestedTransactionStrategy(transactor.NestedTransactionsSavepoints))
	mCtx := module.NewModuleContext(transactor, dbtxCtx)
	if err := app.RegisterModules(
		customer.NewModule(mCtx),
		card.NewModule(mCtx),
		auth.NewModule(mCtx),
	); err != nil {
		logger.Log().Fatal("Error registering modules", zap.Error(err))
	}

	app.Run()

	// รอสัญญาณการปิด
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log().Info("Shutting down...")

	app.Shutdown()

	logger.Log().Info("Shutdown complete.")
}

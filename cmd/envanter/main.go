package main

import (
	"log"
	"os"

	"envanter-cli/internal/audit"
	"envanter-cli/internal/auth"
	"envanter-cli/internal/backup"
	"envanter-cli/internal/cli"
	"envanter-cli/internal/config"
	"envanter-cli/internal/database"
	"envanter-cli/internal/order"
	"envanter-cli/internal/product"
	"envanter-cli/internal/seed"
	"envanter-cli/internal/supplier"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger: detaylı kayıt log dosyasına, warn ve üzeri ayrıca stderr'e.
// Menü stdout'u kullandığı için loglar stdout'a karışmaz.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(logFile), zapcore.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(os.Stderr), zapcore.WarnLevel),
	)
	return zap.New(core), nil
}

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Log dosyası açılamadı: %v", err)
	}
	defer logger.Sync()

	store, err := database.Open(cfg, logger)
	if err != nil {
		log.Fatalf("Veritabanı açılamadı: %v", err)
	}
	defer store.Close()

	products := product.NewManager(store, cfg, logger)
	orders := order.NewProcessor(store, products, logger)
	suppliers := supplier.NewManager(store, logger)
	auths := auth.NewManager(cfg, logger)
	audits := audit.NewRecorder(store, logger)
	backups := backup.NewManager(store, cfg, logger)
	seeds := seed.NewLoader(store, logger)

	app := cli.New(cfg, products, orders, suppliers, auths, audits, backups, seeds, logger)
	app.Run()
}

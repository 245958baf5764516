package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ksa-hris/internal/config"
	"ksa-hris/internal/events"
	"ksa-hris/internal/messaging/kafka/consumer"
	"ksa-hris/internal/storage"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders payslips for processed payroll batches until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	files, err := storage.New(cfg)
	if err != nil {
		return err
	}

	// No outbox and no Redis: the consumer only reads batches and writes payslips.
	payrollSvc := payrollService(sqlDB, gormDB, files, nil, nil, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.PayrollBatchProcessedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollBatchProcessed(ctx, reader, payrollSvc, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}

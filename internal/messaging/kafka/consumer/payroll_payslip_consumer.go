package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"ksa-hris/internal/events"
	payrollerrors "ksa-hris/internal/payroll/errors"
	"ksa-hris/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// PayslipGenerator is satisfied by payroll.Service.
type PayslipGenerator interface {
	GeneratePayslips(ctx context.Context, companyID, batchID string) (int, error)
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// ConsumePayrollBatchProcessed renders payslips for every processed batch.
// Messages that can never succeed are committed and skipped; transient
// failures are left uncommitted so the group redelivers them.
func ConsumePayrollBatchProcessed(
	ctx context.Context,
	reader MessageReader,
	generator PayslipGenerator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll payslip consumer stopped")
				return
			}
			log.Error("fetch payroll batch message failed", zap.Error(err))
			continue
		}

		handlePayrollBatchProcessed(ctx, reader, generator, log, msg)
	}
}

func handlePayrollBatchProcessed(
	ctx context.Context,
	reader MessageReader,
	generator PayslipGenerator,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.PayrollBatchProcessedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode payroll batch event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	rid := event.RequestID
	if rid == "" {
		rid = headerValue(msg, "request_id")
	}
	msgLog := log.With(
		zap.String("batch_id", event.BatchID),
		zap.String("company_id", event.CompanyID),
		zap.String("request_id", rid),
	)
	msgCtx := contextutil.WithLogger(contextutil.WithRequestID(ctx, rid), msgLog)

	rendered, err := generator.GeneratePayslips(msgCtx, event.CompanyID, event.BatchID)
	if err != nil {
		if errors.Is(err, payrollerrors.ErrBatchNotFound) || errors.Is(err, payrollerrors.ErrBatchNotProcessed) {
			msgLog.Warn("payroll batch event cannot be handled, skipping", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			return
		}
		msgLog.Error("generate payslips failed", zap.Error(err))
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		msgLog.Error("commit payroll batch message failed", zap.Error(err))
		return
	}

	msgLog.Info("payslips generated", zap.Int("rendered", rendered))
}

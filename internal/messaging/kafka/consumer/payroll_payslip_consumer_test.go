package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"ksa-hris/internal/events"
	payrollerrors "ksa-hris/internal/payroll/errors"
	"ksa-hris/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.queue[0]
	r.queue = r.queue[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

type fakeGenerator struct {
	calls []string
	rids  []string
	errs  map[string]error
}

func (g *fakeGenerator) GeneratePayslips(ctx context.Context, companyID, batchID string) (int, error) {
	g.calls = append(g.calls, companyID+"/"+batchID)
	g.rids = append(g.rids, contextutil.GetRequestID(ctx))
	if err := g.errs[batchID]; err != nil {
		return 0, err
	}
	return 2, nil
}

func batchMessage(t *testing.T, batchID, rid string) kafkago.Message {
	t.Helper()
	body, err := json.Marshal(events.PayrollBatchProcessedEvent{
		EventType: events.PayrollBatchProcessedEventType,
		BatchID:   batchID,
		CompanyID: "company-1",
		Month:     "2025-01",
	})
	assert.NoError(t, err)
	return kafkago.Message{
		Topic:   events.PayrollBatchProcessedTopic,
		Key:     []byte(batchID),
		Value:   body,
		Headers: []kafkago.Header{{Key: "request_id", Value: []byte(rid)}},
	}
}

func TestConsumePayrollBatchProcessed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		queue: []kafkago.Message{
			batchMessage(t, "batch-ok", "req-1"),
			{Value: []byte("not json")},
			batchMessage(t, "batch-gone", ""),
			batchMessage(t, "batch-flaky", ""),
		},
	}
	generator := &fakeGenerator{errs: map[string]error{
		"batch-gone":  payrollerrors.ErrBatchNotFound,
		"batch-flaky": errors.New("storage unavailable"),
	}}

	ConsumePayrollBatchProcessed(ctx, reader, generator, zap.NewNop())

	assert.Equal(t, []string{"company-1/batch-ok", "company-1/batch-gone", "company-1/batch-flaky"}, generator.calls)
	assert.Equal(t, "req-1", generator.rids[0])

	committed := make([]string, 0, len(reader.committed))
	for _, m := range reader.committed {
		committed = append(committed, string(m.Key))
	}
	// The flaky batch stays uncommitted for redelivery.
	assert.Equal(t, []string{"batch-ok", "", "batch-gone"}, committed)
}

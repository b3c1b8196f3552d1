package consumer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"donation-report-srv/config"
	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	pkgKafka "donation-report-srv/pkg/kafka"
	"donation-report-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	report.UseCase

	mu     sync.Mutex
	inputs []report.GetOrBuildInput
	err    error
}

func (f *fakeUseCase) GetOrBuild(ctx context.Context, input report.GetOrBuildInput) (report.GetOrBuildOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	return report.GetOrBuildOutput{CacheKey: "0123456789abcdef"}, f.err
}

func (f *fakeUseCase) calls() []report.GetOrBuildInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]report.GetOrBuildInput(nil), f.inputs...)
}

type fakeSession struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }
func (s *fakeSession) MemberID() string           { return "member" }
func (s *fakeSession) GenerationID() int32        { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string) {
}
func (s *fakeSession) Commit() {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {
}
func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

func (s *fakeSession) markedOffsets() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.marked...)
}

type fakeClaim struct {
	msgs chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return "donation.report.requests" }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.msgs }

func newClaim(values ...string) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for i, v := range values {
		ch <- &sarama.ConsumerMessage{Offset: int64(i), Value: []byte(v)}
	}
	close(ch)
	return &fakeClaim{msgs: ch}
}

func newTestConsumer(t *testing.T, uc report.UseCase) *Consumer {
	t.Helper()
	c, err := New(Config{
		Logger: log.NewNop(),
		KafkaConfig: config.KafkaConfig{
			Brokers:      []string{"localhost:9092"},
			RequestTopic: "donation.report.requests",
			GroupID:      "donation-report-srv",
		},
		UseCase: uc,
	})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	kc := config.KafkaConfig{Brokers: []string{"b:9092"}, RequestTopic: "t"}

	tcs := map[string]struct {
		cfg  Config
		want error
	}{
		"missing logger":  {cfg: Config{KafkaConfig: kc, UseCase: &fakeUseCase{}}, want: ErrLoggerRequired},
		"missing usecase": {cfg: Config{Logger: log.NewNop(), KafkaConfig: kc}, want: ErrUseCaseRequired},
		"missing brokers": {cfg: Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}, KafkaConfig: config.KafkaConfig{RequestTopic: "t"}}, want: ErrBrokersRequired},
		"missing topic":   {cfg: Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}, KafkaConfig: config.KafkaConfig{Brokers: []string{"b:9092"}}}, want: ErrTopicRequired},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.cfg)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReportRequestHandler(t *testing.T) {
	t.Run("valid requests are processed and marked", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(t, uc)
		session := &fakeSession{ctx: context.Background()}

		h := &reportRequestHandler{consumer: c}
		require.NoError(t, h.ConsumeClaim(session, newClaim(
			`{"period_type":"weekly"}`,
			`{"period_type":"Yearly","year":2022,"force_regenerate":true,"requested_by":"finance"}`,
		)))

		assert.Equal(t, []int64{0, 1}, session.markedOffsets())
		calls := uc.calls()
		require.Len(t, calls, 2)
		assert.Equal(t, model.PeriodWeekly, calls[0].PeriodType)
		assert.Nil(t, calls[0].Year)
		assert.Equal(t, model.PeriodYearly, calls[1].PeriodType)
		require.NotNil(t, calls[1].Year)
		assert.Equal(t, 2022, *calls[1].Year)
		assert.True(t, calls[1].ForceRegenerate)
	})

	t.Run("malformed messages are skipped and marked", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(t, uc)
		session := &fakeSession{ctx: context.Background()}

		h := &reportRequestHandler{consumer: c}
		require.NoError(t, h.ConsumeClaim(session, newClaim(`not json`, `{"period_type":"daily"}`)))

		assert.Equal(t, []int64{0, 1}, session.markedOffsets())
		assert.Empty(t, uc.calls())
	})

	t.Run("rejected input is skipped", func(t *testing.T) {
		uc := &fakeUseCase{err: report.ErrInvalidYear}
		c := newTestConsumer(t, uc)
		session := &fakeSession{ctx: context.Background()}

		h := &reportRequestHandler{consumer: c}
		require.NoError(t, h.ConsumeClaim(session, newClaim(`{"period_type":"yearly","year":-5}`)))
		assert.Equal(t, []int64{0}, session.markedOffsets())
	})

	t.Run("build failure stops the claim unmarked", func(t *testing.T) {
		uc := &fakeUseCase{err: report.ErrBuildFailed}
		c := newTestConsumer(t, uc)
		session := &fakeSession{ctx: context.Background()}

		h := &reportRequestHandler{consumer: c}
		err := h.ConsumeClaim(session, newClaim(`{"period_type":"monthly"}`, `{"period_type":"weekly"}`))
		require.ErrorIs(t, err, report.ErrBuildFailed)

		// The later message must not commit an offset past the failed one.
		assert.Empty(t, session.markedOffsets())
		assert.Len(t, uc.calls(), 1)
	})
}

type fakeGroup struct {
	claim    *fakeClaim
	session  *fakeSession
	once     sync.Once
	errs     chan error
	closed   bool
	topics   []string
	consumed chan struct{}
}

func (g *fakeGroup) Consume(topics []string, handler sarama.ConsumerGroupHandler) error {
	return g.ConsumeWithContext(context.Background(), topics, handler)
}

func (g *fakeGroup) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	g.once.Do(func() {
		g.topics = topics
		_ = handler.ConsumeClaim(g.session, g.claim)
		close(g.consumed)
	})
	<-ctx.Done()
	return ctx.Err()
}

func (g *fakeGroup) Close() error {
	g.closed = true
	close(g.errs)
	return nil
}

func (g *fakeGroup) Errors() <-chan error { return g.errs }

func TestConsumeReportRequests(t *testing.T) {
	t.Run("runs the group until cancelled", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(t, uc)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		group := &fakeGroup{
			claim:    newClaim(`{"period_type":"monthly"}`),
			session:  &fakeSession{ctx: ctx},
			errs:     make(chan error),
			consumed: make(chan struct{}),
		}
		var gotCfg pkgKafka.ConsumerConfig
		c.newGroup = func(cfg pkgKafka.ConsumerConfig) (pkgKafka.IConsumer, error) {
			gotCfg = cfg
			return group, nil
		}

		require.NoError(t, c.ConsumeReportRequests(ctx))

		select {
		case <-group.consumed:
		case <-time.After(2 * time.Second):
			t.Fatal("group was never consumed")
		}

		assert.Equal(t, "donation-report-srv-report-requests", gotCfg.GroupID)
		assert.Equal(t, []string{"localhost:9092"}, gotCfg.Brokers)
		assert.Equal(t, []string{"donation.report.requests"}, group.topics)
		assert.Len(t, uc.calls(), 1)

		cancel()
		require.NoError(t, c.Close())
		assert.True(t, group.closed)
	})

	t.Run("group creation error", func(t *testing.T) {
		c := newTestConsumer(t, &fakeUseCase{})
		boom := errors.New("no brokers reachable")
		c.newGroup = func(pkgKafka.ConsumerConfig) (pkgKafka.IConsumer, error) {
			return nil, boom
		}

		err := c.ConsumeReportRequests(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, c.Close())
	})
}

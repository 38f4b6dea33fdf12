package generate

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/finpersona/seedgen/internal/domain"
	"github.com/finpersona/seedgen/internal/usecase/engine"
	"github.com/finpersona/seedgen/internal/usecase/registry"
)

// MockSink is a mock implementation of domain.DatasetSink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) WriteSchema(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSink) SeedIdentity(ctx context.Context, p *domain.Persona, createdAt time.Time) error {
	args := m.Called(ctx, p, createdAt)
	return args.Error(0)
}

func (m *MockSink) SeedAccount(ctx context.Context, userID uuid.UUID, acct domain.Account) error {
	args := m.Called(ctx, userID, acct)
	return args.Error(0)
}

func (m *MockSink) SeedStockHolding(ctx context.Context, userID uuid.UUID, holding domain.StockHolding) error {
	args := m.Called(ctx, userID, holding)
	return args.Error(0)
}

func (m *MockSink) WriteTransaction(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockSink) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testService(t *testing.T, seed int64) *Service {
	t.Helper()
	reg, err := registry.Builtin()
	require.NoError(t, err)
	return NewService(reg, engine.New(rand.New(rand.NewSource(seed))), testLogger())
}

func janRange(t *testing.T) domain.DateRange {
	t.Helper()
	dr, err := domain.NewDateRange(
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return dr
}

func TestService_Generate_EmissionOrder(t *testing.T) {
	ctx := context.Background()
	svc := testService(t, 1)
	sink := new(MockSink)

	var order []string
	sink.On("WriteSchema", ctx).Run(func(mock.Arguments) {
		order = append(order, "schema")
	}).Return(nil)
	sink.On("SeedIdentity", ctx, mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		order = append(order, "identity")
	}).Return(nil)
	sink.On("SeedAccount", ctx, mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		order = append(order, "account")
	}).Return(nil)
	sink.On("SeedStockHolding", ctx, mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		order = append(order, "stock")
	}).Return(nil)
	sink.On("WriteTransaction", ctx, mock.Anything).Run(func(mock.Arguments) {
		order = append(order, "tx")
	}).Return(nil)
	sink.On("Close", ctx).Run(func(mock.Arguments) {
		order = append(order, "close")
	}).Return(nil)

	result, err := svc.Generate(ctx, "ROHAN_SOFTWARE_DEV", janRange(t), sink)
	require.NoError(t, err)

	// schema, identity, 2 accounts, 4 holdings, then only transactions
	// until the final close.
	require.Greater(t, len(order), 8)
	assert.Equal(t, []string{"schema", "identity", "account", "account", "stock", "stock", "stock", "stock"}, order[:8])
	assert.Equal(t, "close", order[len(order)-1])
	for _, step := range order[8 : len(order)-1] {
		assert.Equal(t, "tx", step)
	}
	assert.Equal(t, len(order)-9, result.Transactions)
	assert.Equal(t, 31, result.Days)
}

func TestService_Generate_UnknownPersona_NoSinkCalls(t *testing.T) {
	ctx := context.Background()
	svc := testService(t, 1)
	sink := new(MockSink)

	_, err := svc.Generate(ctx, "NO_SUCH_PERSONA", janRange(t), sink)

	assert.ErrorIs(t, err, domain.ErrUnknownPersona)
	sink.AssertNotCalled(t, "WriteSchema", mock.Anything)
	sink.AssertNotCalled(t, "WriteTransaction", mock.Anything, mock.Anything)
	sink.AssertNotCalled(t, "Close", mock.Anything)
}

func TestService_Generate_AssignsUniqueTransactionIDs(t *testing.T) {
	ctx := context.Background()
	svc := testService(t, 5)
	sink := new(MockSink)

	seen := make(map[uuid.UUID]bool)
	sink.On("WriteSchema", ctx).Return(nil)
	sink.On("SeedIdentity", ctx, mock.Anything, mock.Anything).Return(nil)
	sink.On("SeedAccount", ctx, mock.Anything, mock.Anything).Return(nil)
	sink.On("SeedStockHolding", ctx, mock.Anything, mock.Anything).Return(nil)
	sink.On("WriteTransaction", ctx, mock.Anything).Run(func(args mock.Arguments) {
		tx := args.Get(1).(*domain.Transaction)
		require.NotEqual(t, uuid.Nil, tx.ID)
		require.False(t, seen[tx.ID], "transaction id %s assigned twice", tx.ID)
		seen[tx.ID] = true
	}).Return(nil)
	sink.On("Close", ctx).Return(nil)

	result, err := svc.Generate(ctx, "BIKESH_KTM_STUDENT", janRange(t), sink)
	require.NoError(t, err)
	assert.Equal(t, result.Transactions, len(seen))
}

func TestService_Generate_SeedIdentityTimestamp(t *testing.T) {
	ctx := context.Background()
	svc := testService(t, 1)
	sink := new(MockSink)

	want := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)
	sink.On("WriteSchema", ctx).Return(nil)
	sink.On("SeedIdentity", ctx, mock.Anything, want).Return(nil)
	sink.On("SeedAccount", ctx, mock.Anything, mock.Anything).Return(nil)
	sink.On("SeedStockHolding", ctx, mock.Anything, mock.Anything).Return(nil)
	sink.On("WriteTransaction", ctx, mock.Anything).Return(nil)
	sink.On("Close", ctx).Return(nil)

	_, err := svc.Generate(ctx, "PRIYA_BANK_MANAGER", janRange(t), sink)
	require.NoError(t, err)
	sink.AssertCalled(t, "SeedIdentity", ctx, mock.Anything, want)
}

func TestService_Generate_SinkErrorAborts(t *testing.T) {
	ctx := context.Background()
	svc := testService(t, 1)
	sink := new(MockSink)

	sink.On("WriteSchema", ctx).Return(assert.AnError)

	_, err := svc.Generate(ctx, "ROHAN_SOFTWARE_DEV", janRange(t), sink)
	assert.ErrorIs(t, err, assert.AnError)
	sink.AssertNotCalled(t, "Close", mock.Anything)
}

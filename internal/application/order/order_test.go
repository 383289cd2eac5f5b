package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pustakalay/inventory/internal/domain/activity"
	"github.com/pustakalay/inventory/internal/domain/book"
	"github.com/pustakalay/inventory/internal/domain/order"
)

// =========================================
// 内存测试替身
// =========================================

// inmemOrderRepo 内存借阅单仓储
type inmemOrderRepo struct {
	mu      sync.Mutex
	nextID  uint
	orders  map[uint]*order.Order
	readers map[uint]*order.Reader
}

func newOrderRepo() *inmemOrderRepo {
	return &inmemOrderRepo{
		nextID:  1,
		orders:  make(map[uint]*order.Order),
		readers: make(map[uint]*order.Reader),
	}
}

func (r *inmemOrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextID
	r.nextID++
	for i := range o.Books {
		o.Books[i].ID = uint(i + 1)
		o.Books[i].OrderID = o.ID
	}

	stored := *o
	r.orders[o.ID] = &stored
	return nil
}

func (r *inmemOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (r *inmemOrderRepo) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	stored := *o
	r.orders[o.ID] = &stored
	return nil
}

func (r *inmemOrderRepo) List(ctx context.Context, page, limit int) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var all []*order.Order
	for _, o := range r.orders {
		copied := *o
		all = append(all, &copied)
	}
	return all, int64(len(r.orders)), nil
}

func (r *inmemOrderRepo) ListByReader(ctx context.Context, readerID uint, page, limit int) ([]*order.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*order.Order
	for _, o := range r.orders {
		if o.ReaderID == readerID {
			copied := *o
			matched = append(matched, &copied)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *inmemOrderRepo) StatsByBook(ctx context.Context, bookID uint) (*order.BookStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := &order.BookStats{BookID: bookID}
	for _, o := range r.orders {
		var hit bool
		for _, b := range o.Books {
			if b.BookID == bookID {
				hit = true
				stats.TotalQty += int64(b.Quantity)
			}
		}
		if hit {
			stats.TotalOrders++
		}
	}
	return stats, nil
}

func (r *inmemOrderRepo) FindReader(ctx context.Context, id uint) (*order.Reader, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reader, ok := r.readers[id]
	if !ok {
		return nil, order.ErrReaderNotFound
	}
	return reader, nil
}

func (r *inmemOrderRepo) CreateReader(ctx context.Context, reader *order.Reader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reader.ID = uint(len(r.readers) + 1)
	reader.CreatedAt = time.Now()
	r.readers[reader.ID] = reader
	return nil
}

// inmemActivityRepo 内存活动日志仓储(只记录写入)
type inmemActivityRepo struct {
	mu   sync.Mutex
	logs []*activity.ActivityLog
}

func (r *inmemActivityRepo) Create(ctx context.Context, l *activity.ActivityLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l.ID = uint(len(r.logs) + 1)
	l.CreatedAt = time.Now()
	r.logs = append(r.logs, l)
	return nil
}

func (r *inmemActivityRepo) FindByID(ctx context.Context, id uint) (*activity.ActivityLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, activity.ErrNotFound
}

func (r *inmemActivityRepo) List(ctx context.Context) ([]*activity.ActivityLog, error) {
	return r.logs, nil
}

func (r *inmemActivityRepo) ListByOrder(ctx context.Context, orderID uint) ([]*activity.ActivityLog, error) {
	var matched []*activity.ActivityLog
	for _, l := range r.logs {
		if l.OrderID != nil && *l.OrderID == orderID {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (r *inmemActivityRepo) ListByReader(ctx context.Context, readerID uint) ([]*activity.ActivityLog, error) {
	var matched []*activity.ActivityLog
	for _, l := range r.logs {
		if l.ReaderID != nil && *l.ReaderID == readerID {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (r *inmemActivityRepo) Update(ctx context.Context, l *activity.ActivityLog) error { return nil }
func (r *inmemActivityRepo) Delete(ctx context.Context, id uint) error                 { return nil }

// stubBookService 图书查询桩:ID在集合内即存在
type stubBookService struct {
	book.Service
	known map[uint]bool
}

func (s *stubBookService) GetBook(ctx context.Context, id uint) (*book.Book, error) {
	if !s.known[id] {
		return nil, book.ErrBookNotFound
	}
	return &book.Book{ID: id, Title: "stub"}, nil
}

// =========================================
// 测试
// =========================================

func newFixtures(t *testing.T) (*inmemOrderRepo, *inmemActivityRepo, *stubBookService, uint) {
	t.Helper()

	orderRepo := newOrderRepo()
	activityRepo := &inmemActivityRepo{}
	books := &stubBookService{known: map[uint]bool{1: true, 2: true}}

	reader := &order.Reader{Name: "Ravi", Phone: "9800000000"}
	require.NoError(t, orderRepo.CreateReader(context.Background(), reader))

	return orderRepo, activityRepo, books, reader.ID
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("正常创建并记录流水", func(t *testing.T) {
		orderRepo, activityRepo, books, readerID := newFixtures(t)
		uc := NewCreateOrderUseCase(orderRepo, books, activityRepo)

		o, err := uc.Execute(ctx, readerID,
			[]order.OrderedBook{{BookID: 1, Quantity: 2}, {BookID: 2, Quantity: 1}}, "exam prep")
		require.NoError(t, err)

		assert.NotZero(t, o.ID)
		assert.Equal(t, order.OrderStatusPending, o.Status)
		assert.Equal(t, 3, o.TotalQuantity())

		logs, _ := activityRepo.ListByOrder(ctx, o.ID)
		require.Len(t, logs, 1)
		assert.Equal(t, "order_created", logs[0].Action)
	})

	t.Run("读者不存在", func(t *testing.T) {
		orderRepo, activityRepo, books, _ := newFixtures(t)
		uc := NewCreateOrderUseCase(orderRepo, books, activityRepo)

		_, err := uc.Execute(ctx, 9999, []order.OrderedBook{{BookID: 1, Quantity: 1}}, "")
		assert.ErrorIs(t, err, order.ErrReaderNotFound)
	})

	t.Run("图书不存在", func(t *testing.T) {
		orderRepo, activityRepo, books, readerID := newFixtures(t)
		uc := NewCreateOrderUseCase(orderRepo, books, activityRepo)

		_, err := uc.Execute(ctx, readerID, []order.OrderedBook{{BookID: 42, Quantity: 1}}, "")
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})

	t.Run("明细为空", func(t *testing.T) {
		orderRepo, activityRepo, books, readerID := newFixtures(t)
		uc := NewCreateOrderUseCase(orderRepo, books, activityRepo)

		_, err := uc.Execute(ctx, readerID, nil, "")
		assert.ErrorIs(t, err, order.ErrNoBooks)
	})

	t.Run("数量非法", func(t *testing.T) {
		orderRepo, activityRepo, books, readerID := newFixtures(t)
		uc := NewCreateOrderUseCase(orderRepo, books, activityRepo)

		_, err := uc.Execute(ctx, readerID, []order.OrderedBook{{BookID: 1, Quantity: 0}}, "")
		assert.ErrorIs(t, err, order.ErrInvalidQuantity)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*UpdateOrderStatusUseCase, *inmemActivityRepo, uint) {
		orderRepo, activityRepo, books, readerID := newFixtures(t)
		createUC := NewCreateOrderUseCase(orderRepo, books, activityRepo)

		o, err := createUC.Execute(ctx, readerID, []order.OrderedBook{{BookID: 1, Quantity: 1}}, "")
		require.NoError(t, err)

		return NewUpdateOrderStatusUseCase(orderRepo, activityRepo), activityRepo, o.ID
	}

	t.Run("pending到approved", func(t *testing.T) {
		uc, activityRepo, id := setup(t)

		o, err := uc.Execute(ctx, id, "approved", "")
		require.NoError(t, err)
		assert.Equal(t, order.OrderStatusApproved, o.Status)

		logs, _ := activityRepo.ListByOrder(ctx, id)
		require.Len(t, logs, 2) // 创建流水 + 流转流水
		assert.Equal(t, "order_approved", logs[1].Action)
	})

	t.Run("approved到returned", func(t *testing.T) {
		uc, _, id := setup(t)

		_, err := uc.Execute(ctx, id, "approved", "")
		require.NoError(t, err)

		o, err := uc.Execute(ctx, id, "returned", "all good")
		require.NoError(t, err)
		assert.Equal(t, order.OrderStatusReturned, o.Status)
		assert.Equal(t, "all good", o.Notes)
	})

	t.Run("pending不能直接returned", func(t *testing.T) {
		uc, _, id := setup(t)

		_, err := uc.Execute(ctx, id, "returned", "")
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("returned是终态", func(t *testing.T) {
		uc, _, id := setup(t)

		_, err := uc.Execute(ctx, id, "approved", "")
		require.NoError(t, err)
		_, err = uc.Execute(ctx, id, "returned", "")
		require.NoError(t, err)

		_, err = uc.Execute(ctx, id, "cancelled", "")
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("未知状态值", func(t *testing.T) {
		uc, _, id := setup(t)

		_, err := uc.Execute(ctx, id, "teleported", "")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("借阅单不存在", func(t *testing.T) {
		uc, _, _ := setup(t)

		_, err := uc.Execute(ctx, 9999, "approved", "")
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

func TestBookStats(t *testing.T) {
	ctx := context.Background()
	orderRepo, activityRepo, books, readerID := newFixtures(t)
	createUC := NewCreateOrderUseCase(orderRepo, books, activityRepo)

	_, err := createUC.Execute(ctx, readerID, []order.OrderedBook{{BookID: 1, Quantity: 2}}, "")
	require.NoError(t, err)
	_, err = createUC.Execute(ctx, readerID, []order.OrderedBook{{BookID: 1, Quantity: 3}, {BookID: 2, Quantity: 1}}, "")
	require.NoError(t, err)

	uc := NewBookStatsUseCase(orderRepo)
	stats, err := uc.Execute(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(5), stats.TotalQty)
}

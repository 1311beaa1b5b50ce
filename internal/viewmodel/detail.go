package viewmodel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rs/xid"

	"product_viewer/internal/domain"
	"product_viewer/internal/domain/entity"
	"product_viewer/pkg/contextx"
	"product_viewer/pkg/logx"
	"product_viewer/pkg/observable"
)

const MaxQuantity = 10

type DetailStateKind int

const (
	DetailIdle DetailStateKind = iota
	DetailLoading
	DetailLoaded
	DetailFailed
)

func (k DetailStateKind) String() string {
	switch k {
	case DetailIdle:
		return "idle"
	case DetailLoading:
		return "loading"
	case DetailLoaded:
		return "loaded"
	case DetailFailed:
		return "error"
	default:
		return "invalid"
	}
}

type DetailErrorKind int

const (
	DetailErrorNotFound DetailErrorKind = iota + 1
	DetailErrorNetworkUnavailable
	DetailErrorGeneric
)

// DetailError is the presentation of a failed detail load.
type DetailError struct {
	Kind    DetailErrorKind
	Title   string
	Message string
	Icon    string
	Retry   bool
}

func newDetailError(err error) *DetailError {
	domainErr, ok := domain.AsError(err)
	if !ok {
		return genericDetailError(err.Error())
	}

	switch domainErr.Kind {
	case domain.KindNotFound:
		return &DetailError{
			Kind:    DetailErrorNotFound,
			Title:   "Product Unavailable",
			Message: "This product is no longer available.",
			Icon:    "tag.slash",
			Retry:   false,
		}
	case domain.KindNetworkUnavailable:
		return &DetailError{
			Kind:    DetailErrorNetworkUnavailable,
			Title:   "No Connection",
			Message: "Please check your internet connection and try again.",
			Icon:    "wifi.slash",
			Retry:   true,
		}
	case domain.KindInvalidData:
		return genericDetailError("Unable to load product details.")
	default:
		return genericDetailError(domainErr.Description())
	}
}

func genericDetailError(message string) *DetailError {
	return &DetailError{
		Kind:    DetailErrorGeneric,
		Title:   "Something Went Wrong",
		Message: message,
		Icon:    "exclamationmark.triangle",
		Retry:   true,
	}
}

// DetailState is one snapshot of a deal detail screen. Deal is the last
// known version of the deal, Err is set only for DetailFailed.
type DetailState struct {
	Kind     DetailStateKind
	Deal     entity.Deal
	Err      *DetailError
	Quantity int
}

func (s DetailState) IsInCart() bool {
	return s.Quantity > 0
}

func (s DetailState) CanIncrement() bool {
	return s.Quantity < MaxQuantity
}

func (s DetailState) CanDecrement() bool {
	return s.Quantity > 0
}

type DealDetailGetter interface {
	Execute(ctx context.Context, id int64) (entity.Deal, error)
}

// Detail drives the detail screen of one deal. Loads follow the same
// supersede and discard rules as List.
type Detail struct {
	getDealDetail DealDetailGetter
	state         *observable.Value[DetailState]

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	closed     bool
	wg         sync.WaitGroup
}

// NewDetail starts idle with deal as the known version until a load replaces it.
func NewDetail(deal entity.Deal, getDealDetail DealDetailGetter) *Detail {
	return &Detail{
		getDealDetail: getDealDetail,
		state:         observable.NewValue(DetailState{Kind: DetailIdle, Deal: deal}),
	}
}

func (d *Detail) DealID() int64 {
	return d.state.Load().Deal.ID
}

func (d *Detail) Load(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if d.cancelFunc != nil {
		d.cancelFunc()
	}

	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	loadCtx = contextx.WithTraceID(loadCtx, contextx.TraceID(xid.New().String()))
	d.cancelFunc = cancel

	current := d.state.Load()
	current.Kind = DetailLoading
	current.Err = nil
	d.state.Store(current)

	logger(loadCtx).Debug("loading deal detail",
		slog.String(logx.FieldScreen, "detail"),
		slog.Int64(logx.FieldDealID, current.Deal.ID),
	)

	d.wg.Add(1)

	go func() {
		defer d.wg.Done()
		defer cancel()

		d.load(loadCtx, current.Deal.ID)
	}()
}

func (d *Detail) Retry(ctx context.Context) {
	d.Load(ctx)
}

func (d *Detail) load(ctx context.Context, id int64) {
	if ctx.Err() != nil {
		return
	}

	deal, err := d.getDealDetail.Execute(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()

	if ctx.Err() != nil {
		logger(ctx).Debug("discarding superseded deal detail load", slog.Int64(logx.FieldDealID, id))

		return
	}

	current := d.state.Load()

	if err != nil {
		current.Kind = DetailFailed
		current.Err = newDetailError(err)

		logger(ctx).Warn("failed to load deal detail",
			slog.Int64(logx.FieldDealID, id),
			slog.String(logx.FieldState, current.Err.Title),
			logx.Error(err),
		)
		d.state.Store(current)

		return
	}

	current.Kind = DetailLoaded
	current.Deal = deal
	current.Err = nil
	d.state.Store(current)
}

func (d *Detail) AddToCart() {
	d.updateQuantity(func(int) int { return 1 })
}

func (d *Detail) IncrementQuantity() {
	d.updateQuantity(func(q int) int { return min(q+1, MaxQuantity) })
}

func (d *Detail) DecrementQuantity() {
	d.updateQuantity(func(q int) int { return max(q-1, 0) })
}

func (d *Detail) RemoveFromCart() {
	d.updateQuantity(func(int) int { return 0 })
}

func (d *Detail) updateQuantity(fn func(quantity int) int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.state.Load()
	current.Quantity = fn(current.Quantity)
	d.state.Store(current)
}

func (d *Detail) State() DetailState {
	return d.state.Load()
}

func (d *Detail) Subscribe(ctx context.Context) <-chan DetailState {
	return d.state.Subscribe(ctx)
}

// Close cancels the in-flight load and waits for it to return.
func (d *Detail) Close() {
	d.mu.Lock()
	d.closed = true

	if d.cancelFunc != nil {
		d.cancelFunc()
		d.cancelFunc = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

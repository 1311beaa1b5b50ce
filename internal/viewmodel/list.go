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

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const unexpectedErrorMessage = "An unexpected error occurred. Please try again."

type ListStateKind int

const (
	ListIdle ListStateKind = iota
	ListLoading
	ListRefreshing
	ListLoaded
	ListEmpty
	ListNetworkError
	ListError
)

func (k ListStateKind) String() string {
	switch k {
	case ListIdle:
		return "idle"
	case ListLoading:
		return "loading"
	case ListRefreshing:
		return "refreshing"
	case ListLoaded:
		return "loaded"
	case ListEmpty:
		return "empty"
	case ListNetworkError:
		return "network-error"
	case ListError:
		return "error"
	default:
		return "invalid"
	}
}

// ListState is one snapshot of the deals list screen. Deals is set while
// loaded and, with the previously loaded deals, while refreshing. Message is
// set only for ListError.
type ListState struct {
	Kind    ListStateKind
	Deals   []entity.Deal
	Message string
}

type DealsFetcher interface {
	Execute(ctx context.Context) ([]entity.Deal, error)
}

// SelectionHandler receives the deal picked on the list screen.
type SelectionHandler interface {
	DealSelected(ctx context.Context, deal entity.Deal)
}

// List drives the deals list screen. At most one load is in flight: starting
// a load cancels the previous one, and a cancelled load never writes state.
type List struct {
	fetchDeals DealsFetcher
	selection  SelectionHandler
	state      *observable.Value[ListState]

	mu         sync.Mutex
	deals      []entity.Deal
	cancelFunc context.CancelFunc
	closed     bool
	wg         sync.WaitGroup
}

func NewList(fetchDeals DealsFetcher, selection SelectionHandler) *List {
	return &List{
		fetchDeals: fetchDeals,
		selection:  selection,
		state:      observable.NewValue(ListState{Kind: ListIdle}),
	}
}

func (l *List) ViewDidLoad(ctx context.Context) {
	l.reload(ctx)
}

func (l *List) Refresh(ctx context.Context) {
	l.reload(ctx)
}

// DidSelectDeal notifies the selection handler with the deal at index.
// Out of range indexes are ignored. It reports whether a deal was selected.
func (l *List) DidSelectDeal(ctx context.Context, index int) bool {
	l.mu.Lock()
	if index < 0 || index >= len(l.deals) {
		l.mu.Unlock()

		return false
	}

	deal := l.deals[index]
	l.mu.Unlock()

	logger(ctx).Debug("deal selected", slog.Int64(logx.FieldDealID, deal.ID))

	if l.selection != nil {
		l.selection.DealSelected(ctx, deal)
	}

	return true
}

func (l *List) State() ListState {
	return l.state.Load()
}

// Subscribe streams the current state followed by every change until ctx is done.
func (l *List) Subscribe(ctx context.Context) <-chan ListState {
	return l.state.Subscribe(ctx)
}

// Close cancels the in-flight load and waits for it to return.
func (l *List) Close() {
	l.mu.Lock()
	l.closed = true

	if l.cancelFunc != nil {
		l.cancelFunc()
		l.cancelFunc = nil
	}
	l.mu.Unlock()

	l.wg.Wait()
}

// reload starts a load detached from the caller's cancellation. The load
// only ends early when superseded or when the list is closed.
func (l *List) reload(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	if l.cancelFunc != nil {
		l.cancelFunc()
	}

	loadCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	loadCtx = contextx.WithTraceID(loadCtx, contextx.TraceID(xid.New().String()))
	l.cancelFunc = cancel

	if len(l.deals) == 0 {
		l.state.Store(ListState{Kind: ListLoading})
	} else {
		l.state.Store(ListState{Kind: ListRefreshing, Deals: l.deals})
	}

	logger(loadCtx).Debug("loading deals", slog.String(logx.FieldScreen, "list"))

	l.wg.Add(1)

	go func() {
		defer l.wg.Done()
		defer cancel()

		l.load(loadCtx)
	}()
}

func (l *List) load(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	deals, err := l.fetchDeals.Execute(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil {
		logger(ctx).Debug("discarding superseded deals load")

		return
	}

	if err != nil {
		state := listErrorState(err)

		logger(ctx).Warn("failed to load deals", logx.Stringer(logx.FieldState, state.Kind), logx.Error(err))
		l.state.Store(state)

		return
	}

	l.deals = deals

	if len(deals) == 0 {
		logger(ctx).Info("no deals found")
		l.state.Store(ListState{Kind: ListEmpty})

		return
	}

	logger(ctx).Info("deals loaded", slog.Int(logx.FieldDealsCount, len(deals)))
	l.state.Store(ListState{Kind: ListLoaded, Deals: deals})
}

func listErrorState(err error) ListState {
	domainErr, ok := domain.AsError(err)
	if !ok {
		return ListState{Kind: ListError, Message: unexpectedErrorMessage}
	}

	if domainErr.Kind == domain.KindNetworkUnavailable {
		return ListState{Kind: ListNetworkError}
	}

	return ListState{Kind: ListError, Message: domainErr.Description()}
}

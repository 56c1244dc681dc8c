package stubapi

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// notification asks a supplier to restock a set of products.
type notification struct {
	Supplier domain.Supplier
	Products []domain.Product
}

// Notifier fans supplier low-stock notifications out to a fixed set of
// workers, sharded by supplier ID so one supplier's mails stay ordered.
// The stub "sends" by logging; the contract only requires the endpoint to
// accept and acknowledge.
type Notifier struct {
	workers []chan notification
	log     zerolog.Logger
}

// NewNotifier creates a Notifier with numWorkers sharded workers. If
// numWorkers <= 0, defaultWorkers is used.
func NewNotifier(numWorkers int, log zerolog.Logger) *Notifier {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	n := &Notifier{
		workers: make([]chan notification, numWorkers),
		log:     log,
	}
	for i := range n.workers {
		n.workers[i] = make(chan notification, channelBuffer)
	}
	return n
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (n *Notifier) Start(ctx context.Context) {
	for i, ch := range n.workers {
		go n.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker owning the supplier's shard.
// Returns false when the worker's buffer is full.
func (n *Notifier) Enqueue(msg notification) bool {
	h := fnv.New32a()
	_, _ = h.Write([]byte(msg.Supplier.ID))
	idx := int(h.Sum32()) % len(n.workers)

	select {
	case n.workers[idx] <- msg:
		return true
	default:
		NotificationsTotal.WithLabelValues("dropped").Inc()
		n.log.Warn().Str("supplier", msg.Supplier.ID).Msg("notifier: queue full, dropping")
		return false
	}
}

func (n *Notifier) runWorker(ctx context.Context, id int, ch chan notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			n.log.Info().
				Int("worker", id).
				Str("supplier", msg.Supplier.Email).
				Int("products", len(msg.Products)).
				Msg("notifier: low-stock notification sent")
			NotificationsTotal.WithLabelValues("sent").Inc()
		}
	}
}

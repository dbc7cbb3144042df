package operator

import (
	"context"

	"github.com/carson-networks/bank-console/internal/operator/actions"
	"github.com/carson-networks/bank-console/internal/storage/account"
)

// Operator is the worker that applies actions from the queue to the store.
type Operator struct {
	store *account.Store
	queue chan ActionItem
}

func NewOperator(s *account.Store, queue chan ActionItem) *Operator {
	return &Operator{
		store: s,
		queue: queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up waiting; skip work nobody will observe.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err := item.action.Perform(item.ctx, o.store)
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

package transactor

import (
	"context"
	"errors"
)

type (
	transactorKey struct{}
	hooksKey      struct{}

	// DBTXContext คืน *sqlx.DB หรือ *sqlx.Tx ตาม context ที่ส่งเข้ามา
	DBTXContext func(context.Context) DBTX
)

func txToContext(ctx context.Context, tx sqlxDB) context.Context {
	return context.WithValue(ctx, transactorKey{}, tx)
}

func txFromContext(ctx context.Context) sqlxDB {
	if tx, ok := ctx.Value(transactorKey{}).(sqlxDB); ok {
		return tx
	}
	return nil
}

type postCommitHooks struct {
	hooks []PostCommitHook
}

func (h *postCommitHooks) register(hook PostCommitHook) {
	h.hooks = append(h.hooks, hook)
}

func (h *postCommitHooks) run(ctx context.Context) error {
	var errs []error
	for _, hook := range h.hooks {
		if err := hook(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// คืนค่า isOutermost = true เมื่อยังไม่มี transaction ใน context
func hooksFromContext(ctx context.Context) (*postCommitHooks, bool) {
	if h, ok := ctx.Value(hooksKey{}).(*postCommitHooks); ok {
		return h, false
	}
	return nil, true
}

func hooksToContext(ctx context.Context, h *postCommitHooks) context.Context {
	return context.WithValue(ctx, hooksKey{}, h)
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDispatchOrdersQueryHandler reads one page of the dispatch board from
// the database. Filters are applied in SQL so pagination stays correct under
// any combination of search and status.
type ListDispatchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListDispatchOrdersQueryHandler creates a handler for dispatch board
// queries. Requires a GORM database connection for query execution.
func NewListDispatchOrdersQueryHandler(db *gorm.DB) ListDispatchOrdersQueryHandler {
	return ListDispatchOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of matching orders, newest
// first, together with the total match count.
func (h ListDispatchOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListDispatchOrdersQuery,
) (ListDispatchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDispatchOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 2)

	if query.Search() != "" {
		where += " AND CAST(id AS TEXT) ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}
	if query.Status() != nil {
		where += " AND status = ?"
		args = append(args, int(*query.Status()))
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(*) FROM orders WHERE "+where, args...,
	).Scan(&total).Error
	if err != nil {
		return ListDispatchOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * DispatchPageSize
	pageArgs := append(args, DispatchPageSize, offset)

	views, err := scanOrderViews(ctx, h.db, `
		SELECT `+orderViewColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...)
	if err != nil {
		return ListDispatchOrdersQueryResponse{}, err
	}

	if err = attachItems(ctx, h.db, views); err != nil {
		return ListDispatchOrdersQueryResponse{}, err
	}

	return ListDispatchOrdersQueryResponse{
		Orders:   views,
		Total:    total,
		Page:     query.Page(),
		PageSize: DispatchPageSize,
	}, nil
}

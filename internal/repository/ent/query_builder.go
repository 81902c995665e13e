package ent

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/pocketwise/pocketwise/ent"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
)

// ApplyBaseFilters restricts the query to the active rows of the user in ctx
func ApplyBaseFilters[T any](ctx context.Context, query T, opts BaseQueryOptions[T]) T {
	query = opts.ApplyUserFilter(ctx, query)
	return opts.ApplyStatusFilter(query, string(types.StatusActive))
}

// ApplyPagination applies pagination to the query if the filter is not unlimited
func ApplyPagination[T any](query T, filter *types.QueryFilter, opts BaseQueryOptions[T]) T {
	if filter.IsUnlimited() {
		if offset := filter.GetOffset(); offset > 0 {
			return opts.ApplyPaginationFilter(query, 0, offset)
		}
		return query
	}
	return opts.ApplyPaginationFilter(query, filter.GetLimit(), filter.GetOffset())
}

// ApplySorting orders by the entity's natural field in the filter's direction
func ApplySorting[T any](query T, filter *types.QueryFilter, sortField string, opts BaseQueryOptions[T]) T {
	return opts.ApplySortFilter(query, sortField, filter.GetOrder())
}

// ApplyQueryOptions applies all common query options (base filters, pagination, sorting)
func ApplyQueryOptions[T any](ctx context.Context, query T, filter *types.QueryFilter, sortField string, opts BaseQueryOptions[T]) T {
	query = ApplyBaseFilters(ctx, query, opts)
	query = ApplySorting(query, filter, sortField, opts)
	return ApplyPagination(query, filter, opts)
}

func notFound(err error, entity, id string) error {
	if ent.IsNotFound(err) {
		return ierr.WithError(err).
			WithHintf("%s not found", entity).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return dbError(err, "failed to get "+entity)
}

// dbError maps ent and driver failures onto the internal error codes
func dbError(err error, hint string) error {
	if ent.IsConstraintError(err) {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ierr.WithError(err).
				WithHint("A record with the same identity already exists").
				WithReportableDetails(map[string]any{"constraint": pqErr.Constraint}).
				Mark(ierr.ErrAlreadyExists)
		}
	}
	if ent.IsValidationError(err) {
		return ierr.WithError(err).
			WithHint(hint).
			Mark(ierr.ErrValidation)
	}
	return ierr.WithError(err).
		WithHint(hint).
		Mark(ierr.ErrDatabase)
}

func affected(n int, entity, id string) error {
	if n == 0 {
		return ierr.NewErrorf("%s not found", entity).
			WithHintf("%s not found", entity).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

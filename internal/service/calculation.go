package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ubudab109/number-discussion/internal/cache"
	"github.com/ubudab109/number-discussion/internal/domain"
	"github.com/ubudab109/number-discussion/internal/repository"
)

// Cache key and TTL for the assembled forest
const (
	forestCacheKey = "calculations:forest"
	forestCacheTTL = 30 * time.Second
)

// CalculationService maintains the append-only ledger of calculations and
// assembles the forest view. Nodes are immutable once created; any
// authenticated user may extend any node.
type CalculationService struct {
	calcs repository.CalculationRepository
	cache *cache.Store // nil disables forest caching
}

// NewCalculationService constructs a CalculationService. cacheStore may be
// nil to disable caching.
func NewCalculationService(calcs repository.CalculationRepository, cacheStore *cache.Store) *CalculationService {
	return &CalculationService{calcs: calcs, cache: cacheStore}
}

// CreateRoot appends a root node seeded with startingNumber; the node's
// result equals the starting number.
func (s *CalculationService) CreateRoot(ctx context.Context, userID uint, startingNumber float64) (*domain.Calculation, error) {
	calc := &domain.Calculation{
		UserID:         userID,
		StartingNumber: &startingNumber,
		Result:         startingNumber,
	}
	if err := s.calcs.Create(ctx, calc); err != nil {
		return nil, err
	}
	s.invalidateForest(ctx)
	return calc, nil
}

// AddOperation appends a child of parentID whose result is the parent's
// result combined with operand under op. Fails with
// domain.ErrParentNotFound or domain.ErrDivisionByZero before anything is
// written; no partial rows are ever persisted.
func (s *CalculationService) AddOperation(ctx context.Context, userID, parentID uint, op domain.Operation, operand float64) (*domain.Calculation, error) {
	parent, err := s.calcs.FindByID(ctx, parentID)
	if err != nil {
		return nil, err
	}

	result, err := op.Apply(parent.Result, operand)
	if err != nil {
		return nil, err
	}

	calc := &domain.Calculation{
		UserID:    userID,
		ParentID:  &parent.ID,
		Operation: &op,
		Operand:   &operand,
		Result:    result,
	}
	if err := s.calcs.Create(ctx, calc); err != nil {
		return nil, err
	}
	s.invalidateForest(ctx)
	return calc, nil
}

// ListForest scans the full ledger and rebuilds the forest: one tree per
// root, children ordered by creation time (ids break timestamp ties). A
// node whose parent is missing from the scanned rows is dropped; the
// ledger's parent-existence check makes that unreachable in practice.
func (s *CalculationService) ListForest(ctx context.Context) ([]*domain.CalculationNode, error) {
	var cached []*domain.CalculationNode
	if found, err := s.cache.GetJSON(ctx, forestCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	rows, err := s.calcs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// First pass: one node per row, keyed by id, scan order preserved
	nodes := make(map[uint]*domain.CalculationNode, len(rows))
	ordered := make([]*domain.CalculationNode, 0, len(rows))
	for i := range rows {
		node := &domain.CalculationNode{
			CalculationWithUser: rows[i],
			Children:            []*domain.CalculationNode{},
		}
		nodes[node.ID] = node
		ordered = append(ordered, node)
	}

	// Second pass: attach each non-root to its parent, collect roots
	roots := []*domain.CalculationNode{}
	for _, node := range ordered {
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok {
			logrus.WithFields(logrus.Fields{
				"calculation_id": node.ID,
				"parent_id":      *node.ParentID,
			}).Debug("Dropping calculation with missing parent")
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if err := s.cache.SetJSON(ctx, forestCacheKey, roots, forestCacheTTL); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to cache forest")
	}
	return roots, nil
}

// invalidateForest drops the cached forest after a write. Best effort: a
// stale entry only survives until the cache TTL lapses.
func (s *CalculationService) invalidateForest(ctx context.Context) {
	if err := s.cache.Delete(ctx, forestCacheKey); err != nil {
		logrus.WithField("error", err.Error()).Warn("Failed to invalidate forest cache")
	}
}

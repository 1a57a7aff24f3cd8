package workload

import (
	"fmt"
	"log/slog"

	"github.com/cbehopkins/splaytree/splay"
)

// Target is the tree surface a workload drives. Both *splay.Tree and
// *metrics.Tree satisfy it.
type Target[K any] interface {
	Insert(key K, value string) bool
	Add(key K) bool
	Contains(key K) bool
	Delete(key K) bool
	Size() int
	FindMinimum() *splay.Node[K, string]
	FindMaximum() *splay.Node[K, string]
}

// CheckFunc is called after every applied operation. A non-nil error
// stops the run.
type CheckFunc func() error

// Result summarises a run.
type Result struct {
	Counts    map[OpKind]int
	Applied   int // insert of a new key, hit on search/delete, non-empty min/max
	NoOps     int // duplicate insert, miss on search/delete, empty min/max
	FinalSize int
}

// Run applies ops to target in order. Each op is logged at debug level;
// check, when non-nil, runs after each op.
func Run[K any](target Target[K], ops []Op, parse KeyParser[K], logger *slog.Logger, check CheckFunc) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	res := Result{Counts: make(map[OpKind]int)}
	for i, op := range ops {
		ok, err := apply(target, op, parse)
		if err != nil {
			return res, fmt.Errorf("op %d (%s): %w", i, op, err)
		}
		res.Counts[op.Kind]++
		if ok {
			res.Applied++
		} else {
			res.NoOps++
		}
		logger.Debug("applied op", "index", i, "op", op.Kind, "key", op.Key, "result", ok, "size", target.Size())

		if check != nil {
			if err := check(); err != nil {
				return res, fmt.Errorf("op %d (%s): %w", i, op, err)
			}
		}
	}
	res.FinalSize = target.Size()
	return res, nil
}

func apply[K any](target Target[K], op Op, parse KeyParser[K]) (bool, error) {
	var key K
	if op.Kind.NeedsKey() {
		k, err := parse(op.Key)
		if err != nil {
			return false, err
		}
		key = k
	}

	switch op.Kind {
	case OpInsert:
		return target.Insert(key, op.Value), nil
	case OpAdd:
		return target.Add(key), nil
	case OpSearch:
		return target.Contains(key), nil
	case OpDelete:
		return target.Delete(key), nil
	case OpMin:
		return target.FindMinimum() != nil, nil
	case OpMax:
		return target.FindMaximum() != nil, nil
	case OpSize:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownOp, op.Kind)
	}
}

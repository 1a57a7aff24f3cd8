package workload

import (
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// Generate builds a random workload from cfg. The same Config always
// produces the same operations.
func Generate(cfg Config) ([]Op, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	faker := gofakeit.New(cfg.Seed)
	var words []string
	if cfg.StringKeys {
		words = make([]string, cfg.KeySpace)
		for i := range words {
			// Suffix keeps the vocabulary at KeySpace distinct keys.
			words[i] = token(faker.Word()) + "-" + strconv.Itoa(i)
		}
	}
	nextKey := func() string {
		i := faker.Number(0, cfg.KeySpace-1)
		if words != nil {
			return words[i]
		}
		return strconv.Itoa(i)
	}

	insertUpTo := cfg.InsertRatio
	searchUpTo := insertUpTo + cfg.SearchRatio
	deleteUpTo := searchUpTo + cfg.DeleteRatio

	ops := make([]Op, 0, cfg.Ops)
	for i := 0; i < cfg.Ops; i++ {
		// r must fall in [0, 1) to compare against the ratios.
		r := faker.Float64Range(0, 1)
		switch {
		case r < insertUpTo:
			ops = append(ops, Op{Kind: OpInsert, Key: nextKey(), Value: token(faker.Word())})
		case r < searchUpTo:
			ops = append(ops, Op{Kind: OpSearch, Key: nextKey()})
		case r < deleteUpTo:
			ops = append(ops, Op{Kind: OpDelete, Key: nextKey()})
		case faker.Bool():
			ops = append(ops, Op{Kind: OpMin})
		default:
			ops = append(ops, Op{Kind: OpMax})
		}
	}
	return ops, nil
}

// token joins multi-word fakes so a key stays a single script field.
func token(s string) string {
	return strings.Join(strings.Fields(s), "_")
}

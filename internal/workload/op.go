package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OpKind names a tree operation.
type OpKind string

const (
	OpInsert OpKind = "insert"
	OpAdd    OpKind = "add"
	OpSearch OpKind = "search"
	OpDelete OpKind = "delete"
	OpMin    OpKind = "min"
	OpMax    OpKind = "max"
	OpSize   OpKind = "size"
)

var opAliases = map[string]OpKind{
	"insert":   OpInsert,
	"add":      OpAdd,
	"search":   OpSearch,
	"contains": OpSearch,
	"delete":   OpDelete,
	"remove":   OpDelete,
	"min":      OpMin,
	"max":      OpMax,
	"size":     OpSize,
}

// NeedsKey reports whether the operation takes a key argument.
func (k OpKind) NeedsKey() bool {
	switch k {
	case OpInsert, OpAdd, OpSearch, OpDelete:
		return true
	default:
		return false
	}
}

// Op is one operation of a workload. Key and Value are kept as text and
// parsed by the runner's KeyParser.
type Op struct {
	Kind  OpKind
	Key   string
	Value string
}

func (o Op) String() string {
	switch {
	case o.Kind == OpInsert && o.Value != "":
		return fmt.Sprintf("%s %s %s", o.Kind, o.Key, o.Value)
	case o.Kind.NeedsKey():
		return fmt.Sprintf("%s %s", o.Kind, o.Key)
	default:
		return string(o.Kind)
	}
}

// ParseOp parses a single script line.
func ParseOp(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("%w: empty line", ErrUnknownOp)
	}
	kind, ok := opAliases[strings.ToLower(fields[0])]
	if !ok {
		return Op{}, fmt.Errorf("%w: %q", ErrUnknownOp, fields[0])
	}
	op := Op{Kind: kind}
	args := fields[1:]

	if !kind.NeedsKey() {
		if len(args) > 0 {
			return Op{}, fmt.Errorf("%w: %s takes no arguments", ErrExtraArgs, kind)
		}
		return op, nil
	}
	if len(args) == 0 {
		return Op{}, fmt.Errorf("%w: %s", ErrMissingKey, kind)
	}
	op.Key = args[0]
	if kind == OpInsert {
		op.Value = strings.Join(args[1:], " ")
	} else if len(args) > 1 {
		return Op{}, fmt.Errorf("%w: %s takes one key", ErrExtraArgs, kind)
	}
	return op, nil
}

// ParseScript reads one operation per line. Blank lines and lines
// starting with '#' are skipped. Errors carry the 1-based line number.
func ParseScript(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := ParseOp(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ops, nil
}

// WriteScript writes ops in the format ParseScript reads.
func WriteScript(w io.Writer, ops []Op) error {
	bw := bufio.NewWriter(w)
	for _, op := range ops {
		if _, err := fmt.Fprintln(bw, op.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// KeyParser converts the textual key of an Op into a tree key.
type KeyParser[K any] func(string) (K, error)

// ParseInt64Key parses base-10 integer keys.
func ParseInt64Key(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadKey, s)
	}
	return v, nil
}

// ParseStringKey uses the text as the key.
func ParseStringKey(s string) (string, error) {
	return s, nil
}

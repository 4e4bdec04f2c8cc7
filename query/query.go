package query

import (
	"errors"
	"fmt"

	"github.com/carlosqueiroz/rtp-connect/record"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Env is what an expression sees for each record.  Attribute values
// are strings, with nulls as "".
type Env struct {
	Keyword string            `expr:"keyword"`
	Depth   int               `expr:"depth"`
	Index   int               `expr:"index"`
	Attrs   map[string]string `expr:"attrs"`
}

// Query is a compiled boolean expression over records.
type Query struct {
	src  string
	prog *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("num", func(params ...any) (any, error) {
			return record.V(params[0].(string)).Float(), nil
		},
			new(func(string) float64)),
		expr.Function("integer", func(params ...any) (any, error) {
			return record.V(params[0].(string)).Int(), nil
		},
			new(func(string) int)),
	}
}

// Compile parses src.  Besides the expr language builtins, num(s) and
// integer(s) convert attribute text the way RTP readers do, taking the
// longest numeric prefix and giving 0 when there is none.
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prog: prog}, nil
}

func MustCompile(src string) *Query {
	q, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string { return q.src }

// NewEnv builds the environment for r.  Index is the position of r
// among its parent's children of the same type, 0 for a root.
func NewEnv(r record.Record) Env {
	attrs := make(map[string]string, r.Schema().Len())
	for k, v := range r.Map() {
		attrs[k] = v.String()
	}
	return Env{
		Keyword: string(r.Keyword()),
		Depth:   record.Depth(r),
		Index:   siblingIndex(r),
		Attrs:   attrs,
	}
}

func siblingIndex(r record.Record) int {
	p := r.Parent()
	if p == nil {
		return 0
	}
	i := 0
	for _, c := range p.Children() {
		if c == r {
			return i
		}
		if c.Keyword() == r.Keyword() {
			i++
		}
	}
	return -1
}

func (q *Query) Match(r record.Record) (bool, error) {
	res, err := vm.Run(q.prog, NewEnv(r))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrQuery, r.Keyword(), err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrQuery, q.src, res)
	}
	return b, nil
}

// Select returns the records under root, root included, that match q,
// in document order.
func Select(root record.Record, q *Query) ([]record.Record, error) {
	var (
		res []record.Record
		err error
	)
	record.Walk(root, func(r record.Record, _ int) bool {
		if err != nil {
			return false
		}
		var ok bool
		ok, err = q.Match(r)
		if ok {
			res = append(res, r)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

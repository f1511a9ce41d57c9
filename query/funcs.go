package query

import (
	"os"

	"github.com/signadot/jsom"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.Function("getpath", func(params ...any) (any, error) {
			path := params[1].(string)
			res, err := jsom.FromNative(params[0]).GetPath(path)
			if err != nil {
				return nil, err
			}
			return jsom.ToNative(res), nil
		},
			new(func(any, string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			path := params[1].(string)
			lst, err := jsom.FromNative(params[0]).ListPath(path)
			if err != nil {
				return nil, err
			}
			res := make([]any, len(lst))
			for i, item := range lst {
				res[i] = jsom.ToNative(item)
			}
			return res, nil
		},
			new(func(any, string) []any)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

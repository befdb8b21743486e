package params

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"
)

// evalFormula evaluates a Lisp modifier formula with the given design
// variables in scope. A fresh sandboxed environment is created per call
// so evaluation is deterministic and user formulas cannot touch the
// filesystem or leak state between calls.
func evalFormula(formula string, vars Variables) (float64, error) {
	if strings.TrimSpace(formula) == "" {
		return 0, fmt.Errorf("empty formula")
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	var src strings.Builder
	// Bind variables in sorted order for reproducible programs.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		src.WriteString("(def ")
		src.WriteString(name)
		src.WriteString(" ")
		src.WriteString(formatFloat(vars[name]))
		src.WriteString(")\n")
	}
	src.WriteString(formula)

	if err := env.LoadString(src.String()); err != nil {
		return 0, fmt.Errorf("parse %q: %w", formula, err)
	}
	result, err := env.Run()
	if err != nil {
		return 0, fmt.Errorf("eval %q: %w", formula, err)
	}
	return toFloat64(result)
}

// formatFloat renders a float so zygomys always parses it as a float,
// never as an integer (mixed int/float arithmetic is an eval error).
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', 17, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("formula result is %T, want a number", s)
}

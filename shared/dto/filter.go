package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

type Operator string

const (
	OperatorEq    Operator = "="
	OperatorNotEq Operator = "!="
	OperatorIn    Operator = "IN"
)

// Condition compares one column against a bound value.
type Condition struct {
	Table    string
	Column   string
	Operator Operator
	Value    any
}

func Eq(table, column string, value any) Condition {
	return Condition{Table: table, Column: column, Operator: OperatorEq, Value: value}
}

func In(table, column string, values any) Condition {
	return Condition{Table: table, Column: column, Operator: OperatorIn, Value: values}
}

func (c Condition) qualified() string {
	if c.Table == "" {
		return c.Column
	}

	return c.Table + "." + c.Column
}

func (c Condition) argName() string {
	if c.Table == "" {
		return c.Column
	}

	return c.Table + "_" + c.Column
}

// Clause renders the condition with named parameters. Unknown operators and
// IN with a non-slice value render nothing.
func (c Condition) Clause() (string, map[string]any) {
	args := map[string]any{}
	name := c.argName()

	switch c.Operator {
	case OperatorEq, OperatorNotEq:
		args[name] = c.Value

		return fmt.Sprintf("%s %s :%s", c.qualified(), c.Operator, name), args
	case OperatorIn:
		values := reflect.ValueOf(c.Value)
		if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
			return "", args
		}

		// an empty IN list matches nothing
		if values.Len() == 0 {
			return "1 = 0", args
		}

		placeholders := make([]string, values.Len())
		for i := range values.Len() {
			key := fmt.Sprintf("%s_%d", name, i)
			args[key] = values.Index(i).Interface()
			placeholders[i] = ":" + key
		}

		return fmt.Sprintf("%s IN (%s)", c.qualified(), strings.Join(placeholders, ", ")), args
	default:
		return "", args
	}
}

// Where is a conjunction of conditions.
type Where []Condition

func (w Where) Clause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(w))

	for _, condition := range w {
		part, arg := condition.Clause()
		if part == "" {
			continue
		}

		parts = append(parts, part)
		maps.Copy(args, arg)
	}

	return strings.Join(parts, " AND "), args
}

package schedule

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"

	"capstone-hub/internal/model"
)

// FilterTasks evaluates a boolean expression against each task and keeps
// the matches. Expressions see the task's scalar fields plus an `overdue`
// flag computed against now, e.g.
//
//	status == "pending" && priority == "high"
//	overdue || assignedTo == "t2"
func FilterTasks(tasks []model.Task, expression string, now time.Time) ([]model.Task, error) {
	program, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile task filter: %w", err)
	}

	var out []model.Task
	for _, t := range tasks {
		env := map[string]any{
			"id":         t.ID,
			"title":      t.Title,
			"status":     t.Status,
			"priority":   t.Priority,
			"assignedTo": t.AssignedTo,
			"createdBy":  t.CreatedBy,
			"deadline":   t.Deadline,
			"overdue":    Overdue(t, now),
		}
		v, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("run task filter: %w", err)
		}
		if ok, _ := v.(bool); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

package l2_service

import (
	"fmt"
	"math"

	"agroplan/internal/db/models/postgres/public/model"
	"agroplan/internal/domain"

	"github.com/google/uuid"
	"github.com/maja42/goval"
)

// ScreenerService filters executed scenarios with a caller-supplied
// boolean expression over their metrics, e.g.
// "margin > 0 && costPerKg < 8.5" or "abs(forageBalanceKg) < 1000".
type ScreenerService interface {
	Screen(scenarios []model.Scenario, expression string) ([]uuid.UUID, error)
}

type screenerServiceHandler struct{}

func NewScreenerService() ScreenerService {
	return screenerServiceHandler{}
}

func screenerFunctions() map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		"abs": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return 0, fmt.Errorf("abs needs 1 arg, got %d", len(args))
			}
			v, ok := toFloat(args[0])
			if !ok {
				return 0, fmt.Errorf("abs needs a numeric arg, got %T", args[0])
			}
			return math.Abs(v), nil
		},
		"min": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("min needs at least 2 args, got %d", len(args))
			}
			out := math.Inf(1)
			for _, a := range args {
				v, ok := toFloat(a)
				if !ok {
					return 0, fmt.Errorf("min needs numeric args, got %T", a)
				}
				out = math.Min(out, v)
			}
			return out, nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			if len(args) < 2 {
				return 0, fmt.Errorf("max needs at least 2 args, got %d", len(args))
			}
			out := math.Inf(-1)
			for _, a := range args {
				v, ok := toFloat(a)
				if !ok {
					return 0, fmt.Errorf("max needs numeric args, got %T", a)
				}
				out = math.Max(out, v)
			}
			return out, nil
		},
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// Screen evaluates the expression against each scenario that has
// results; DRAFT scenarios are skipped. A non-boolean expression result
// is a validation error, not a silent false.
func (h screenerServiceHandler) Screen(scenarios []model.Scenario, expression string) ([]uuid.UUID, error) {
	if expression == "" {
		return nil, fmt.Errorf("screen expression cannot be empty")
	}

	eval := goval.NewEvaluator()
	functions := screenerFunctions()

	matches := []uuid.UUID{}
	for _, scenario := range scenarios {
		if scenario.Results == nil {
			continue
		}
		results, err := domain.ParseSimulationResults([]byte(*scenario.Results))
		if err != nil {
			return nil, fmt.Errorf("failed to read results for scenario %s: %w", scenario.ScenarioID, err)
		}

		variables := map[string]interface{}{}
		for name, value := range results.MetricValues() {
			variables[name] = value
		}

		result, err := eval.Evaluate(expression, variables, functions)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate expression: %w", err)
		}
		matched, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("expression must evaluate to a boolean, got %T", result)
		}
		if matched {
			matches = append(matches, scenario.ScenarioID)
		}
	}

	return matches, nil
}

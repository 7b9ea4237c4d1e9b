package engine

import (
	"fmt"

	"github.com/DjordjeVuckovic/sci-calc/internal/calc"
)

const (
	TypeLocal = "local"
	TypeAPI   = "api"
)

// Definition names one executor in a bench run.
type Definition struct {
	Name string
	Type string
	// Connection is the base URL for api executors.
	Connection             string
	ImplicitMultiplication bool
}

func CreateAll(defs []Definition) (map[string]Executor, func(), error) {
	executors := make(map[string]Executor, len(defs))

	cleanup := func() {
		for _, e := range executors {
			_ = e.Close()
		}
	}

	for _, def := range defs {
		if _, dup := executors[def.Name]; dup {
			cleanup()
			return nil, nil, fmt.Errorf("duplicate executor name %q", def.Name)
		}

		switch def.Type {
		case TypeLocal:
			engine := calc.New(calc.WithImplicitMultiplication(def.ImplicitMultiplication))
			executors[def.Name] = NewLocalExecutor(def.Name, engine)

		case TypeAPI:
			if def.Connection == "" {
				cleanup()
				return nil, nil, fmt.Errorf("api executor %q needs a base URL", def.Name)
			}
			executors[def.Name] = NewAPIExecutor(def.Name, def.Connection)

		default:
			cleanup()
			return nil, nil, fmt.Errorf("unsupported engine type %q for %q", def.Type, def.Name)
		}
	}

	return executors, cleanup, nil
}

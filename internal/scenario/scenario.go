package scenario

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ib-77/trycatch/internal/logging"
	"github.com/ib-77/trycatch/pkg/catch"
)

const (
	RaiseNone    = "none"
	RaiseExample = "example"
	RaiseSub     = "sub"
	RaisePanic   = "panic"

	StrategyList     = "list"
	StrategyVariadic = "variadic"
	StrategyInspect  = "inspect"
)

var ErrInvalidScenario = errors.New("invalid scenario")

type ExampleError struct {
	Scenario string
}

func (e *ExampleError) Error() string {
	return "example error in " + e.Scenario
}

type SubError struct {
	ExampleError
}

func (e *SubError) Error() string {
	return "sub error in " + e.Scenario
}

type Scenario struct {
	Name     string   `yaml:"name"`
	Raise    string   `yaml:"raise"`
	Handlers []string `yaml:"handlers,omitempty"`
	Strategy string   `yaml:"strategy,omitempty"`
}

type Report struct {
	Name      string `yaml:"name"`
	Outcome   string `yaml:"outcome"`
	Failed    bool   `yaml:"failed"`
	Handled   string `yaml:"handled,omitempty"`
	Unhandled bool   `yaml:"unhandled,omitempty"`
	Inspected int    `yaml:"inspected,omitempty"`
	Error     string `yaml:"error,omitempty"`
}

type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

var (
	raises     = []string{RaiseNone, RaiseExample, RaiseSub, RaisePanic}
	handlers   = []string{RaiseExample, RaiseSub, RaisePanic}
	strategies = []string{StrategyList, StrategyVariadic, StrategyInspect}
)

// Validate fills defaults and rejects unknown values.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	if s.Raise == "" {
		s.Raise = RaiseNone
	}
	if s.Strategy == "" {
		s.Strategy = StrategyList
	}
	if !slices.Contains(raises, s.Raise) {
		return fmt.Errorf("%w: %s: unknown raise %q", ErrInvalidScenario, s.Name, s.Raise)
	}
	if !slices.Contains(strategies, s.Strategy) {
		return fmt.Errorf("%w: %s: unknown strategy %q", ErrInvalidScenario, s.Name, s.Strategy)
	}
	for _, h := range s.Handlers {
		if !slices.Contains(handlers, h) {
			return fmt.Errorf("%w: %s: unknown handler %q", ErrInvalidScenario, s.Name, h)
		}
	}
	return nil
}

// Load decodes a YAML document with a top-level "scenarios" list.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}

	for i := range f.Scenarios {
		if err := f.Scenarios[i].Validate(); err != nil {
			return nil, err
		}
	}
	return f.Scenarios, nil
}

// WriteReports encodes reports as a YAML list.
func WriteReports(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}
	return enc.Close()
}

// Builtin returns the reference exercises for exact-type dispatch.
func Builtin() []Scenario {
	return []Scenario{
		{Name: "exact-match", Raise: RaiseExample, Handlers: []string{RaiseExample}, Strategy: StrategyList},
		{Name: "no-polymorphic-match", Raise: RaiseSub, Handlers: []string{RaiseExample}, Strategy: StrategyList},
		{Name: "first-exact-match", Raise: RaiseSub, Handlers: []string{RaiseExample, RaiseSub}, Strategy: StrategyVariadic},
		{Name: "success-noop", Raise: RaiseNone, Handlers: []string{RaiseExample}, Strategy: StrategyList},
		{Name: "pass-through", Raise: RaiseExample, Strategy: StrategyInspect},
	}
}

// Run executes s and dispatches its outcome with the chosen strategy.
func Run(s Scenario) (Report, error) {
	if err := s.Validate(); err != nil {
		return Report{}, err
	}
	logger := logging.GetLogger("scenario").With().Str("scenario", s.Name).Logger()

	out := catch.Execute(operation(s))
	rep := Report{
		Name:    s.Name,
		Outcome: out.Id().String(),
		Failed:  out.HasError(),
	}
	if out.HasError() {
		rep.Error = out.Err().Error()
	}

	if s.Strategy == StrategyInspect {
		out.Inspect(func(err error, ok bool) {
			rep.Inspected++
		})
		logger.Debug().Int("inspected", rep.Inspected).Msg("Scenario inspected")
		return rep, nil
	}

	hs := make([]catch.Handler, 0, len(s.Handlers))
	for i, name := range s.Handlers {
		hs = append(hs, handlerFor(name, i, &rep))
	}

	var err error
	if s.Strategy == StrategyVariadic {
		err = out.Catch(hs...)
	} else {
		err = out.CatchWith(hs)
	}

	switch {
	case err == nil:
	case errors.Is(err, catch.ErrUnhandled):
		rep.Unhandled = true
		logger.Info().Err(err).Msg("Scenario left its error unhandled")
	default:
		return rep, err
	}

	logger.Debug().Str("handled", rep.Handled).Msg("Scenario dispatched")
	return rep, nil
}

func operation(s Scenario) func() error {
	return func() error {
		switch s.Raise {
		case RaiseExample:
			return &ExampleError{Scenario: s.Name}
		case RaiseSub:
			return &SubError{ExampleError{Scenario: s.Name}}
		case RaisePanic:
			panic("scenario " + s.Name)
		}
		return nil
	}
}

func handlerFor(name string, index int, rep *Report) catch.Handler {
	label := name + "#" + strconv.Itoa(index)
	switch name {
	case RaiseExample:
		return catch.On(func(*ExampleError) { rep.Handled = label })
	case RaiseSub:
		return catch.On(func(*SubError) { rep.Handled = label })
	default:
		return catch.On(func(*catch.PanicError) { rep.Handled = label })
	}
}

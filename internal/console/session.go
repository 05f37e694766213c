package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/calculator/internal/calculator"
	"github.com/GriffinCanCode/calculator/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/calculator/internal/logging"
	"github.com/GriffinCanCode/calculator/internal/shared/id"
)

// Options configures a Session.
type Options struct {
	Representation calculator.Representation
	Format         string
	Logger         *logging.Logger
	Metrics        *monitoring.Metrics
	IDs            *id.Generator
}

// Session reads operands and an operator from in and writes prompts and
// results to out. Prompts are only written in text format.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
	render  Renderer
	symbols []string

	calc      *calculator.Calculator
	universal calculator.Universal
}

// NewSession creates a console session. Double-precision evaluations use
// the four-function Calculator; other representations use the Universal
// dispatcher.
func NewSession(in io.Reader, out io.Writer, opts Options) (*Session, error) {
	if in == nil || out == nil {
		return nil, fmt.Errorf("%w: input and output are required", calculator.ErrInvalidArgument)
	}
	if opts.Format == "" {
		opts.Format = "text"
	}
	render, err := RendererFor(opts.Format)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.IDs == nil {
		opts.IDs = id.Default()
	}

	calc, err := calculator.NewCalculator(calculator.DefaultOperations())
	if err != nil {
		return nil, err
	}

	return &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
		render:  render,
		symbols: Operators(opts.Representation),
		calc:    calc,
	}, nil
}

// Operators returns the symbols a session accepts for rep, in display order.
// Double sessions use the four-function Calculator, so they accept fewer
// symbols than the Universal table lists for double.
func Operators(rep calculator.Representation) []string {
	if rep != calculator.Float64 {
		return rep.Operations()
	}
	ops := calculator.DefaultOperations()
	symbols := make([]string, len(ops))
	for i, op := range ops {
		symbols[i] = op.Symbol()
	}
	return symbols
}

// Symbols returns the operators this session accepts.
func (s *Session) Symbols() []string {
	return append([]string(nil), s.symbols...)
}

// Banner returns the session header line.
func (s *Session) Banner() string {
	return fmt.Sprintf("Simple Console Calculator [%s] (%s)", s.opts.Representation, strings.Join(s.symbols, ", "))
}

// Run performs a single prompted evaluation. Calculation failures are
// rendered, not returned; only I/O failures produce an error.
func (s *Session) Run() error {
	if err := s.prompt(s.Banner() + "\n"); err != nil {
		return err
	}
	_, err := s.evaluateNext()
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// RunAll evaluates until the input is exhausted. Input ending cleanly
// between evaluations is not an error.
func (s *Session) RunAll() error {
	if err := s.prompt(s.Banner() + "\n"); err != nil {
		return err
	}
	for {
		started, err := s.evaluateNext()
		if errors.Is(err, io.EOF) {
			if started {
				return io.ErrUnexpectedEOF
			}
			return s.prompt("\n")
		}
		if err != nil {
			return err
		}
	}
}

// evaluateNext prompts for one evaluation. started reports whether any of
// its input was read.
func (s *Session) evaluateNext() (started bool, err error) {
	a, err := s.ask("Enter first number: ")
	if err != nil {
		return false, err
	}
	op, err := s.ask("Enter operator: ")
	if err != nil {
		return true, err
	}
	b, err := s.ask("Enter second number: ")
	if err != nil {
		return true, err
	}

	return true, s.render(s.out, s.Evaluate(a, op, b))
}

// Evaluate computes a <op> b in the session's representation.
func (s *Session) Evaluate(a, op, b string) Outcome {
	evalID := s.opts.IDs.NewEvaluationID()
	rep := s.opts.Representation

	start := time.Now()
	result, err := s.compute(a, op, b)
	elapsed := time.Since(start)

	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordEvaluation(rep, op, err, elapsed)
	}

	outcome := Outcome{
		ID:             evalID.String(),
		Representation: rep.String(),
		Operator:       op,
		Status:         monitoring.Classify(err),
	}

	log := s.opts.Logger.ForEvaluation(evalID.String(), rep.String())
	if err != nil {
		outcome.Error = err.Error()
		log.Info("evaluation failed",
			zap.String("operator", op),
			zap.String("outcome", outcome.Status),
			zap.Error(err),
			zap.Duration("duration", elapsed),
		)
		return outcome
	}

	outcome.Result = result
	log.Debug("evaluation completed",
		zap.String("operator", op),
		zap.Duration("duration", elapsed),
	)
	return outcome
}

func (s *Session) compute(a, op, b string) (string, error) {
	if s.opts.Representation != calculator.Float64 {
		return s.universal.Evaluate(s.opts.Representation, op, a, b)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return "", &calculator.ParseError{Err: err}
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return "", &calculator.ParseError{Err: err}
	}

	result, err := s.calc.Execute(strings.TrimSpace(op), x, y)
	if err != nil {
		return "", err
	}
	return calculator.FormatFloat(result, 64), nil
}

func (s *Session) ask(prompt string) (string, error) {
	if err := s.prompt(prompt); err != nil {
		return "", err
	}
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Session) prompt(text string) error {
	if !strings.EqualFold(s.opts.Format, "text") {
		return nil
	}
	_, err := io.WriteString(s.out, text)
	return err
}

// Package aoc are quick & dirty utilities for running Maisem's
// Advent of Code 2021 solutions. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solve.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers. It gives access to the input of the part
// currently running, which is the sample input in SampleMode.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	inputDir string
	log      *zap.Logger
	solver   partSolver
	samples  map[string]sample
}

// InputPath returns the file the real input for the puzzle is read from.
func (p *Puzzle) InputPath() string {
	return filepath.Join(p.inputDir, fmt.Sprintf("%d/%d.input", p.year, p.day.day))
}

// Input returns the puzzle input. It panics if the input file cannot be read.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return MustGet(os.ReadFile(p.InputPath()))
}

func (p *Puzzle) Reader() io.Reader {
	return bytes.NewReader(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(p.Reader())
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// Debugf logs at debug level, tagged with the running part.
func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Sugar().With("part", p.solver.Name, "sample", p.SampleMode).Debugf(format, args...)
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	Part string
	Name string
}

var solverFuncType = reflect.TypeOf((func() any)(nil))

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) (map[int]day, error) {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v := rv.Elem()
	if _, ok := v.Type().FieldByName("Puzzle"); !ok {
		return nil, fmt.Errorf("solver: %T does not embed *aoc.Puzzle", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if mt := v.Method(i).Type(); mt != solverFuncType {
			return nil, fmt.Errorf("solver: %s has type %v; want %v", mn, mt, solverFuncType)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Runner runs the solvers selected by its Config.
type Runner struct {
	cfg Config
	out io.Writer
	log *zap.Logger
}

// NewRunner returns a Runner that prints results to out.
func NewRunner(cfg Config, out io.Writer, log *zap.Logger) *Runner {
	if cfg.Part == 0 {
		cfg.Part = Part1
	}
	return &Runner{cfg: cfg, out: out, log: log}
}

// Run runs every selected day and part of slvr. src is the source file holding
// the solver methods; their doc comments carry the samples.
func (r *Runner) Run(year int, src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if r.cfg.Day != -1 {
		day, ok := days[r.cfg.Day]
		if !ok {
			return fmt.Errorf("no day %d", r.cfg.Day)
		}
		return r.runDay(slvr, year, day, samples)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		if err := r.runDay(slvr, year, days[d], samples); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runDay(slvr any, year int, day day, samples map[string]sample) error {
	p := &Puzzle{
		year:     year,
		day:      day,
		samples:  samples,
		inputDir: r.cfg.InputDir,
		log:      r.log,
	}
	r.log.Debug("running day", zap.Int("day", day.day))
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range day.parts {
		if !r.cfg.All && ps.Part != r.cfg.Part.Suffix() {
			continue
		}
		p.solver = ps

		_, hasSample := samples[ps.Name]
		if r.cfg.OnlySample && !hasSample {
			return fmt.Errorf("no sample found for %v", ps.Name)
		}
		if r.cfg.OnlySample || (hasSample && !r.cfg.SkipSample) {
			p.SampleMode = true
			got, took, err := r.solve(slvr, ps)
			if err != nil {
				return err
			}
			if r.cfg.OnlySample {
				fmt.Fprintf(r.out, "part %s: %v\n", ps.Part, got)
				continue
			}
			if want := samples[ps.Name].want; fmt.Sprint(got) != want {
				return fmt.Errorf("day %d part %s sample: got %v; want %v", day.day, ps.Part, got, want)
			}
			r.log.Info("sample ok",
				zap.Int("day", day.day),
				zap.String("part", ps.Part),
				zap.Any("got", got),
				zap.Duration("took", took.Round(time.Microsecond)))
		}

		p.SampleMode = false
		got, took, err := r.solve(slvr, ps)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "part %s: %v\n", ps.Part, got)
		r.log.Info("solved",
			zap.Int("day", day.day),
			zap.String("part", ps.Part),
			zap.Duration("took", took.Round(time.Microsecond)))
	}
	return nil
}

// solve calls the solver method for ps, turning a panic into an error.
func (r *Runner) solve(slvr any, ps partSolver) (got any, took time.Duration, err error) {
	defer func() {
		if e := recover(); e != nil {
			if ee, ok := e.(error); ok {
				err = fmt.Errorf("%s: %w", ps.Name, ee)
			} else {
				err = fmt.Errorf("%s: %v", ps.Name, e)
			}
		}
	}()
	fn := reflect.ValueOf(slvr).MethodByName(ps.Name).Interface().(func() any)
	t0 := time.Now()
	got = fn()
	return got, time.Since(t0), nil
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

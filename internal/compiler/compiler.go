// Package compiler turns a parsed stylesheet into the class tokens of each
// preset. Presets are compiled level by level along their extends graph, with
// the presets of one level spread over a bounded worker pool.
package compiler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/slate/internal/logger"
	"github.com/alexisbeaulieu97/slate/internal/markup"
	"github.com/alexisbeaulieu97/slate/internal/sheet"
	"github.com/alexisbeaulieu97/slate/internal/style"
	slateerrors "github.com/alexisbeaulieu97/slate/pkg/errors"
)

// DefaultParallel is the worker count used when neither Options nor the sheet
// set one.
const DefaultParallel = 4

// DefaultElement is the tag used for presets that do not name one.
const DefaultElement = "div"

// Options configures a Compiler.
type Options struct {
	// Parallel overrides the sheet's settings.parallel when positive.
	Parallel int
	Logger   *logger.Logger
}

// Result is the compiled form of one preset.
type Result struct {
	Preset  string   `json:"preset" yaml:"preset"`
	Element string   `json:"element,omitempty" yaml:"element,omitempty"`
	Tokens  []string `json:"tokens" yaml:"tokens"`
}

// Class joins the tokens into a class attribute value.
func (r Result) Class() string {
	return strings.Join(r.Tokens, " ")
}

// Node builds the preset's element around children and styles it with the
// compiled tokens.
func (r Result) Node(children ...markup.Node) *markup.Styled {
	tag := r.Element
	if tag == "" {
		tag = DefaultElement
	}
	return markup.WithClasses(markup.El(tag, children...), r.Tokens...)
}

// Compiler compiles stylesheets. It holds no per-sheet state and may be used
// from several goroutines.
type Compiler struct {
	parallel int
	log      *logger.Logger
}

// New returns a Compiler configured by opts.
func New(opts Options) *Compiler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Compiler{parallel: opts.Parallel, log: log}
}

// Compile compiles every preset of doc and returns the results in document
// order. A preset's inherited tokens come before its own, parents in the
// order they are listed.
func (c *Compiler) Compile(ctx context.Context, doc *sheet.Document) ([]Result, error) {
	if doc == nil {
		return nil, slateerrors.NewCompileError("", fmt.Errorf("stylesheet is nil"))
	}

	compiled, err := c.run(ctx, doc.Presets, c.workers(doc))
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(doc.Presets))
	for _, preset := range doc.Presets {
		results = append(results, compiled[preset.ID])
	}
	return results, nil
}

// CompilePreset compiles the preset id together with the presets it
// inherits from, and nothing else.
func (c *Compiler) CompilePreset(ctx context.Context, doc *sheet.Document, id string) (Result, error) {
	if doc == nil {
		return Result{}, slateerrors.NewCompileError(id, fmt.Errorf("stylesheet is nil"))
	}
	if _, ok := doc.Lookup(id); !ok {
		return Result{}, slateerrors.NewCompileError(id, fmt.Errorf("preset not found"))
	}

	compiled, err := c.run(ctx, lineage(doc, id), c.workers(doc))
	if err != nil {
		return Result{}, err
	}
	return compiled[id], nil
}

// Plan returns the level plan Compile would follow for doc.
func (c *Compiler) Plan(doc *sheet.Document) (*Plan, error) {
	if doc == nil {
		return nil, slateerrors.NewCompileError("", fmt.Errorf("stylesheet is nil"))
	}
	g, err := BuildGraph(doc.Presets)
	if err != nil {
		return nil, err
	}
	return NewPlan(g)
}

func (c *Compiler) workers(doc *sheet.Document) int {
	switch {
	case c.parallel > 0:
		return c.parallel
	case doc.Settings.Parallel > 0:
		return doc.Settings.Parallel
	default:
		return DefaultParallel
	}
}

func (c *Compiler) run(ctx context.Context, presets []sheet.Preset, workers int) (map[string]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	g, err := BuildGraph(presets)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pool := make(chan struct{}, workers)
	done := make(map[string]Result, g.Len())

	for depth, level := range g.Levels {
		out := make([]Result, len(level))
		errs := make([]error, len(level))
		var wg sync.WaitGroup

		for idx, id := range level {
			wg.Add(1)
			go func(idx int, n *node) {
				defer wg.Done()

				select {
				case pool <- struct{}{}:
					defer func() { <-pool }()
				case <-ctx.Done():
					errs[idx] = slateerrors.NewCompileError(n.id, ctx.Err())
					return
				}
				if err := ctx.Err(); err != nil {
					errs[idx] = slateerrors.NewCompileError(n.id, err)
					return
				}

				out[idx] = compileNode(n, done)
			}(idx, g.nodes[id])
		}

		// done is only written between levels, so workers read it freely.
		wg.Wait()

		for _, err := range errs {
			if err != nil {
				c.log.Error(err, "compilation aborted", "level", depth)
				return nil, err
			}
		}
		for _, res := range out {
			done[res.Preset] = res
			c.log.Debug("compiled preset", "preset", res.Preset, "tokens", len(res.Tokens), "level", depth)
		}
	}

	c.log.Info("compiled presets", "presets", g.Len(), "levels", len(g.Levels), "workers", workers, "duration", time.Since(start).String())
	return done, nil
}

// compileNode runs every rule of one preset through a single builder. Plain
// rules take the Apply path and land as finished tokens; block rules go
// through the builder's scope.
func compileNode(n *node, done map[string]Result) Result {
	b := style.NewBuilder()
	element := n.preset.Element

	for _, parent := range n.parents {
		inherited := done[parent.id]
		for _, token := range inherited.Tokens {
			b.AddToken(token)
		}
		if element == "" {
			element = inherited.Element
		}
	}

	for _, rule := range n.preset.Rules {
		addRule(b, rule)
	}

	tokens := b.Flush()
	if tokens == nil {
		tokens = []string{}
	}
	return Result{Preset: n.id, Element: element, Tokens: tokens}
}

func addRule(b *style.Builder, rule sheet.Rule) {
	mods := rule.Mods()
	if !rule.Block {
		for _, token := range style.Prefixed(style.Tokens(rule.Descriptor), mods...) {
			b.AddToken(token)
		}
		return
	}

	if len(mods) == 0 {
		b.Add(rule.Descriptor)
		return
	}
	b.Within(mods[0], func(b *style.Builder) {
		b.Add(rule.Descriptor)
	})
}

// lineage returns id and every preset it transitively extends, in document
// order.
func lineage(doc *sheet.Document, id string) []sheet.Preset {
	keep := make(map[string]bool)
	var visit func(string)
	visit = func(current string) {
		if keep[current] {
			return
		}
		keep[current] = true
		if preset, ok := doc.Lookup(current); ok {
			for _, parent := range preset.Extends {
				visit(parent)
			}
		}
	}
	visit(id)

	presets := make([]sheet.Preset, 0, len(keep))
	for _, preset := range doc.Presets {
		if keep[preset.ID] {
			presets = append(presets, preset)
		}
	}
	return presets
}

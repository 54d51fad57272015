package sheet

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/slate/internal/style"
	slateerrors "github.com/alexisbeaulieu97/slate/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	presetIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("preset_id", func(fl validator.FieldLevel) bool {
			return presetIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("aspect", func(fl validator.FieldLevel) bool {
			_, ok := style.ParseAspect(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("modifier", func(fl validator.FieldLevel) bool {
			_, ok := style.ParseModifier(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-preset validation on a stylesheet.
func Validate(doc *Document) error {
	if doc == nil {
		return slateerrors.NewValidationError("sheet", "stylesheet is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	index := make(map[string]int, len(doc.Presets))
	for i, preset := range doc.Presets {
		if _, exists := index[preset.ID]; exists {
			return slateerrors.NewValidationError(fieldForPreset(i, "id"), fmt.Sprintf("duplicate preset id %q", preset.ID), nil)
		}
		index[preset.ID] = i

		if len(preset.Rules) == 0 && len(preset.Extends) == 0 {
			return slateerrors.NewValidationError(fieldForPreset(i, "styles"), "preset has no styles and extends nothing", nil)
		}

		for j, rule := range preset.Rules {
			if rule.Block && len(rule.Modifiers) > 1 {
				return slateerrors.NewValidationError(
					fmt.Sprintf("presets[%d].styles[%d].modifiers", i, j),
					"block rules take at most one modifier",
					nil,
				)
			}
		}
	}

	for i, preset := range doc.Presets {
		for _, parent := range preset.Extends {
			if _, ok := index[parent]; !ok {
				return slateerrors.NewValidationError(fieldForPreset(i, "extends"), fmt.Sprintf("references unknown preset %q", parent), nil)
			}
		}
	}

	if cycle := detectCycle(doc.Presets); len(cycle) > 0 {
		return slateerrors.NewValidationError("presets", fmt.Sprintf("extends cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return slateerrors.NewValidationError(field, msg, err)
	}

	return slateerrors.NewValidationError("sheet", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPreset(index int, field string) string {
	return fmt.Sprintf("presets[%d].%s", index, field)
}

// detectCycle returns the first extends cycle found, closed on its starting
// preset, or nil.
func detectCycle(presets []Preset) []string {
	graph := make(map[string][]string, len(presets))
	for _, preset := range presets {
		graph[preset.ID] = preset.Extends
	}

	visiting := make(map[string]bool, len(presets))
	visited := make(map[string]bool, len(presets))
	var stack []string

	var cycle []string
	var dfs func(string) bool
	dfs = func(node string) bool {
		visiting[node] = true
		stack = append(stack, node)

		for _, parent := range graph[node] {
			if visited[parent] {
				continue
			}
			if visiting[parent] {
				idx := indexOf(stack, parent)
				if idx >= 0 {
					cycle = append([]string{}, stack[idx:]...)
					cycle = append(cycle, parent)
				}
				return true
			}
			if dfs(parent) {
				return true
			}
		}

		visiting[node] = false
		visited[node] = true
		stack = stack[:len(stack)-1]
		return false
	}

	// Sorted so the reported cycle is deterministic.
	ids := make([]string, 0, len(graph))
	for id := range graph {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if visited[id] {
			continue
		}
		if dfs(id) {
			break
		}
	}

	return cycle
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}

package prompt

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/logger"
)

//go:embed templates/*.prompt.txt
var templateFS embed.FS

const (
	JobAnalysis      = "job-analysis"
	SkillsExtraction = "skills-extraction"
)

var placeholderRe = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

type Engine struct {
	log   *logger.Logger
	mu    sync.Mutex
	cache map[string]string
}

func NewEngine(log *logger.Logger) *Engine {
	return &Engine{
		log:   log,
		cache: make(map[string]string),
	}
}

// Load returns the raw template for name, reading it at most once per
// process lifetime.
func (e *Engine) Load(name string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.cache[name]; ok {
		return tpl, nil
	}

	data, err := templateFS.ReadFile("templates/" + name + ".prompt.txt")
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperror.ErrTemplateNotFound, name)
	}

	tpl := string(data)
	e.cache[name] = tpl
	return tpl, nil
}

// Fill substitutes every {{key}} occurrence with its value in a single
// pass over the template, so substituted values are never re-scanned
// and key order cannot matter. Placeholders without a value are left in
// place and reported as a warning.
func (e *Engine) Fill(template string, vars map[string]string) string {
	var unresolved []string
	filled := placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(match, "{{"), "}}")
		if value, ok := vars[key]; ok {
			return value
		}
		unresolved = append(unresolved, match)
		return match
	})

	if len(unresolved) > 0 {
		e.log.Warn("unfilled placeholders in prompt", "placeholders", strings.Join(unresolved, ", "))
	}

	return filled
}

// Get loads and fills a template in one call.
func (e *Engine) Get(name string, vars map[string]string) (string, error) {
	tpl, err := e.Load(name)
	if err != nil {
		return "", err
	}
	return e.Fill(tpl, vars), nil
}

// Package health implementa os health checks expostos em /health, /health/ready e /health/live.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mottufind/internal/pkg/logger"
)

// Status é o resultado de um check. A ordem numérica vai do melhor ao pior.
type Status int

const (
	Healthy Status = iota
	Degraded
	Unhealthy
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "Healthy"
	case Degraded:
		return "Degraded"
	default:
		return "Unhealthy"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Result é o que um check devolve.
type Result struct {
	Status      Status
	Description string
	Data        map[string]interface{}
}

// Check é um health check nomeado.
type Check interface {
	Name() string
	Tags() []string
	Run(ctx context.Context) Result
}

// Entry é a saída JSON de um check.
type Entry struct {
	Status      Status                 `json:"status"`
	Description string                 `json:"description,omitempty"`
	Duration    string                 `json:"duration"`
	Data        map[string]interface{} `json:"data"`
	Tags        []string               `json:"tags"`
}

// Report é o corpo JSON das rotas de health.
type Report struct {
	Status        Status           `json:"status"`
	TotalDuration string           `json:"totalDuration"`
	Entries       map[string]Entry `json:"entries"`
}

// Predicate seleciona quais checks participam de uma rota.
type Predicate func(Check) bool

// ByTag seleciona checks que tenham ao menos uma das tags.
func ByTag(tags ...string) Predicate {
	return func(c Check) bool {
		for _, have := range c.Tags() {
			for _, want := range tags {
				if have == want {
					return true
				}
			}
		}
		return false
	}
}

// Registry guarda os checks registrados na inicialização.
type Registry struct {
	checks  []Check
	timeout time.Duration
	logger  logger.Logger
}

// NewRegistry cria um registro. Cada check roda com o timeout informado.
func NewRegistry(timeout time.Duration, log logger.Logger, checks ...Check) *Registry {
	return &Registry{checks: checks, timeout: timeout, logger: log}
}

// Register adiciona um check.
func (r *Registry) Register(c Check) {
	r.checks = append(r.checks, c)
}

// Run executa os checks selecionados e agrega o pior status.
func (r *Registry) Run(ctx context.Context, pred Predicate) Report {
	start := time.Now()
	report := Report{Status: Healthy, Entries: make(map[string]Entry)}

	for _, c := range r.checks {
		if pred != nil && !pred(c) {
			continue
		}
		checkStart := time.Now()
		res := r.runOne(ctx, c)
		if res.Data == nil {
			res.Data = map[string]interface{}{}
		}
		tags := c.Tags()
		if tags == nil {
			tags = []string{}
		}
		report.Entries[c.Name()] = Entry{
			Status:      res.Status,
			Description: res.Description,
			Duration:    time.Since(checkStart).String(),
			Data:        res.Data,
			Tags:        tags,
		}
		if res.Status > report.Status {
			report.Status = res.Status
		}
	}

	report.TotalDuration = time.Since(start).String()
	return report
}

func (r *Registry) runOne(ctx context.Context, c Check) (res Result) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			res = Result{
				Status:      Unhealthy,
				Description: "falha ao executar o check",
				Data:        map[string]interface{}{"error": fmt.Sprint(p)},
			}
		}
	}()
	return c.Run(ctx)
}

// Handler responde com o relatório dos checks selecionados.
// Unhealthy responde 503; Healthy e Degraded respondem 200.
func (r *Registry) Handler(pred Predicate) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		report := r.Run(req.Context(), pred)

		status := http.StatusOK
		if report.Status == Unhealthy {
			status = http.StatusServiceUnavailable
			r.logger.Warn("Health check falhou.", map[string]interface{}{"path": req.URL.Path})
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(report); err != nil {
			r.logger.Error("Falha ao codificar relatório de health.", err)
		}
	}
}

package health

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

// Nomes e tags dos checks registrados pela aplicação.
const (
	NameApplication = "application"
	NameDatabase    = "database"
	NameCache       = "cache"

	TagApplication = "application"
	TagDatabase    = "database"
	TagExternal    = "external"
)

const bytesPerMB = 1024 * 1024

// MemorySample é uma leitura de memória do processo, em bytes.
type MemorySample struct {
	Alloc   uint64
	HeapSys uint64
}

// RuntimeSampler lê a memória do runtime do Go.
func RuntimeSampler() MemorySample {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySample{Alloc: m.Alloc, HeapSys: m.HeapSys}
}

// ApplicationCheck fica Degraded quando a memória alocada passa do limite.
type ApplicationCheck struct {
	ThresholdMB uint64
	Sample      func() MemorySample
	Now         func() time.Time
}

// NewApplicationCheck cria o check com o sampler do runtime.
func NewApplicationCheck(thresholdMB uint64) *ApplicationCheck {
	return &ApplicationCheck{ThresholdMB: thresholdMB, Sample: RuntimeSampler, Now: time.Now}
}

func (c *ApplicationCheck) Name() string   { return NameApplication }
func (c *ApplicationCheck) Tags() []string { return []string{TagApplication} }

func (c *ApplicationCheck) Run(_ context.Context) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			res = Result{
				Status:      Unhealthy,
				Description: "falha ao verificar a aplicação",
				Data:        map[string]interface{}{"error": fmt.Sprint(p)},
			}
		}
	}()

	s := c.Sample()
	usedMB := s.Alloc / bytesPerMB
	data := map[string]interface{}{
		"memory_used_mb": usedMB,
		"heap_sys_mb":    s.HeapSys / bytesPerMB,
		"timestamp":      c.Now().UTC().Format(time.RFC3339),
	}

	if usedMB > c.ThresholdMB {
		return Result{
			Status:      Degraded,
			Description: fmt.Sprintf("uso de memória acima de %d MB", c.ThresholdMB),
			Data:        data,
		}
	}
	return Result{Status: Healthy, Description: "aplicação operando normalmente", Data: data}
}

// Pinger é satisfeito por *sql.DB e pelo cliente de cache.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingerFunc adapta uma função a Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

// PingCheck fica Unhealthy quando o ping falha.
type PingCheck struct {
	name   string
	tags   []string
	pinger Pinger
}

// NewDatabaseCheck cria o check do banco.
func NewDatabaseCheck(p Pinger) *PingCheck {
	return &PingCheck{name: NameDatabase, tags: []string{TagDatabase}, pinger: p}
}

// NewCacheCheck cria o check do Redis, marcado como dependência externa.
func NewCacheCheck(ping func(ctx context.Context) error) *PingCheck {
	return &PingCheck{name: NameCache, tags: []string{TagExternal}, pinger: PingerFunc(ping)}
}

func (c *PingCheck) Name() string   { return c.name }
func (c *PingCheck) Tags() []string { return c.tags }

func (c *PingCheck) Run(ctx context.Context) Result {
	if err := c.pinger.PingContext(ctx); err != nil {
		return Result{
			Status:      Unhealthy,
			Description: fmt.Sprintf("%s indisponível", c.name),
			Data:        map[string]interface{}{"error": err.Error()},
		}
	}
	return Result{Status: Healthy, Description: fmt.Sprintf("%s acessível", c.name)}
}

// Predicados das rotas de health.
var (
	AllChecks   = ByTag(TagApplication, TagDatabase, TagExternal)
	ReadyChecks = ByTag(TagDatabase, TagExternal)
	LiveChecks  = ByTag(TagApplication)
)

package infra

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned without calling the wrapped function while the
// breaker is cooling down.
var ErrCircuitOpen = errors.New("circuito abierto: servicio de predicción no disponible")

const (
	estadoCerrado    = "closed"
	estadoAbierto    = "open"
	estadoProbando   = "half-open"
	probesParaCerrar = 2
)

// CircuitBreaker guards calls to the prediction sidecar. After `umbral`
// consecutive failures it opens and fast-fails every call for `enfriamiento`;
// then it lets probes through and closes again after two consecutive
// successes.
type CircuitBreaker struct {
	mu           sync.Mutex
	umbral       int
	enfriamiento time.Duration

	fallos   int
	aciertos int
	abierto  bool
	desde    time.Time
}

func NewCircuitBreaker(umbral int, enfriamiento time.Duration) *CircuitBreaker {
	if umbral <= 0 {
		umbral = 5
	}
	if enfriamiento <= 0 {
		enfriamiento = time.Minute
	}
	return &CircuitBreaker{umbral: umbral, enfriamiento: enfriamiento}
}

// State reports the breaker phase for the health endpoint.
func (cb *CircuitBreaker) State() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch {
	case !cb.abierto:
		return estadoCerrado
	case time.Since(cb.desde) >= cb.enfriamiento:
		return estadoProbando
	default:
		return estadoAbierto
	}
}

// Execute runs fn unless the breaker is open, and feeds the result back into
// the failure accounting.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if !cb.permitir() {
		return ErrCircuitOpen
	}
	err := fn()
	cb.registrar(err == nil)
	return err
}

func (cb *CircuitBreaker) permitir() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if !cb.abierto {
		return true
	}
	// en enfriamiento: solo pasan probes una vez vencido el plazo
	return time.Since(cb.desde) >= cb.enfriamiento
}

func (cb *CircuitBreaker) registrar(ok bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if !ok {
		cb.aciertos = 0
		cb.fallos++
		if cb.abierto || cb.fallos >= cb.umbral {
			cb.abierto = true
			cb.desde = time.Now()
			cb.fallos = 0
		}
		return
	}

	if cb.abierto {
		cb.aciertos++
		if cb.aciertos >= probesParaCerrar {
			cb.abierto = false
			cb.aciertos = 0
		}
		return
	}
	cb.fallos = 0
}

package ledger

import (
	"strings"
	"sync"

	"github.com/softfruver/fruver-ledger/internal/domain"
	"github.com/softfruver/fruver-ledger/internal/domain/repository"
)

// Etiquetas canónicas del enum metodo_pago. El catálogo arranca con este
// conjunto cerrado y puede refrescarse una vez desde la base al inicio;
// nunca se consulta la base por cada pago.
var metodosPorDefecto = []string{"EFECTIVO", "TRANSFERENCIA"}

// MetodoCatalogo cache de proceso de las etiquetas válidas de método de pago.
// La normalización es insensible a mayúsculas pero siempre devuelve la
// etiqueta exacta que la base acepta.
type MetodoCatalogo struct {
	mu       sync.RWMutex
	porClave map[string]string // UPPER -> etiqueta exacta
	orden    []string
}

// NewMetodoCatalogo construye el catálogo con el conjunto estático por defecto.
func NewMetodoCatalogo() *MetodoCatalogo {
	c := &MetodoCatalogo{}
	c.reemplazar(metodosPorDefecto)
	return c
}

func (c *MetodoCatalogo) reemplazar(labels []string) {
	porClave := make(map[string]string, len(labels))
	orden := make([]string, 0, len(labels))
	for _, lbl := range labels {
		clave := strings.ToUpper(strings.TrimSpace(lbl))
		if clave == "" {
			continue
		}
		if _, ya := porClave[clave]; ya {
			continue
		}
		porClave[clave] = lbl
		orden = append(orden, lbl)
	}
	c.mu.Lock()
	c.porClave = porClave
	c.orden = orden
	c.mu.Unlock()
}

// Cargar refresca el catálogo desde el enum de la base. Pensado para llamarse
// una vez al arrancar; si la consulta falla o viene vacía se conserva el
// conjunto vigente.
func (c *MetodoCatalogo) Cargar(repo repository.PagoRepository) error {
	labels, err := repo.MetodoLabels()
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return nil
	}
	c.reemplazar(labels)
	return nil
}

// Invalidar descarta lo cargado y vuelve al conjunto estático por defecto.
func (c *MetodoCatalogo) Invalidar() {
	c.reemplazar(metodosPorDefecto)
}

// Etiquetas devuelve las etiquetas canónicas en su orden declarado.
func (c *MetodoCatalogo) Etiquetas() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.orden))
	copy(out, c.orden)
	return out
}

// Normalizar resuelve la etiqueta canónica para un valor de formulario.
// Un valor desconocido es error de validación con la lista de permitidos.
func (c *MetodoCatalogo) Normalizar(raw string) (string, error) {
	clave := strings.ToUpper(strings.TrimSpace(raw))
	if clave == "" {
		return "", domain.Validacionf("el método de pago es obligatorio (%s)", strings.Join(c.Etiquetas(), " o "))
	}
	c.mu.RLock()
	exacta, ok := c.porClave[clave]
	c.mu.RUnlock()
	if !ok {
		return "", domain.Validacionf("método de pago inválido: '%s'. Valores permitidos: %s", raw, strings.Join(c.Etiquetas(), ", "))
	}
	return exacta, nil
}

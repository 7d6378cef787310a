package usecase

import (
	"sync"
	"time"

	"github.com/oscargustin/Ferremas/src/alerts/domain/entity"
)

// DefaultCapacity es el tope por defecto del log de notificaciones.
const DefaultCapacity = 10

// EntryKind clasifica una entrada del log de notificaciones.
type EntryKind string

const (
	KindAlert   EntryKind = "alert"   // alerta de stock bajo
	KindWarning EntryKind = "warning" // corte del stream
	KindNotice  EntryKind = "notice"  // aviso estático (stream no soportado)
)

// Entry es una entrada del log de notificaciones.
type Entry struct {
	Kind       EntryKind `json:"kind"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}

// AlertLog mantiene las notificaciones más recientes primero, acotadas a la
// capacidad: la entrada más antigua se descarta al superarla.
type AlertLog struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
}

// NewAlertLog crea un log con la capacidad indicada (el valor por defecto
// si no es positiva).
func NewAlertLog(capacity int) *AlertLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &AlertLog{capacity: capacity}
}

// PushAlert antepone una alerta de stock bajo al log.
func (l *AlertLog) PushAlert(alert entity.LowStockAlert) {
	l.push(Entry{Kind: KindAlert, Text: alert.Message(), ReceivedAt: time.Now()})
}

// PushWarning antepone una advertencia (por ejemplo un corte del stream).
func (l *AlertLog) PushWarning(text string) {
	l.push(Entry{Kind: KindWarning, Text: text, ReceivedAt: time.Now()})
}

// PushNotice antepone un aviso estático.
func (l *AlertLog) PushNotice(text string) {
	l.push(Entry{Kind: KindNotice, Text: text, ReceivedAt: time.Now()})
}

func (l *AlertLog) push(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]Entry{e}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries devuelve una copia del log, más recientes primero.
func (l *AlertLog) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

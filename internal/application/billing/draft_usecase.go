package billing

import (
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/repository"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/logger"
)

// Claves del almacén clave-valor para el borrador.
const (
	keyDraft          = "invoiceFormData"
	keyDraftTimestamp = "invoiceFormDataTimestamp"
)

// DraftUseCase persiste el borrador con debounce: cada edición reinicia un
// único temporizador pendiente y solo la versión más reciente toca el almacén.
// Flush escribe lo pendiente de inmediato (apagado ordenado).
type DraftUseCase struct {
	store           repository.Store
	log             *logger.Logger
	debounce        time.Duration
	defaultCurrency string

	mu      sync.Mutex
	timer   *time.Timer
	pending *entity.FormState
}

// NewDraftUseCase construye el caso de uso. debounce <= 0 escribe sin espera.
func NewDraftUseCase(store repository.Store, log *logger.Logger, debounce time.Duration, defaultCurrency string) *DraftUseCase {
	return &DraftUseCase{
		store:           store,
		log:             log,
		debounce:        debounce,
		defaultCurrency: defaultCurrency,
	}
}

// SaveDraft agenda la persistencia del borrador. Si ya había una escritura
// pendiente, se descarta y el temporizador arranca de nuevo.
func (uc *DraftUseCase) SaveDraft(f entity.FormState) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.pending = &f
	if uc.debounce <= 0 {
		uc.writeLocked()
		return
	}
	if uc.timer != nil {
		uc.timer.Stop()
	}
	uc.timer = time.AfterFunc(uc.debounce, func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		uc.writeLocked()
	})
}

// Flush escribe de inmediato cualquier borrador pendiente y cancela el
// temporizador. Se llama en el apagado del servidor.
func (uc *DraftUseCase) Flush() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.timer != nil {
		uc.timer.Stop()
		uc.timer = nil
	}
	uc.writeLocked()
}

// writeLocked persiste el borrador pendiente; requiere uc.mu tomado.
func (uc *DraftUseCase) writeLocked() {
	if uc.pending == nil {
		return
	}
	data, err := json.Marshal(uc.pending)
	if err != nil {
		uc.log.Error().Err(err).Msg("borrador: serialización fallida")
		return
	}
	if err := uc.store.Set(keyDraft, data); err != nil {
		uc.log.Error().Err(err).Msg("borrador: escritura fallida")
		return
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := uc.store.Set(keyDraftTimestamp, []byte(ts)); err != nil {
		uc.log.Warn().Err(err).Msg("borrador: no se pudo guardar el timestamp")
	}
	uc.pending = nil
}

// LoadDraft lee el borrador persistido. Sin borrador o con JSON corrupto
// devuelve el formulario por defecto y found=false; lo corrupto se descarta.
func (uc *DraftUseCase) LoadDraft() (entity.FormState, bool) {
	data, ok, err := uc.store.Get(keyDraft)
	if err != nil {
		uc.log.Error().Err(err).Msg("borrador: lectura fallida")
		return entity.NewFormState(uc.defaultCurrency), false
	}
	if !ok {
		return entity.NewFormState(uc.defaultCurrency), false
	}

	var f entity.FormState
	if err := json.Unmarshal(data, &f); err != nil {
		uc.log.Warn().Err(err).Msg("borrador: JSON corrupto, se descarta")
		_ = uc.store.Delete(keyDraft)
		_ = uc.store.Delete(keyDraftTimestamp)
		return entity.NewFormState(uc.defaultCurrency), false
	}
	if len(f.LineItems) == 0 {
		f.LineItems = []entity.LineItem{{Quantity: "1", TaxRate: "0"}}
	}
	return f, true
}

// ClearDraft borra el borrador y su timestamp; cualquier escritura pendiente
// se descarta también.
func (uc *DraftUseCase) ClearDraft() error {
	uc.mu.Lock()
	if uc.timer != nil {
		uc.timer.Stop()
		uc.timer = nil
	}
	uc.pending = nil
	uc.mu.Unlock()

	if err := uc.store.Delete(keyDraft); err != nil {
		return err
	}
	return uc.store.Delete(keyDraftTimestamp)
}

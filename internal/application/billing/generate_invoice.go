package billing

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/dto"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain"
	domainbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/money"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/repository"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/i18n"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/logger"
)

// GenerateInvoiceUseCase valida el formulario y produce el snapshot inmutable.
// El archivo histórico es opcional: con invoiceRepo nil la generación funciona
// igual, solo que nada se persiste.
type GenerateInvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	settings    *SettingsProvider
	log         *logger.Logger
	now         func() time.Time
}

// SettingsProvider entrega las preferencias y el perfil de empresa vigentes al
// momento de generar. Lo implementa el caso de uso de ajustes.
type SettingsProvider struct {
	Settings func() entity.InvoiceSettings
	Company  func() entity.CompanyInfo
}

// NewGenerateInvoiceUseCase construye el caso de uso.
func NewGenerateInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	settings *SettingsProvider,
	log *logger.Logger,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
		settings:    settings,
		log:         log,
		now:         time.Now,
	}
}

// Preview calcula el desglose en vivo del formulario: reconcilia ambas
// porciones contra el total vigente y arma los textos derivados. Nunca falla;
// la entrada ilegible se coacciona a cero (la validación dura es solo al
// generar).
func (uc *GenerateInvoiceUseCase) Preview(f entity.FormState, lang string) dto.PreviewResponse {
	tr := i18n.Translator(lang)
	bd := domainbilling.Compute(f)

	f.Advance = domainbilling.Reconcile(f.Advance, bd.Total)
	f.Delivery = domainbilling.Reconcile(f.Delivery, bd.Total)

	return dto.PreviewResponse{
		Subtotal:       bd.Subtotal,
		TaxAmount:      bd.TaxAmount,
		Total:          bd.Total,
		TaxMode:        string(bd.TaxMode),
		TotalMode:      string(bd.TotalMode),
		Advance:        f.Advance,
		Delivery:       f.Delivery,
		PaymentDetails: domainbilling.FormatTerms(f, bd.Total, tr),
		ValidityPeriod: validityText(f.ValidityMonths, tr),
	}
}

// EditPortion aplica una tecleada al campo autoritativo de una porción y
// devuelve la porción reconciliada contra el total vigente del formulario.
func (uc *GenerateInvoiceUseCase) EditPortion(in dto.PortionEditRequest) (dto.PortionEditResponse, error) {
	total := domainbilling.Total(in.Form)

	var p entity.PaymentPortion
	switch in.Target {
	case "advance":
		p = in.Form.Advance
	case "delivery":
		p = in.Form.Delivery
	default:
		return dto.PortionEditResponse{}, domain.ErrInvalidInput
	}

	switch entity.PortionKind(in.Kind) {
	case entity.PortionPercentage, entity.PortionAmount:
		p = domainbilling.SwitchKind(p, entity.PortionKind(in.Kind))
		if in.Value == "" {
			// cambio puro de modo: los valores guardados se conservan y el
			// dependiente se rederiva del autoritativo nuevo
			p = domainbilling.Reconcile(p, total)
			return dto.PortionEditResponse{Target: in.Target, Portion: p}, nil
		}
	case "":
		// sin cambio de modo: se edita el campo autoritativo actual
	default:
		return dto.PortionEditResponse{}, domain.ErrInvalidInput
	}

	p = domainbilling.ApplyEdit(p, in.Value, total)
	return dto.PortionEditResponse{Target: in.Target, Portion: p}, nil
}

// Validate aplica las reglas de envío y devuelve el mapa campo → mensaje
// localizado; mapa vacío significa formulario válido.
func (uc *GenerateInvoiceUseCase) Validate(f entity.FormState, lang string) domain.FieldErrors {
	tr := i18n.Translator(lang)
	errs := domain.FieldErrors{}

	if strings.TrimSpace(f.ClientName) == "" {
		errs["clientName"] = tr("clientNameRequired")
	}

	if strings.TrimSpace(f.DueDate) == "" {
		errs["dueDate"] = tr("dueDateRequired")
	} else if due, err := time.Parse("2006-01-02", f.DueDate); err != nil {
		errs["dueDate"] = tr("dueDateRequired")
	} else {
		y, m, d := uc.now().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if due.Before(today) {
			errs["dueDate"] = tr("dueDatePast")
		}
	}

	if f.UseCustomNumber && strings.TrimSpace(f.CustomNumber) == "" {
		errs["customInvoiceNumber"] = tr("customInvoiceNumberRequired")
	}

	if f.UseManualTotal {
		total, err := decimal.NewFromString(strings.TrimSpace(f.ManualTotal))
		if err != nil || total.LessThan(decimal.NewFromFloat(0.01)) {
			errs["manualTotal"] = tr("manualTotalMinimum")
		}
	}

	if f.UseOverallTax {
		rate, err := decimal.NewFromString(strings.TrimSpace(f.OverallTaxRate))
		if err != nil || rate.IsNegative() {
			errs["overallTax"] = tr("overallTaxRequired")
		}
	}

	if !hasCompleteLine(f.LineItems) {
		errs["lineItems"] = tr("lineItemsRequired")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// hasCompleteLine: al menos una fila con descripción, cantidad y precio
// positivos.
func hasCompleteLine(items []entity.LineItem) bool {
	for _, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			continue
		}
		if money.ParseAmount(it.Quantity).IsPositive() &&
			money.ParseAmount(it.UnitPrice).IsPositive() {
			return true
		}
	}
	return false
}

// Generate valida y produce el snapshot inmutable. Si el archivo histórico
// está habilitado, lo persiste; un fallo de persistencia se registra pero no
// invalida el snapshot ya producido.
func (uc *GenerateInvoiceUseCase) Generate(ctx context.Context, f entity.FormState, lang string) (*entity.Invoice, error) {
	if errs := uc.Validate(f, lang); errs != nil {
		return nil, errs
	}

	tr := i18n.Translator(lang)
	bd := domainbilling.Compute(f)
	f.Advance = domainbilling.Reconcile(f.Advance, bd.Total)
	f.Delivery = domainbilling.Reconcile(f.Delivery, bd.Total)

	now := uc.now()
	inv := &entity.Invoice{
		ID:                 uuid.New().String(),
		Number:             uc.invoiceNumber(f, now),
		IssueDate:          now.Format("2006-01-02"),
		DueDate:            f.DueDate,
		Currency:           f.Currency,
		ClientName:         strings.TrimSpace(f.ClientName),
		ServiceDescription: f.ServiceDescription,
		LineItems:          append([]entity.LineItem(nil), f.LineItems...),
		UseOverallTax:      f.UseOverallTax,
		OverallTaxRate:     f.OverallTaxRate,
		UseManualTotal:     f.UseManualTotal,
		ManualTotal:        f.ManualTotal,
		Subtotal:           bd.Subtotal,
		TaxTotal:           bd.TaxAmount,
		GrandTotal:         bd.Total,
		Advance:            f.Advance,
		Delivery:           f.Delivery,
		IncludeDelivery:    f.IncludeDelivery,
		PaymentDetails:     domainbilling.FormatTerms(f, bd.Total, tr),
		ValidityMonths:     f.ValidityMonths,
		ValidityPeriod:     validityText(f.ValidityMonths, tr),
		Language:           lang,
		CreatedAt:          now,
	}
	if uc.settings != nil {
		inv.Settings = uc.settings.Settings()
		inv.CompanyInfo = uc.settings.Company()
	}

	if uc.invoiceRepo != nil {
		if err := uc.invoiceRepo.Save(ctx, inv); err != nil {
			uc.log.Warn().Err(err).Str("invoice", inv.Number).Msg("archivo de facturas: no se pudo guardar el snapshot")
		}
	}

	return inv, nil
}

// GetInvoice recupera un snapshot del archivo histórico.
func (uc *GenerateInvoiceUseCase) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	if uc.invoiceRepo == nil {
		return nil, domain.ErrArchiveDisabled
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// ListInvoices lista el archivo histórico (más recientes primero).
func (uc *GenerateInvoiceUseCase) ListInvoices(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	if uc.invoiceRepo == nil {
		return nil, domain.ErrArchiveDisabled
	}
	return uc.invoiceRepo.List(ctx, limit, offset)
}

// FormFromInvoice reconvierte un snapshot en formulario editable: los campos
// crudos regresan tal cual y la próxima generación produce un snapshot nuevo.
func FormFromInvoice(inv entity.Invoice) entity.FormState {
	return entity.FormState{
		ClientName:         inv.ClientName,
		ServiceDescription: inv.ServiceDescription,
		DueDate:            inv.DueDate,
		LineItems:          append([]entity.LineItem(nil), inv.LineItems...),
		Currency:           inv.Currency,
		CustomNumber:       inv.Number,
		UseCustomNumber:    true, // reeditar conserva el número ya emitido
		ManualTotal:        inv.ManualTotal,
		UseManualTotal:     inv.UseManualTotal,
		OverallTaxRate:     inv.OverallTaxRate,
		UseOverallTax:      inv.UseOverallTax,
		ValidityMonths:     inv.ValidityMonths,
		ValidityPeriod:     inv.ValidityPeriod,
		PaymentDetails:     inv.PaymentDetails,
		Advance:            inv.Advance,
		Delivery:           inv.Delivery,
		IncludeDelivery:    inv.IncludeDelivery,
	}
}

// invoiceNumber: el número personalizado si el toggle está activo, si no
// INV-<epoch ms>-<sufijo aleatorio>.
func (uc *GenerateInvoiceUseCase) invoiceNumber(f entity.FormState, now time.Time) string {
	if f.UseCustomNumber {
		if n := strings.TrimSpace(f.CustomNumber); n != "" {
			return n
		}
	}
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return "INV-" + strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}

// validityText: "<n> meses desde la fecha de factura" si el campo parsea a un
// entero positivo; vacío en otro caso.
func validityText(months string, tr domainbilling.TranslateFunc) string {
	m := money.ParseAmount(months)
	if !m.IsPositive() {
		return ""
	}
	return m.String() + " " + tr("validityMonths")
}

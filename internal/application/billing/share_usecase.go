package billing

import (
	"strings"

	"github.com/KasbouyaMohammed/micro-invoice-app/internal/application/dto"
	domainbilling "github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/billing"
	"github.com/KasbouyaMohammed/micro-invoice-app/internal/domain/entity"
	"github.com/KasbouyaMohammed/micro-invoice-app/pkg/i18n"
)

// LinkBuilder arma el enlace de compartir a partir del mensaje plano y el
// teléfono opcional. Lo implementa la infraestructura de WhatsApp.
type LinkBuilder interface {
	BuildLink(phone, message string) string
}

// ShareUseCase arma el mensaje de compartir y su enlace. El mensaje sale del
// mismo snapshot que la generación, así el texto compartido y el documento
// nunca divergen.
type ShareUseCase struct {
	generate *GenerateInvoiceUseCase
	links    LinkBuilder
}

// NewShareUseCase construye el caso de uso.
func NewShareUseCase(generate *GenerateInvoiceUseCase, links LinkBuilder) *ShareUseCase {
	return &ShareUseCase{generate: generate, links: links}
}

// Share valida el formulario, arma el snapshot efímero y devuelve mensaje y
// enlace. El preámbulo opcional va antes del mensaje, separado por una línea
// en blanco.
func (uc *ShareUseCase) Share(in dto.ShareRequest, lang string) (dto.ShareResponse, error) {
	if errs := uc.generate.Validate(in.Form, lang); errs != nil {
		return dto.ShareResponse{}, errs
	}

	inv := uc.snapshotForShare(in.Form, lang)
	tr := i18n.Translator(lang)

	message := domainbilling.BuildShareMessage(inv, tr)
	if p := strings.TrimSpace(in.Preamble); p != "" {
		message = p + "\n\n" + message
	}

	return dto.ShareResponse{
		Message: message,
		Link:    uc.links.BuildLink(in.Phone, message),
	}, nil
}

// snapshotForShare arma el snapshot sin tocar el archivo histórico: compartir
// no emite factura.
func (uc *ShareUseCase) snapshotForShare(f entity.FormState, lang string) entity.Invoice {
	bd := domainbilling.Compute(f)
	f.Advance = domainbilling.Reconcile(f.Advance, bd.Total)
	f.Delivery = domainbilling.Reconcile(f.Delivery, bd.Total)
	return entity.Invoice{
		ClientName:         strings.TrimSpace(f.ClientName),
		ServiceDescription: f.ServiceDescription,
		DueDate:            f.DueDate,
		Currency:           f.Currency,
		LineItems:          f.LineItems,
		GrandTotal:         bd.Total,
		Advance:            f.Advance,
		Delivery:           f.Delivery,
		IncludeDelivery:    f.IncludeDelivery,
		Language:           lang,
	}
}

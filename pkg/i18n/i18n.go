// Package i18n resuelve las cadenas localizadas del generador (en, fr, ar).
// Lookup puro: idioma activo → inglés → la clave cruda. El motor de cálculo
// nunca ramifica por idioma; recibe un TranslateFunc ya ligado.
package i18n

import "golang.org/x/text/language"

// DefaultLanguage es el idioma de respaldo de todo lookup.
const DefaultLanguage = "en"

var supported = []language.Tag{
	language.English, // primero = fallback del matcher
	language.French,
	language.Arabic,
}

var matcher = language.NewMatcher(supported)

// Match resuelve un header Accept-Language (o un código suelto) a uno de los
// idiomas soportados.
func Match(accept string) string {
	if accept == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, _ := matcher.Match(tags...)
	base, _ := supported[index].Base()
	return base.String()
}

// Translate busca la clave en el idioma dado, con la cadena de respaldo
// idioma → inglés → clave.
func Translate(lang, key string) string {
	if table, ok := catalogues[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := catalogues[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Translator devuelve la función de lookup ligada a un idioma, lista para
// inyectar en los formateadores.
func Translator(lang string) func(key string) string {
	return func(key string) string { return Translate(lang, key) }
}

// catalogues: subconjunto de claves que consumen el motor, el PDF y los
// mensajes de validación. Mismos textos que la UI original.
var catalogues = map[string]map[string]string{
	"en": {
		"invoiceFor":       "Invoice for",
		"whatsappItems":    "Items:",
		"whatsappTotal":    "Total TTC:",
		"due":              "Due:",
		"thankYou":         "Thank you for your business!",
		"service":          "Service",
		"advancePayment":   "Advance Payment:",
		"deliveryPayment":  "Delivery Payment:",
		"advancePercentage":  "advance",
		"deliveryPercentage": "on delivery",
		"validityMonths":     "months from invoice date",
		"subtotal":           "Subtotal:",
		"total":              "Total:",
		"totalIndividualTaxes": "Total Individual Taxes:",
		"overallTax":           "Overall Tax",
		"invoiceNumber":        "Invoice #",
		"invoiceDate":          "Invoice Date",
		"billTo":               "Bill To:",
		"qty":                  "Qty",
		"designation":          "Description",
		"vat":                  "VAT (%)",
		"unitPriceHT":          "Unit Price HT",
		"totalHT":              "Total HT",
		"dueDateLabel":         "Due Date:",
		"paymentTermsHeader":   "Payment Terms",
		"validity":             "Validity:",
		"facture":              "INVOICE",
		"devis":                "QUOTE",
		"defaultFooter":        "Thank you for your business! Please remit payment by the due date specified above.",
		"clientNameRequired":   "Client name is required",
		"dueDateRequired":      "Due date is required",
		"dueDatePast":          "Due date cannot be in the past",
		"customInvoiceNumberRequired": "Custom invoice number is required when enabled",
		"manualTotalMinimum":          "Manual total must be at least 0.01",
		"overallTaxRequired":          "Overall tax rate must be at least 0",
		"lineItemsRequired":           "At least one line item with description and price is required",
	},
	"fr": {
		"invoiceFor":       "Facture pour",
		"whatsappItems":    "Articles :",
		"whatsappTotal":    "Total TTC :",
		"due":              "Échéance :",
		"thankYou":         "Merci pour votre confiance !",
		"service":          "Service",
		"advancePayment":   "Paiement d'acompte :",
		"deliveryPayment":  "Paiement de livraison :",
		"advancePercentage":  "d'acompte",
		"deliveryPercentage": "à la livraison",
		"validityMonths":     "mois à partir de la date de facture",
		"subtotal":           "Sous-total :",
		"total":              "Total :",
		"totalIndividualTaxes": "Total des Taxes Individuelles :",
		"overallTax":           "Taxe Globale",
		"invoiceNumber":        "Facture #",
		"invoiceDate":          "Date de Facture",
		"billTo":               "Facturer à :",
		"qty":                  "Qté",
		"designation":          "Désignation",
		"vat":                  "TVA (%)",
		"unitPriceHT":          "Prix Unit. HT",
		"totalHT":              "Total HT",
		"dueDateLabel":         "Date d'Échéance :",
		"paymentTermsHeader":   "Conditions de paiement",
		"validity":             "Validité :",
		"facture":              "FACTURE",
		"devis":                "DEVIS",
		"defaultFooter":        "Merci pour votre confiance ! Veuillez effectuer le paiement avant la date d'échéance indiquée ci-dessus.",
		"clientNameRequired":   "Le nom du client est requis",
		"dueDateRequired":      "La date d'échéance est requise",
		"dueDatePast":          "La date d'échéance ne peut pas être dans le passé",
		"customInvoiceNumberRequired": "Le numéro de facture personnalisé est requis quand activé",
		"manualTotalMinimum":          "Le total manuel doit être d'au moins 0,01",
		"overallTaxRequired":          "Le taux de taxe globale doit être d'au moins 0",
		"lineItemsRequired":           "Au moins un article avec description et prix est requis",
	},
	"ar": {
		"invoiceFor":       "فاتورة لـ",
		"whatsappItems":    "السلع:",
		"whatsappTotal":    "المجموع مع الضريبة:",
		"due":              "الاستحقاق:",
		"thankYou":         "شكراً لثقتكم!",
		"service":          "الخدمة",
		"advancePayment":   "دفع المقدم:",
		"deliveryPayment":  "دفع التسليم:",
		"advancePercentage":  "مقدم",
		"deliveryPercentage": "عند التسليم",
		"validityMonths":     "أشهر من تاريخ الفاتورة",
		"subtotal":           "المجموع الفرعي:",
		"total":              "المجموع:",
		"totalIndividualTaxes": "مجموع الضرائب الفردية:",
		"overallTax":           "الضريبة الشاملة",
		"invoiceNumber":        "رقم الفاتورة",
		"invoiceDate":          "تاريخ الفاتورة",
		"billTo":               "فاتورة إلى:",
		"qty":                  "الكمية",
		"designation":          "الوصف",
		"vat":                  "الضريبة (%)",
		"unitPriceHT":          "سعر الوحدة بدون ضريبة",
		"totalHT":              "المجموع بدون ضريبة",
		"dueDateLabel":         "تاريخ الاستحقاق:",
		"paymentTermsHeader":   "شروط الدفع",
		"validity":             "الصلاحية:",
		"facture":              "فاتورة",
		"devis":                "عرض سعر",
		"defaultFooter":        "شكراً لثقتكم! يرجى سداد المبلغ قبل تاريخ الاستحقاق المحدد أعلاه.",
		"clientNameRequired":   "اسم العميل مطلوب",
		"dueDateRequired":      "تاريخ الاستحقاق مطلوب",
		"dueDatePast":          "تاريخ الاستحقاق لا يمكن أن يكون في الماضي",
		"customInvoiceNumberRequired": "رقم الفاتورة المخصص مطلوب عند التفعيل",
		"manualTotalMinimum":          "المجموع اليدوي يجب أن يكون 0.01 على الأقل",
		"overallTaxRequired":          "معدل الضريبة الشاملة يجب أن يكون 0 على الأقل",
		"lineItemsRequired":           "سلعة واحدة على الأقل مع الوصف والسعر مطلوب",
	},
}

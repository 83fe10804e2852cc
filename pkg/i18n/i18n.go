// Package i18n localiza los mensajes visibles de la API con catálogos de
// golang.org/x/text. El idioma se negocia con el header Accept-Language;
// inglés es el fallback. Los mensajes marathi vienen del front original.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Claves de mensaje (el texto en inglés es a la vez clave y fallback).
const (
	MsgFieldsRequired    = "all fields are required"
	MsgUnknownProduct    = "product not found"
	MsgInsufficientStock = "insufficient stock available"
	MsgPurchaseRecorded  = "purchase recorded"
	MsgSaleRecorded      = "sale recorded"
	MsgMonthRequired     = "month is required (YYYY-MM)"
	MsgInvalidKind       = "kind must be purchase or sale"
	MsgInternal          = "something went wrong, please try again"
)

var supported = []language.Tag{
	language.English, // primero = fallback
	language.Marathi,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

func init() {
	set := func(tag language.Tag, key, msg string) {
		_ = message.SetString(tag, key, msg)
	}

	for _, key := range []string{
		MsgFieldsRequired, MsgUnknownProduct, MsgInsufficientStock,
		MsgPurchaseRecorded, MsgSaleRecorded, MsgMonthRequired,
		MsgInvalidKind, MsgInternal,
	} {
		set(language.English, key, key)
	}

	set(language.Marathi, MsgFieldsRequired, "सर्व माहिती आवश्यक आहे")
	set(language.Marathi, MsgUnknownProduct, "उत्पादन सापडले नाही")
	set(language.Marathi, MsgInsufficientStock, "पुरेसा साठा उपलब्ध नाही")
	set(language.Marathi, MsgPurchaseRecorded, "खरेदी यशस्वी")
	set(language.Marathi, MsgSaleRecorded, "विक्री यशस्वी")
	set(language.Marathi, MsgMonthRequired, "महिना आवश्यक आहे (YYYY-MM)")
	set(language.Marathi, MsgInvalidKind, "प्रकार purchase किंवा sale असावा")
	set(language.Marathi, MsgInternal, "काहीतरी चूक झाली, पुन्हा प्रयत्न करा")

	set(language.Spanish, MsgFieldsRequired, "todos los campos son obligatorios")
	set(language.Spanish, MsgUnknownProduct, "producto no encontrado")
	set(language.Spanish, MsgInsufficientStock, "stock insuficiente")
	set(language.Spanish, MsgPurchaseRecorded, "compra registrada")
	set(language.Spanish, MsgSaleRecorded, "venta registrada")
	set(language.Spanish, MsgMonthRequired, "el mes es obligatorio (YYYY-MM)")
	set(language.Spanish, MsgInvalidKind, "el tipo debe ser purchase o sale")
	set(language.Spanish, MsgInternal, "algo salió mal, intenta de nuevo")
}

// Printer devuelve el printer del mejor idioma según Accept-Language.
// Header vacío o irreconocible cae en inglés.
func Printer(acceptLanguage string) *message.Printer {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return message.NewPrinter(language.English)
	}
	tag, _, _ := matcher.Match(tags...)
	return message.NewPrinter(tag)
}

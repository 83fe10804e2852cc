package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinter_Marathi(t *testing.T) {
	p := Printer("mr")
	assert.Equal(t, "पुरेसा साठा उपलब्ध नाही", p.Sprintf(MsgInsufficientStock))
	assert.Equal(t, "खरेदी यशस्वी", p.Sprintf(MsgPurchaseRecorded))
}

func TestPrinter_EspanolConRegion(t *testing.T) {
	// es-CO debe caer en el catálogo es
	p := Printer("es-CO,es;q=0.9")
	assert.Equal(t, "stock insuficiente", p.Sprintf(MsgInsufficientStock))
}

func TestPrinter_FallbackIngles(t *testing.T) {
	for _, header := range []string{"", "de", "zz-invalid;;;"} {
		p := Printer(header)
		assert.Equal(t, MsgInsufficientStock, p.Sprintf(MsgInsufficientStock),
			"header %q debe caer en inglés", header)
	}
}

func TestPrinter_PrioridadDelHeader(t *testing.T) {
	// El idioma con mayor peso gana
	p := Printer("mr;q=1.0, en;q=0.5")
	assert.Equal(t, "विक्री यशस्वी", p.Sprintf(MsgSaleRecorded))
}

package entity

import "time"

// Product representa un producto del catálogo. Los productos se crean fuera
// del servicio (seed) y aquí solo cambian sus metadatos de presentación.
type Product struct {
	ID          string
	Name        string // nombre visible, posiblemente localizado
	UnitMeasure string // unidad de medida: kg, quintal, litro, unidad...
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

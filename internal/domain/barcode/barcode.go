// Package barcode valida y compara códigos de barras de ítems.
package barcode

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// MaxLength longitud máxima de un código de barras (en caracteres).
const MaxLength = 64

var (
	ErrEmpty      = errors.New("código de barras vacío")
	ErrTooLong    = errors.New("código de barras supera 64 caracteres")
	ErrWhitespace = errors.New("código de barras con espacios")
)

// Clean recorta espacios externos.
func Clean(code string) string {
	return strings.TrimSpace(code)
}

// Validate comprueba el formato: 1–64 caracteres sin espacios, después de recortar.
func Validate(code string) error {
	c := Clean(code)
	if c == "" {
		return ErrEmpty
	}
	if utf8.RuneCountInString(c) > MaxLength {
		return ErrTooLong
	}
	if strings.IndexFunc(c, unicode.IsSpace) >= 0 {
		return ErrWhitespace
	}
	return nil
}

// Key clave de comparación: recortada y con plegado de mayúsculas Unicode.
func Key(code string) string {
	c := Clean(code)
	if c == "" {
		return ""
	}
	return cases.Fold().String(c)
}

// Equal compara dos códigos sin distinguir mayúsculas ni espacios externos.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

package entity

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Categorías canónicas de ítem.
const (
	CategoryAlbum = "album"
	CategoryMD    = "md"
)

// ItemIdentity tupla que identifica un ítem de forma única (artista, categoría, versión, opción).
type ItemIdentity struct {
	Artist       string `json:"artist"`
	Category     string `json:"category"`
	AlbumVersion string `json:"album_version"`
	Option       string `json:"option"`
}

// Item representa un álbum o producto de merchandising con código de barras opcional.
type Item struct {
	ID string
	ItemIdentity
	Barcode   string // tal como se ingresó (recortado); comparación vía barcode.Key
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NormalizeCategory colapsa los alias conocidos a la categoría canónica. Vacío = album.
func NormalizeCategory(value string) string {
	cleaned := strings.ToLower(normalizeText(value))
	switch cleaned {
	case "":
		return CategoryAlbum
	case "album", "앨범":
		return CategoryAlbum
	case "md", "md/굿즈", "merch", "굿즈":
		return CategoryMD
	}
	return cleaned
}

// Normalize devuelve la identidad recortada, en NFC y con la categoría canónica.
func (id ItemIdentity) Normalize() ItemIdentity {
	return ItemIdentity{
		Artist:       normalizeText(id.Artist),
		Category:     NormalizeCategory(id.Category),
		AlbumVersion: normalizeText(id.AlbumVersion),
		Option:       normalizeText(id.Option),
	}
}

// Valid indica si la identidad (ya normalizada) tiene los campos obligatorios.
func (id ItemIdentity) Valid() bool {
	return id.Artist != "" && id.AlbumVersion != ""
}

// Group es la parte de la identidad que un código de barras puede compartir (sin opción).
func (id ItemIdentity) Group() ItemGroup {
	n := id.Normalize()
	return ItemGroup{Artist: n.Artist, Category: n.Category, AlbumVersion: n.AlbumVersion}
}

// Key clave estable de la identidad completa, útil para índices en memoria.
func (id ItemIdentity) Key() string {
	n := id.Normalize()
	return n.Artist + "\x1f" + n.Category + "\x1f" + n.AlbumVersion + "\x1f" + n.Option
}

// ItemGroup (artista, categoría, versión): unidad sobre la que se exige unicidad del código de barras.
type ItemGroup struct {
	Artist       string
	Category     string
	AlbumVersion string
}

// BarcodeConflict describe el ítem que ya tiene asignado el código de barras.
type BarcodeConflict struct {
	Barcode  string
	ItemID   string
	Existing ItemGroup
}

// normalizeText recorta espacios y compone los caracteres (el coreano puede llegar descompuesto).
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

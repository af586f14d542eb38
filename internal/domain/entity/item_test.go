package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/album-inventory/internal/domain/entity"
)

func TestNormalizeCategory(t *testing.T) {
	cases := map[string]string{
		"":       entity.CategoryAlbum,
		"Album":  entity.CategoryAlbum,
		"앨범":     entity.CategoryAlbum,
		"MD":     entity.CategoryMD,
		"md/굿즈":  entity.CategoryMD,
		"굿즈":     entity.CategoryMD,
		"poster": "poster",
	}
	for in, want := range cases {
		assert.Equal(t, want, entity.NormalizeCategory(in), in)
	}
}

func TestItemIdentity_NormalizeYGrupo(t *testing.T) {
	a := entity.ItemIdentity{Artist: "  Artist1 ", Category: "앨범", AlbumVersion: "V1", Option: "A"}
	b := entity.ItemIdentity{Artist: "Artist1", Category: "album", AlbumVersion: "V1 ", Option: "B"}

	assert.Equal(t, a.Group(), b.Group())
	assert.NotEqual(t, a.Key(), b.Key())
	assert.True(t, a.Normalize().Valid())
	assert.False(t, entity.ItemIdentity{Artist: "x"}.Valid())
}

func TestDirection(t *testing.T) {
	assert.True(t, entity.DirectionIN.Valid())
	assert.False(t, entity.Direction("in").Valid())
	assert.Equal(t, 13, entity.DirectionIN.Closing(10, 3))
	assert.Equal(t, 7, entity.DirectionOUT.Closing(10, 3))
	assert.Equal(t, -3, entity.DirectionOUT.Signed(3))
}

func TestLocationScope_Allows(t *testing.T) {
	s := entity.LocationScope{PrimaryLocation: "A", SubLocations: []string{"B"}}
	assert.True(t, s.Allows("A", "B"))
	assert.False(t, s.Allows("C", "B"))
	assert.False(t, s.Allows("A", "A"))
}

package sbewire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fuel uint8

const (
	fuelPetrol fuel = 'P'
	fuelDiesel fuel = 'D'
	fuelNull   fuel = 0
)

var fuelSpec = NewEnumSpec(fuelNull,
	EnumVariant[fuel]{fuelPetrol, "Petrol"},
	EnumVariant[fuel]{fuelDiesel, "Diesel"},
)

func TestEnumTotal(t *testing.T) {
	for raw := 0; raw < 256; raw++ {
		e := fuelSpec.FromRaw(uint8(raw))
		switch raw {
		case 'P':
			assert.Equal(t, fuelPetrol, e)
		case 'D':
			assert.Equal(t, fuelDiesel, e)
		default:
			assert.Equal(t, fuelNull, e, "raw %d", raw)
			assert.Equal(t, NullName, fuelSpec.Name(e))
		}
	}
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "Petrol", fuelSpec.Name(fuelPetrol))
	assert.Equal(t, fuelDiesel, fuelSpec.Parse("Diesel"))
	assert.Equal(t, fuelNull, fuelSpec.Parse("diesel"))
	assert.Equal(t, fuelNull, fuelSpec.Parse(NullName))
	assert.Equal(t, fuelNull, fuelSpec.Parse(""))

	for _, v := range fuelSpec.Variants() {
		assert.Equal(t, v, fuelSpec.Parse(fuelSpec.Name(v)))
		assert.Equal(t, v, fuelSpec.FromRaw(fuelSpec.Raw(v)))
		assert.False(t, fuelSpec.IsNull(v))
	}
	assert.Equal(t, []fuel{fuelPetrol, fuelDiesel}, fuelSpec.Variants())
}

func TestEnumNullVariant(t *testing.T) {
	assert.Equal(t, uint8(0), fuelSpec.Raw(fuelNull))
	assert.Equal(t, uint8(0), fuelSpec.Raw(fuel('z')))
	assert.True(t, fuelSpec.IsNull(fuel('z')))
	assert.Equal(t, NullName, fuelSpec.Name(fuelNull))
	assert.Equal(t, fuelNull, fuelSpec.Null())

	vs := fuelSpec.Variants()
	vs[0] = fuelNull
	assert.Equal(t, fuelPetrol, fuelSpec.Variants()[0])
}

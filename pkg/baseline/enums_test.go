package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoostTypeTotal(t *testing.T) {
	for raw := 0; raw < 256; raw++ {
		v := BoostTypeFromRaw(uint8(raw))
		switch raw {
		case 'T', 'S', 'N', 'K':
			assert.Equal(t, BoostType(raw), v)
			assert.NotEqual(t, "NullVal", v.String())
		default:
			assert.Equal(t, BoostTypeNullVal, v)
			assert.Equal(t, "NullVal", v.String())
		}
	}
}

func TestEnumParse(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"boolean", ParseBooleanType("T").String(), "T"},
		{"boolean unknown", ParseBooleanType("maybe").String(), "NullVal"},
		{"model", ParseModel("B").String(), "B"},
		{"model null", ParseModel("NullVal").String(), "NullVal"},
		{"boost", ParseBoostType("KERS").String(), "KERS"},
		{"boost lowercase", ParseBoostType("kers").String(), "NullVal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestEnumRawValues(t *testing.T) {
	assert.Equal(t, uint8(1), BooleanTypeT.Raw())
	assert.Equal(t, uint8(255), BooleanTypeNullVal.Raw())
	assert.Equal(t, uint8('C'), ModelC.Raw())
	assert.Equal(t, uint8(0), Model('Z').Raw())
	assert.Equal(t, BooleanTypeNullVal, BooleanTypeFromRaw(2))
	assert.Equal(t, []Model{ModelA, ModelB, ModelC}, ModelVariants())
	assert.Len(t, BoostTypeVariants(), 4)
	assert.Equal(t, []BooleanType{BooleanTypeF, BooleanTypeT}, BooleanTypeVariants())
}

func TestEnumText(t *testing.T) {
	text, err := BoostTypeSUPERCHARGER.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "SUPERCHARGER", string(text))

	var b BoostType
	assert.NoError(t, b.UnmarshalText([]byte("TURBO")))
	assert.Equal(t, BoostTypeTURBO, b)
	assert.NoError(t, b.UnmarshalText([]byte("jet")))
	assert.Equal(t, BoostTypeNullVal, b)
}

func TestOptionalExtras(t *testing.T) {
	var s OptionalExtras
	assert.Equal(t, []string{}, s.Choices())
	s = s.With(OptionalExtrasSunRoof, true).With(OptionalExtrasCruiseControl, true)
	assert.Equal(t, OptionalExtras(5), s)
	assert.Equal(t, "{sunRoof,cruiseControl}", s.String())
	s = s.With(OptionalExtrasSunRoof, false)
	assert.False(t, s.SunRoof())
	assert.True(t, s.CruiseControl())
	assert.Equal(t, OptionalExtras(6), ParseOptionalExtras([]string{"sportsPack", "cruiseControl", "jetPack"}))
	assert.Equal(t, []string{"sportsPack"}, OptionalExtras(0x80|2).Choices())
}

package baseline

import (
	"strings"

	"github.com/rawbytedev/sbewire"
)

type BooleanType uint8

const (
	BooleanTypeF       BooleanType = 0
	BooleanTypeT       BooleanType = 1
	BooleanTypeNullVal BooleanType = 255
)

var booleanTypeSpec = sbewire.NewEnumSpec(BooleanTypeNullVal,
	sbewire.EnumVariant[BooleanType]{Value: BooleanTypeF, Name: "F"},
	sbewire.EnumVariant[BooleanType]{Value: BooleanTypeT, Name: "T"},
)

func BooleanTypeFromRaw(raw uint8) BooleanType { return booleanTypeSpec.FromRaw(raw) }
func ParseBooleanType(name string) BooleanType  { return booleanTypeSpec.Parse(name) }
func BooleanTypeVariants() []BooleanType         { return booleanTypeSpec.Variants() }

func (v BooleanType) Raw() uint8     { return booleanTypeSpec.Raw(v) }
func (v BooleanType) String() string { return booleanTypeSpec.Name(v) }

func (v BooleanType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *BooleanType) UnmarshalText(text []byte) error {
	*v = ParseBooleanType(string(text))
	return nil
}

// Model is a char enum.
type Model uint8

const (
	ModelA       Model = 'A'
	ModelB       Model = 'B'
	ModelC       Model = 'C'
	ModelNullVal Model = 0
)

var modelSpec = sbewire.NewEnumSpec(ModelNullVal,
	sbewire.EnumVariant[Model]{Value: ModelA, Name: "A"},
	sbewire.EnumVariant[Model]{Value: ModelB, Name: "B"},
	sbewire.EnumVariant[Model]{Value: ModelC, Name: "C"},
)

func ModelFromRaw(raw uint8) Model { return modelSpec.FromRaw(raw) }
func ParseModel(name string) Model  { return modelSpec.Parse(name) }
func ModelVariants() []Model         { return modelSpec.Variants() }

func (v Model) Raw() uint8     { return modelSpec.Raw(v) }
func (v Model) String() string { return modelSpec.Name(v) }

func (v Model) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *Model) UnmarshalText(text []byte) error {
	*v = ParseModel(string(text))
	return nil
}

// BoostType is a char enum.
type BoostType uint8

const (
	BoostTypeTURBO        BoostType = 'T'
	BoostTypeSUPERCHARGER BoostType = 'S'
	BoostTypeNITROUS      BoostType = 'N'
	BoostTypeKERS         BoostType = 'K'
	BoostTypeNullVal      BoostType = 0
)

var boostTypeSpec = sbewire.NewEnumSpec(BoostTypeNullVal,
	sbewire.EnumVariant[BoostType]{Value: BoostTypeTURBO, Name: "TURBO"},
	sbewire.EnumVariant[BoostType]{Value: BoostTypeSUPERCHARGER, Name: "SUPERCHARGER"},
	sbewire.EnumVariant[BoostType]{Value: BoostTypeNITROUS, Name: "NITROUS"},
	sbewire.EnumVariant[BoostType]{Value: BoostTypeKERS, Name: "KERS"},
)

func BoostTypeFromRaw(raw uint8) BoostType { return boostTypeSpec.FromRaw(raw) }
func ParseBoostType(name string) BoostType  { return boostTypeSpec.Parse(name) }
func BoostTypeVariants() []BoostType         { return boostTypeSpec.Variants() }

func (v BoostType) Raw() uint8     { return boostTypeSpec.Raw(v) }
func (v BoostType) String() string { return boostTypeSpec.Name(v) }

func (v BoostType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *BoostType) UnmarshalText(text []byte) error {
	*v = ParseBoostType(string(text))
	return nil
}

// OptionalExtras is a u8 choice set.
type OptionalExtras uint8

const (
	OptionalExtrasSunRoof       OptionalExtras = 1 << 0
	OptionalExtrasSportsPack    OptionalExtras = 1 << 1
	OptionalExtrasCruiseControl OptionalExtras = 1 << 2
)

var optionalExtrasChoices = []struct {
	bit  OptionalExtras
	name string
}{
	{OptionalExtrasSunRoof, "sunRoof"},
	{OptionalExtrasSportsPack, "sportsPack"},
	{OptionalExtrasCruiseControl, "cruiseControl"},
}

func (s OptionalExtras) Has(c OptionalExtras) bool { return s&c == c }

func (s OptionalExtras) With(c OptionalExtras, on bool) OptionalExtras {
	if on {
		return s | c
	}
	return s &^ c
}

func (s OptionalExtras) SunRoof() bool       { return s.Has(OptionalExtrasSunRoof) }
func (s OptionalExtras) SportsPack() bool    { return s.Has(OptionalExtrasSportsPack) }
func (s OptionalExtras) CruiseControl() bool { return s.Has(OptionalExtrasCruiseControl) }

// Choices lists the names of the set bits in schema order. Unknown bits
// are ignored.
func (s OptionalExtras) Choices() []string {
	out := []string{}
	for _, c := range optionalExtrasChoices {
		if s.Has(c.bit) {
			out = append(out, c.name)
		}
	}
	return out
}

func (s OptionalExtras) String() string { return "{" + strings.Join(s.Choices(), ",") + "}" }

// ParseOptionalExtras sets the bit of every known choice name.
func ParseOptionalExtras(names []string) OptionalExtras {
	var s OptionalExtras
	for _, n := range names {
		for _, c := range optionalExtrasChoices {
			if c.name == n {
				s |= c.bit
			}
		}
	}
	return s
}

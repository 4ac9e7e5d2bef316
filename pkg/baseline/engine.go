package baseline

import (
	"github.com/rawbytedev/sbewire"
)

const (
	EngineEncodedLength    = 10
	BoosterEncodedLength   = 2
	ManufacturerCodeLength = 3

	EngineMaxRpm uint16 = 9000
	EngineFuel          = "Petrol"
)

// EngineEncoder writes the Engine composite. It holds the Car cursor until
// Parent is called.
type EngineEncoder struct {
	comp   sbewire.Composite
	buf    sbewire.WriteBuf
	parent *CarEncoder
}

func (e *EngineEncoder) SetCapacity(v uint16) error {
	off, err := e.comp.At("Engine.capacity", 0)
	if err != nil {
		return err
	}
	return e.buf.PutUint16(off, v)
}

func (e *EngineEncoder) SetNumCylinders(v uint8) error {
	off, err := e.comp.At("Engine.numCylinders", 2)
	if err != nil {
		return err
	}
	return e.buf.PutUint8(off, v)
}

func (e *EngineEncoder) MaxRpm() uint16 { return EngineMaxRpm }

func (e *EngineEncoder) ManufacturerCode() sbewire.ArrayEncoder[byte] {
	return sbewire.NewArrayEncoder("Engine.manufacturerCode", e.comp.Scope(), e.buf, 3, ManufacturerCodeLength, byte(0))
}

func (e *EngineEncoder) PutManufacturerCode(v [ManufacturerCodeLength]byte) error {
	return e.ManufacturerCode().Put(v[:])
}

// SetManufacturerCode copies s and pads with NUL.
func (e *EngineEncoder) SetManufacturerCode(s string) error {
	off, err := e.comp.At("Engine.manufacturerCode", 3)
	if err != nil {
		return err
	}
	return sbewire.PutString(e.buf, off, ManufacturerCodeLength, s)
}

func (e *EngineEncoder) Fuel() string { return EngineFuel }

func (e *EngineEncoder) SetEfficiency(v int8) error {
	off, err := e.comp.At("Engine.efficiency", 6)
	if err != nil {
		return err
	}
	return e.buf.PutInt8(off, v)
}

func (e *EngineEncoder) SetBoosterEnabled(v BooleanType) error {
	off, err := e.comp.At("Engine.boosterEnabled", 7)
	if err != nil {
		return err
	}
	return e.buf.PutUint8(off, v.Raw())
}

func (e *EngineEncoder) Booster() (BoosterEncoder, error) {
	comp, err := e.comp.Enter("Engine.booster", 8, BoosterEncodedLength)
	if err != nil {
		return BoosterEncoder{}, err
	}
	return BoosterEncoder{comp: comp, buf: e.buf, parent: e}, nil
}

// Parent hands the cursor back to the Car encoder.
func (e *EngineEncoder) Parent() (*CarEncoder, error) {
	if err := e.comp.Leave("Engine.Parent"); err != nil {
		return nil, err
	}
	return e.parent, nil
}

type BoosterEncoder struct {
	comp   sbewire.Composite
	buf    sbewire.WriteBuf
	parent *EngineEncoder
}

func (b *BoosterEncoder) SetBoostType(v BoostType) error {
	off, err := b.comp.At("Booster.boostType", 0)
	if err != nil {
		return err
	}
	return b.buf.PutUint8(off, v.Raw())
}

func (b *BoosterEncoder) SetHorsePower(v uint8) error {
	off, err := b.comp.At("Booster.horsePower", 1)
	if err != nil {
		return err
	}
	return b.buf.PutUint8(off, v)
}

func (b *BoosterEncoder) Parent() (*EngineEncoder, error) {
	if err := b.comp.Leave("Booster.Parent"); err != nil {
		return nil, err
	}
	return b.parent, nil
}

type EngineDecoder struct {
	comp   sbewire.Composite
	buf    sbewire.ReadBuf
	parent *CarDecoder
}

func (e *EngineDecoder) Capacity() (uint16, error) {
	off, err := e.comp.At("Engine.capacity", 0)
	if err != nil {
		return 0, err
	}
	return e.buf.Uint16(off)
}

func (e *EngineDecoder) NumCylinders() (uint8, error) {
	off, err := e.comp.At("Engine.numCylinders", 2)
	if err != nil {
		return 0, err
	}
	return e.buf.Uint8(off)
}

func (e *EngineDecoder) MaxRpm() uint16 { return EngineMaxRpm }

func (e *EngineDecoder) ManufacturerCode() ([ManufacturerCodeLength]byte, error) {
	var v [ManufacturerCodeLength]byte
	err := sbewire.NewArrayDecoder("Engine.manufacturerCode", e.comp.Scope(), e.buf, 3, ManufacturerCodeLength, byte(0)).Get(v[:])
	return v, err
}

// ManufacturerCodeString reads the code up to its first NUL.
func (e *EngineDecoder) ManufacturerCodeString() (string, error) {
	off, err := e.comp.At("Engine.manufacturerCode", 3)
	if err != nil {
		return "", err
	}
	return sbewire.GetString(e.buf, off, ManufacturerCodeLength)
}

func (e *EngineDecoder) Fuel() string { return EngineFuel }

func (e *EngineDecoder) Efficiency() (int8, error) {
	off, err := e.comp.At("Engine.efficiency", 6)
	if err != nil {
		return 0, err
	}
	return e.buf.Int8(off)
}

func (e *EngineDecoder) BoosterEnabled() (BooleanType, error) {
	off, err := e.comp.At("Engine.boosterEnabled", 7)
	if err != nil {
		return BooleanTypeNullVal, err
	}
	raw, err := e.buf.Uint8(off)
	return BooleanTypeFromRaw(raw), err
}

func (e *EngineDecoder) Booster() (BoosterDecoder, error) {
	comp, err := e.comp.Enter("Engine.booster", 8, BoosterEncodedLength)
	if err != nil {
		return BoosterDecoder{}, err
	}
	return BoosterDecoder{comp: comp, buf: e.buf, parent: e}, nil
}

func (e *EngineDecoder) Parent() (*CarDecoder, error) {
	if err := e.comp.Leave("Engine.Parent"); err != nil {
		return nil, err
	}
	return e.parent, nil
}

type BoosterDecoder struct {
	comp   sbewire.Composite
	buf    sbewire.ReadBuf
	parent *EngineDecoder
}

func (b *BoosterDecoder) BoostType() (BoostType, error) {
	off, err := b.comp.At("Booster.boostType", 0)
	if err != nil {
		return BoostTypeNullVal, err
	}
	raw, err := b.buf.Uint8(off)
	return BoostTypeFromRaw(raw), err
}

func (b *BoosterDecoder) HorsePower() (uint8, error) {
	off, err := b.comp.At("Booster.horsePower", 1)
	if err != nil {
		return 0, err
	}
	return b.buf.Uint8(off)
}

func (b *BoosterDecoder) Parent() (*EngineDecoder, error) {
	if err := b.comp.Leave("Booster.Parent"); err != nil {
		return nil, err
	}
	return b.parent, nil
}

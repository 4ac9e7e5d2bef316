package baseline

import (
	"iter"
	"math"

	"github.com/rawbytedev/sbewire"
)

const (
	CarTemplateID  uint16 = 1
	CarBlockLength uint16 = 45

	SomeNumbersLength               = 4
	SomeNumbersNullValue     uint32 = math.MaxUint32
	VehicleCodeLength               = 6
	FuelFiguresBlockLength          = 6
	PerformanceFiguresBlockLength   = 1
	AccelerationBlockLength         = 6
)

// Variable-position members of Car, in schema order.
const (
	carFuelFigures = iota
	carPerformanceFigures
	carManufacturer
	carModel
	carActivationCode
	carMembers
)

// CarEncoder writes one Car message in place. The zero value must be
// wrapped before use.
type CarEncoder struct {
	buf    sbewire.WriteBuf
	offset int
	cur    sbewire.Cursor
	stage  sbewire.Stage
}

// Wrap positions the body at offset. No header is written.
func (e *CarEncoder) Wrap(buf sbewire.WriteBuf, offset int) error {
	if err := e.cur.Reset(offset, int(CarBlockLength), buf.Capacity()); err != nil {
		return err
	}
	e.buf, e.offset = buf, offset
	e.stage.Reset()
	return nil
}

// WrapAndApplyHeader writes the Car header at offset and wraps the body
// that follows it.
func (e *CarEncoder) WrapAndApplyHeader(buf sbewire.WriteBuf, offset int) error {
	var hdr sbewire.MessageHeaderEncoder
	if err := hdr.Wrap(buf, offset); err != nil {
		return err
	}
	if err := e.Wrap(buf, hdr.BodyOffset()); err != nil {
		return err
	}
	return hdr.Apply(headerFor(CarTemplateID, CarBlockLength))
}

func (e *CarEncoder) Offset() int { return e.offset }

// EncodedLength is the body written so far, header excluded.
func (e *CarEncoder) EncodedLength() int { return e.cur.Limit() - e.offset }

func (e *CarEncoder) scope() sbewire.Scope {
	return sbewire.NewScope(&e.cur, sbewire.RootToken, e.offset)
}

func (e *CarEncoder) SetSerialNumber(v uint64) error {
	off, err := e.scope().At("Car.serialNumber", 0)
	if err != nil {
		return err
	}
	return e.buf.PutUint64(off, v)
}

func (e *CarEncoder) SetModelYear(v uint16) error {
	off, err := e.scope().At("Car.modelYear", 8)
	if err != nil {
		return err
	}
	return e.buf.PutUint16(off, v)
}

func (e *CarEncoder) SetAvailable(v BooleanType) error {
	off, err := e.scope().At("Car.available", 10)
	if err != nil {
		return err
	}
	return e.buf.PutUint8(off, v.Raw())
}

func (e *CarEncoder) SetCode(v Model) error {
	off, err := e.scope().At("Car.code", 11)
	if err != nil {
		return err
	}
	return e.buf.PutUint8(off, v.Raw())
}

func (e *CarEncoder) SomeNumbers() sbewire.ArrayEncoder[uint32] {
	return sbewire.NewArrayEncoder("Car.someNumbers", e.scope(), e.buf, 12, SomeNumbersLength, SomeNumbersNullValue)
}

func (e *CarEncoder) PutSomeNumbers(v [SomeNumbersLength]uint32) error {
	return e.SomeNumbers().Put(v[:])
}

func (e *CarEncoder) PutSomeNumbersNullPadded(src []uint32) error {
	return e.SomeNumbers().NullPadded(src)
}

func (e *CarEncoder) PutSomeNumbersZeroPadded(src []uint32) error {
	return e.SomeNumbers().ZeroPadded(src)
}

func (e *CarEncoder) PutSomeNumbersPrefix(src []uint32) error {
	return e.SomeNumbers().Prefix(src)
}

func (e *CarEncoder) PutSomeNumbersSeq(seq iter.Seq[uint32]) error {
	return e.SomeNumbers().Seq(seq)
}

func (e *CarEncoder) VehicleCode() sbewire.ArrayEncoder[byte] {
	return sbewire.NewArrayEncoder("Car.vehicleCode", e.scope(), e.buf, 28, VehicleCodeLength, byte(0))
}

func (e *CarEncoder) PutVehicleCode(v [VehicleCodeLength]byte) error {
	return e.VehicleCode().Put(v[:])
}

// SetVehicleCode copies s and pads with NUL.
func (e *CarEncoder) SetVehicleCode(s string) error {
	off, err := e.scope().At("Car.vehicleCode", 28)
	if err != nil {
		return err
	}
	return sbewire.PutString(e.buf, off, VehicleCodeLength, s)
}

func (e *CarEncoder) SetExtras(v OptionalExtras) error {
	off, err := e.scope().At("Car.extras", 34)
	if err != nil {
		return err
	}
	return e.buf.PutUint8(off, uint8(v))
}

func (e *CarEncoder) DiscountedModel() Model { return ModelC }

// Engine lends the cursor to the Engine composite.
func (e *CarEncoder) Engine() (EngineEncoder, error) {
	comp, err := sbewire.EnterComposite("Car.engine", e.scope(), 35, EngineEncodedLength)
	if err != nil {
		return EngineEncoder{}, err
	}
	return EngineEncoder{comp: comp, buf: e.buf, parent: e}, nil
}

// FuelFiguresCount starts the fuelFigures group with count elements.
func (e *CarEncoder) FuelFiguresCount(count int) (FuelFiguresEncoder, error) {
	const op = "Car.fuelFigures"
	if err := e.enter(op, carFuelFigures); err != nil {
		return FuelFiguresEncoder{}, err
	}
	grp, err := sbewire.BeginGroupEncode(op, e.scope(), e.buf, count, FuelFiguresBlockLength)
	if err != nil {
		return FuelFiguresEncoder{}, err
	}
	e.stage.Pass(carFuelFigures)
	return FuelFiguresEncoder{grp: grp, buf: e.buf, parent: e}, nil
}

// PerformanceFiguresCount starts the performanceFigures group with count
// elements.
func (e *CarEncoder) PerformanceFiguresCount(count int) (PerformanceFiguresEncoder, error) {
	const op = "Car.performanceFigures"
	if err := e.enter(op, carPerformanceFigures); err != nil {
		return PerformanceFiguresEncoder{}, err
	}
	grp, err := sbewire.BeginGroupEncode(op, e.scope(), e.buf, count, PerformanceFiguresBlockLength)
	if err != nil {
		return PerformanceFiguresEncoder{}, err
	}
	e.stage.Pass(carPerformanceFigures)
	return PerformanceFiguresEncoder{grp: grp, buf: e.buf, parent: e}, nil
}

func (e *CarEncoder) PutManufacturer(v string) error {
	return e.putVar("Car.manufacturer", carManufacturer, v)
}

func (e *CarEncoder) PutModel(v string) error {
	return e.putVar("Car.model", carModel, v)
}

func (e *CarEncoder) PutActivationCode(v string) error {
	return e.putVar("Car.activationCode", carActivationCode, v)
}

func (e *CarEncoder) enter(op string, member int) error {
	if _, err := e.scope().At(op, 0); err != nil {
		return err
	}
	return e.stage.Check(op, member)
}

func (e *CarEncoder) putVar(op string, member int, v string) error {
	if err := e.enter(op, member); err != nil {
		return err
	}
	if err := sbewire.PutVarString(op, e.scope(), e.buf, v); err != nil {
		return err
	}
	e.stage.Pass(member)
	return nil
}

const (
	fuelFiguresUsageDescription = iota
	fuelFiguresMembers
)

// FuelFiguresEncoder writes the fuelFigures group. Each element ends with
// its usageDescription, which must be written before the next Advance.
type FuelFiguresEncoder struct {
	grp    sbewire.GroupEncoder
	buf    sbewire.WriteBuf
	stage  sbewire.Stage
	parent *CarEncoder
}

func (g *FuelFiguresEncoder) Count() int { return g.grp.Count() }

func (g *FuelFiguresEncoder) Advance() error {
	const op = "FuelFigures.Advance"
	if g.grp.Index() > 0 {
		if err := g.stage.Complete(op, fuelFiguresMembers); err != nil {
			return err
		}
	}
	if err := g.grp.Advance(op); err != nil {
		return err
	}
	g.stage.Reset()
	return nil
}

func (g *FuelFiguresEncoder) SetSpeed(v uint16) error {
	off, err := g.grp.At("FuelFigures.speed", 0)
	if err != nil {
		return err
	}
	return g.buf.PutUint16(off, v)
}

func (g *FuelFiguresEncoder) SetMpg(v float32) error {
	off, err := g.grp.At("FuelFigures.mpg", 2)
	if err != nil {
		return err
	}
	return g.buf.PutFloat32(off, v)
}

func (g *FuelFiguresEncoder) PutUsageDescription(v string) error {
	const op = "FuelFigures.usageDescription"
	s := g.grp.Scope()
	if _, err := s.At(op, 0); err != nil {
		return err
	}
	if err := g.stage.Check(op, fuelFiguresUsageDescription); err != nil {
		return err
	}
	if err := sbewire.PutVarString(op, s, g.buf, v); err != nil {
		return err
	}
	g.stage.Pass(fuelFiguresUsageDescription)
	return nil
}

// Parent closes the group and hands the cursor back to the Car encoder.
func (g *FuelFiguresEncoder) Parent() (*CarEncoder, error) {
	const op = "FuelFigures.Parent"
	if g.grp.Index() > 0 {
		if err := g.stage.Complete(op, fuelFiguresMembers); err != nil {
			return nil, err
		}
	}
	if err := g.grp.End(op); err != nil {
		return nil, err
	}
	return g.parent, nil
}

const (
	performanceFiguresAcceleration = iota
	performanceFiguresMembers
)

type PerformanceFiguresEncoder struct {
	grp    sbewire.GroupEncoder
	buf    sbewire.WriteBuf
	stage  sbewire.Stage
	parent *CarEncoder
}

func (g *PerformanceFiguresEncoder) Count() int { return g.grp.Count() }

func (g *PerformanceFiguresEncoder) Advance() error {
	const op = "PerformanceFigures.Advance"
	if g.grp.Index() > 0 {
		if err := g.stage.Complete(op, performanceFiguresMembers); err != nil {
			return err
		}
	}
	if err := g.grp.Advance(op); err != nil {
		return err
	}
	g.stage.Reset()
	return nil
}

func (g *PerformanceFiguresEncoder) SetOctaneRating(v uint8) error {
	off, err := g.grp.At("PerformanceFigures.octaneRating", 0)
	if err != nil {
		return err
	}
	return g.buf.PutUint8(off, v)
}

// AccelerationCount starts the nested acceleration group of the current
// element.
func (g *PerformanceFiguresEncoder) AccelerationCount(count int) (AccelerationEncoder, error) {
	const op = "PerformanceFigures.acceleration"
	s := g.grp.Scope()
	if _, err := s.At(op, 0); err != nil {
		return AccelerationEncoder{}, err
	}
	if err := g.stage.Check(op, performanceFiguresAcceleration); err != nil {
		return AccelerationEncoder{}, err
	}
	grp, err := sbewire.BeginGroupEncode(op, s, g.buf, count, AccelerationBlockLength)
	if err != nil {
		return AccelerationEncoder{}, err
	}
	g.stage.Pass(performanceFiguresAcceleration)
	return AccelerationEncoder{grp: grp, buf: g.buf, parent: g}, nil
}

func (g *PerformanceFiguresEncoder) Parent() (*CarEncoder, error) {
	const op = "PerformanceFigures.Parent"
	if g.grp.Index() > 0 {
		if err := g.stage.Complete(op, performanceFiguresMembers); err != nil {
			return nil, err
		}
	}
	if err := g.grp.End(op); err != nil {
		return nil, err
	}
	return g.parent, nil
}

type AccelerationEncoder struct {
	grp    sbewire.GroupEncoder
	buf    sbewire.WriteBuf
	parent *PerformanceFiguresEncoder
}

func (g *AccelerationEncoder) Count() int { return g.grp.Count() }

func (g *AccelerationEncoder) Advance() error {
	return g.grp.Advance("Acceleration.Advance")
}

func (g *AccelerationEncoder) SetMph(v uint16) error {
	off, err := g.grp.At("Acceleration.mph", 0)
	if err != nil {
		return err
	}
	return g.buf.PutUint16(off, v)
}

func (g *AccelerationEncoder) SetSeconds(v float32) error {
	off, err := g.grp.At("Acceleration.seconds", 2)
	if err != nil {
		return err
	}
	return g.buf.PutFloat32(off, v)
}

func (g *AccelerationEncoder) Parent() (*PerformanceFiguresEncoder, error) {
	if err := g.grp.End("Acceleration.Parent"); err != nil {
		return nil, err
	}
	return g.parent, nil
}

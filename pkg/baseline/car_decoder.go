package baseline

import (
	"github.com/rawbytedev/sbewire"
)

// CarDecoder reads one Car message in place. Fixed fields may be read in
// any order; groups and var data must be walked in schema order.
type CarDecoder struct {
	buf               sbewire.ReadBuf
	offset            int
	actingBlockLength int
	actingVersion     int
	cur               sbewire.Cursor
	stage             sbewire.Stage
}

// Wrap positions the decoder over a body written with the given block
// length and schema version.
func (d *CarDecoder) Wrap(buf sbewire.ReadBuf, offset, actingBlockLength, actingVersion int) error {
	if err := checkBlock("Car", actingBlockLength, CarBlockLength); err != nil {
		return err
	}
	if err := d.cur.Reset(offset, actingBlockLength, buf.Capacity()); err != nil {
		return err
	}
	d.buf, d.offset = buf, offset
	d.actingBlockLength, d.actingVersion = actingBlockLength, actingVersion
	d.stage.Reset()
	return nil
}

// WrapHeader wraps the body that follows hdr after checking its template
// and schema ids.
func (d *CarDecoder) WrapHeader(hdr *sbewire.MessageHeaderDecoder) error {
	if err := checkHeader("Car", hdr, CarTemplateID); err != nil {
		return err
	}
	return d.Wrap(hdr.Buf(), hdr.BodyOffset(), int(hdr.BlockLength()), int(hdr.Version()))
}

// WrapAndReadHeader reads the header at offset and wraps the body after it.
func (d *CarDecoder) WrapAndReadHeader(buf sbewire.ReadBuf, offset int) error {
	var hdr sbewire.MessageHeaderDecoder
	if err := hdr.Wrap(buf, offset); err != nil {
		return err
	}
	return d.WrapHeader(&hdr)
}

func (d *CarDecoder) Offset() int            { return d.offset }
func (d *CarDecoder) ActingBlockLength() int { return d.actingBlockLength }
func (d *CarDecoder) ActingVersion() int     { return d.actingVersion }

// EncodedLength is the body consumed so far, header excluded. It covers
// the whole message once every group and var data field was walked.
func (d *CarDecoder) EncodedLength() int { return d.cur.Limit() - d.offset }

func (d *CarDecoder) scope() sbewire.Scope {
	return sbewire.NewScope(&d.cur, sbewire.RootToken, d.offset)
}

func (d *CarDecoder) SerialNumber() (uint64, error) {
	off, err := d.scope().At("Car.serialNumber", 0)
	if err != nil {
		return 0, err
	}
	return d.buf.Uint64(off)
}

func (d *CarDecoder) ModelYear() (uint16, error) {
	off, err := d.scope().At("Car.modelYear", 8)
	if err != nil {
		return 0, err
	}
	return d.buf.Uint16(off)
}

func (d *CarDecoder) Available() (BooleanType, error) {
	off, err := d.scope().At("Car.available", 10)
	if err != nil {
		return BooleanTypeNullVal, err
	}
	raw, err := d.buf.Uint8(off)
	return BooleanTypeFromRaw(raw), err
}

func (d *CarDecoder) Code() (Model, error) {
	off, err := d.scope().At("Car.code", 11)
	if err != nil {
		return ModelNullVal, err
	}
	raw, err := d.buf.Uint8(off)
	return ModelFromRaw(raw), err
}

func (d *CarDecoder) SomeNumbers() ([SomeNumbersLength]uint32, error) {
	var v [SomeNumbersLength]uint32
	err := sbewire.NewArrayDecoder("Car.someNumbers", d.scope(), d.buf, 12, SomeNumbersLength, SomeNumbersNullValue).Get(v[:])
	return v, err
}

func (d *CarDecoder) VehicleCode() ([VehicleCodeLength]byte, error) {
	var v [VehicleCodeLength]byte
	err := sbewire.NewArrayDecoder("Car.vehicleCode", d.scope(), d.buf, 28, VehicleCodeLength, byte(0)).Get(v[:])
	return v, err
}

// VehicleCodeString reads the code up to its first NUL.
func (d *CarDecoder) VehicleCodeString() (string, error) {
	off, err := d.scope().At("Car.vehicleCode", 28)
	if err != nil {
		return "", err
	}
	return sbewire.GetString(d.buf, off, VehicleCodeLength)
}

func (d *CarDecoder) Extras() (OptionalExtras, error) {
	off, err := d.scope().At("Car.extras", 34)
	if err != nil {
		return 0, err
	}
	raw, err := d.buf.Uint8(off)
	return OptionalExtras(raw), err
}

func (d *CarDecoder) DiscountedModel() Model { return ModelC }

func (d *CarDecoder) Engine() (EngineDecoder, error) {
	comp, err := sbewire.EnterComposite("Car.engine", d.scope(), 35, EngineEncodedLength)
	if err != nil {
		return EngineDecoder{}, err
	}
	return EngineDecoder{comp: comp, buf: d.buf, parent: d}, nil
}

func (d *CarDecoder) FuelFigures() (FuelFiguresDecoder, error) {
	const op = "Car.fuelFigures"
	if err := d.enter(op, carFuelFigures); err != nil {
		return FuelFiguresDecoder{}, err
	}
	grp, err := sbewire.BeginGroupDecode(op, d.scope(), d.buf)
	if err != nil {
		return FuelFiguresDecoder{}, err
	}
	d.stage.Pass(carFuelFigures)
	return FuelFiguresDecoder{grp: grp, buf: d.buf, parent: d}, nil
}

func (d *CarDecoder) PerformanceFigures() (PerformanceFiguresDecoder, error) {
	const op = "Car.performanceFigures"
	if err := d.enter(op, carPerformanceFigures); err != nil {
		return PerformanceFiguresDecoder{}, err
	}
	grp, err := sbewire.BeginGroupDecode(op, d.scope(), d.buf)
	if err != nil {
		return PerformanceFiguresDecoder{}, err
	}
	d.stage.Pass(carPerformanceFigures)
	return PerformanceFiguresDecoder{grp: grp, buf: d.buf, parent: d}, nil
}

// Manufacturer returns the field without copying; the slice aliases the
// decoded buffer.
func (d *CarDecoder) Manufacturer() ([]byte, error) {
	return d.getVar("Car.manufacturer", carManufacturer)
}

func (d *CarDecoder) SkipManufacturer() error {
	_, err := d.getVar("Car.manufacturer", carManufacturer)
	return err
}

func (d *CarDecoder) Model() ([]byte, error) {
	return d.getVar("Car.model", carModel)
}

func (d *CarDecoder) SkipModel() error {
	_, err := d.getVar("Car.model", carModel)
	return err
}

func (d *CarDecoder) ActivationCode() ([]byte, error) {
	return d.getVar("Car.activationCode", carActivationCode)
}

func (d *CarDecoder) SkipActivationCode() error {
	_, err := d.getVar("Car.activationCode", carActivationCode)
	return err
}

func (d *CarDecoder) enter(op string, member int) error {
	if _, err := d.scope().At(op, 0); err != nil {
		return err
	}
	return d.stage.Check(op, member)
}

func (d *CarDecoder) getVar(op string, member int) ([]byte, error) {
	if err := d.enter(op, member); err != nil {
		return nil, err
	}
	v, err := sbewire.GetVarData(op, d.scope(), d.buf)
	if err != nil {
		return nil, err
	}
	d.stage.Pass(member)
	return v, nil
}

type FuelFiguresDecoder struct {
	grp    sbewire.GroupDecoder
	buf    sbewire.ReadBuf
	stage  sbewire.Stage
	parent *CarDecoder
}

func (g *FuelFiguresDecoder) Count() int     { return g.grp.Count() }
func (g *FuelFiguresDecoder) Remaining() int { return g.grp.Remaining() }

func (g *FuelFiguresDecoder) Advance() error {
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

func (g *FuelFiguresDecoder) Speed() (uint16, error) {
	off, err := g.grp.At("FuelFigures.speed", 0)
	if err != nil {
		return 0, err
	}
	return g.buf.Uint16(off)
}

func (g *FuelFiguresDecoder) Mpg() (float32, error) {
	off, err := g.grp.At("FuelFigures.mpg", 2)
	if err != nil {
		return 0, err
	}
	return g.buf.Float32(off)
}

func (g *FuelFiguresDecoder) UsageDescription() ([]byte, error) {
	const op = "FuelFigures.usageDescription"
	s := g.grp.Scope()
	if _, err := s.At(op, 0); err != nil {
		return nil, err
	}
	if err := g.stage.Check(op, fuelFiguresUsageDescription); err != nil {
		return nil, err
	}
	v, err := sbewire.GetVarData(op, s, g.buf)
	if err != nil {
		return nil, err
	}
	g.stage.Pass(fuelFiguresUsageDescription)
	return v, nil
}

func (g *FuelFiguresDecoder) SkipUsageDescription() error {
	_, err := g.UsageDescription()
	return err
}

func (g *FuelFiguresDecoder) Parent() (*CarDecoder, error) {
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

type PerformanceFiguresDecoder struct {
	grp    sbewire.GroupDecoder
	buf    sbewire.ReadBuf
	stage  sbewire.Stage
	parent *CarDecoder
}

func (g *PerformanceFiguresDecoder) Count() int     { return g.grp.Count() }
func (g *PerformanceFiguresDecoder) Remaining() int { return g.grp.Remaining() }

func (g *PerformanceFiguresDecoder) Advance() error {
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

func (g *PerformanceFiguresDecoder) OctaneRating() (uint8, error) {
	off, err := g.grp.At("PerformanceFigures.octaneRating", 0)
	if err != nil {
		return 0, err
	}
	return g.buf.Uint8(off)
}

func (g *PerformanceFiguresDecoder) Acceleration() (AccelerationDecoder, error) {
	const op = "PerformanceFigures.acceleration"
	s := g.grp.Scope()
	if _, err := s.At(op, 0); err != nil {
		return AccelerationDecoder{}, err
	}
	if err := g.stage.Check(op, performanceFiguresAcceleration); err != nil {
		return AccelerationDecoder{}, err
	}
	grp, err := sbewire.BeginGroupDecode(op, s, g.buf)
	if err != nil {
		return AccelerationDecoder{}, err
	}
	g.stage.Pass(performanceFiguresAcceleration)
	return AccelerationDecoder{grp: grp, buf: g.buf, parent: g}, nil
}

func (g *PerformanceFiguresDecoder) Parent() (*CarDecoder, error) {
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

type AccelerationDecoder struct {
	grp    sbewire.GroupDecoder
	buf    sbewire.ReadBuf
	parent *PerformanceFiguresDecoder
}

func (g *AccelerationDecoder) Count() int     { return g.grp.Count() }
func (g *AccelerationDecoder) Remaining() int { return g.grp.Remaining() }

func (g *AccelerationDecoder) Advance() error {
	return g.grp.Advance("Acceleration.Advance")
}

func (g *AccelerationDecoder) Mph() (uint16, error) {
	off, err := g.grp.At("Acceleration.mph", 0)
	if err != nil {
		return 0, err
	}
	return g.buf.Uint16(off)
}

func (g *AccelerationDecoder) Seconds() (float32, error) {
	off, err := g.grp.At("Acceleration.seconds", 2)
	if err != nil {
		return 0, err
	}
	return g.buf.Float32(off)
}

func (g *AccelerationDecoder) Parent() (*PerformanceFiguresDecoder, error) {
	if err := g.grp.End("Acceleration.Parent"); err != nil {
		return nil, err
	}
	return g.parent, nil
}

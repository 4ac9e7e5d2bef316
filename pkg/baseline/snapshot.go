package baseline

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/sbewire"
)

var ErrUnknownTemplate = errors.New("unknown template id")

// CarSnapshot is a plain copy of a decoded Car, suitable for printing.
type CarSnapshot struct {
	SerialNumber       uint64                    `json:"serialNumber" yaml:"serialNumber"`
	ModelYear          uint16                    `json:"modelYear" yaml:"modelYear"`
	Available          BooleanType               `json:"available" yaml:"available"`
	Code               Model                     `json:"code" yaml:"code"`
	SomeNumbers        [SomeNumbersLength]uint32 `json:"someNumbers" yaml:"someNumbers,flow"`
	VehicleCode        string                    `json:"vehicleCode" yaml:"vehicleCode"`
	Extras             []string                  `json:"extras" yaml:"extras,flow"`
	DiscountedModel    Model                     `json:"discountedModel" yaml:"discountedModel"`
	Engine             EngineSnapshot            `json:"engine" yaml:"engine"`
	FuelFigures        []FuelFigureSnapshot      `json:"fuelFigures" yaml:"fuelFigures"`
	PerformanceFigures []PerformanceSnapshot     `json:"performanceFigures" yaml:"performanceFigures"`
	Manufacturer       string                    `json:"manufacturer" yaml:"manufacturer"`
	Model              string                    `json:"model" yaml:"model"`
	ActivationCode     string                    `json:"activationCode" yaml:"activationCode"`
}

type EngineSnapshot struct {
	Capacity         uint16      `json:"capacity" yaml:"capacity"`
	NumCylinders     uint8       `json:"numCylinders" yaml:"numCylinders"`
	MaxRpm           uint16      `json:"maxRpm" yaml:"maxRpm"`
	ManufacturerCode string      `json:"manufacturerCode" yaml:"manufacturerCode"`
	Fuel             string      `json:"fuel" yaml:"fuel"`
	Efficiency       int8        `json:"efficiency" yaml:"efficiency"`
	BoosterEnabled   BooleanType `json:"boosterEnabled" yaml:"boosterEnabled"`
	BoostType        BoostType   `json:"boostType" yaml:"boostType"`
	HorsePower       uint8       `json:"horsePower" yaml:"horsePower"`
}

type FuelFigureSnapshot struct {
	Speed            uint16  `json:"speed" yaml:"speed"`
	Mpg              float32 `json:"mpg" yaml:"mpg"`
	UsageDescription string  `json:"usageDescription" yaml:"usageDescription"`
}

type PerformanceSnapshot struct {
	OctaneRating uint8                  `json:"octaneRating" yaml:"octaneRating"`
	Acceleration []AccelerationSnapshot `json:"acceleration" yaml:"acceleration"`
}

type AccelerationSnapshot struct {
	Mph     uint16  `json:"mph" yaml:"mph"`
	Seconds float32 `json:"seconds" yaml:"seconds"`
}

type PingSnapshot struct {
	Seq   uint64 `json:"seq" yaml:"seq"`
	Flags uint16 `json:"flags" yaml:"flags"`
}

// Message is one decoded entry of a packed buffer.
type Message struct {
	Offset int                  `json:"offset" yaml:"offset"`
	Header sbewire.MessageHeader `json:"header" yaml:"header"`
	Car    *CarSnapshot         `json:"car,omitempty" yaml:"car,omitempty"`
	Ping   *PingSnapshot        `json:"ping,omitempty" yaml:"ping,omitempty"`
}

// Snapshot walks a freshly wrapped decoder through every field in schema
// order. The decoder is left positioned at the end of the message.
func Snapshot(d *CarDecoder) (CarSnapshot, error) {
	var (
		s   CarSnapshot
		err error
	)
	if s.SerialNumber, err = d.SerialNumber(); err != nil {
		return s, err
	}
	if s.ModelYear, err = d.ModelYear(); err != nil {
		return s, err
	}
	if s.Available, err = d.Available(); err != nil {
		return s, err
	}
	if s.Code, err = d.Code(); err != nil {
		return s, err
	}
	if s.SomeNumbers, err = d.SomeNumbers(); err != nil {
		return s, err
	}
	if s.VehicleCode, err = d.VehicleCodeString(); err != nil {
		return s, err
	}
	extras, err := d.Extras()
	if err != nil {
		return s, err
	}
	s.Extras = extras.Choices()
	s.DiscountedModel = d.DiscountedModel()
	if s.Engine, err = snapshotEngine(d); err != nil {
		return s, err
	}

	ff, err := d.FuelFigures()
	if err != nil {
		return s, err
	}
	s.FuelFigures = make([]FuelFigureSnapshot, 0, ff.Count())
	for ff.Remaining() > 0 {
		var f FuelFigureSnapshot
		if err := ff.Advance(); err != nil {
			return s, err
		}
		if f.Speed, err = ff.Speed(); err != nil {
			return s, err
		}
		if f.Mpg, err = ff.Mpg(); err != nil {
			return s, err
		}
		desc, err := ff.UsageDescription()
		if err != nil {
			return s, err
		}
		f.UsageDescription = string(desc)
		s.FuelFigures = append(s.FuelFigures, f)
	}
	if _, err := ff.Parent(); err != nil {
		return s, err
	}

	pf, err := d.PerformanceFigures()
	if err != nil {
		return s, err
	}
	s.PerformanceFigures = make([]PerformanceSnapshot, 0, pf.Count())
	for pf.Remaining() > 0 {
		var p PerformanceSnapshot
		if err := pf.Advance(); err != nil {
			return s, err
		}
		if p.OctaneRating, err = pf.OctaneRating(); err != nil {
			return s, err
		}
		acc, err := pf.Acceleration()
		if err != nil {
			return s, err
		}
		p.Acceleration = make([]AccelerationSnapshot, 0, acc.Count())
		for acc.Remaining() > 0 {
			var a AccelerationSnapshot
			if err := acc.Advance(); err != nil {
				return s, err
			}
			if a.Mph, err = acc.Mph(); err != nil {
				return s, err
			}
			if a.Seconds, err = acc.Seconds(); err != nil {
				return s, err
			}
			p.Acceleration = append(p.Acceleration, a)
		}
		if _, err := acc.Parent(); err != nil {
			return s, err
		}
		s.PerformanceFigures = append(s.PerformanceFigures, p)
	}
	if _, err := pf.Parent(); err != nil {
		return s, err
	}

	for _, field := range []struct {
		get func() ([]byte, error)
		dst *string
	}{
		{d.Manufacturer, &s.Manufacturer},
		{d.Model, &s.Model},
		{d.ActivationCode, &s.ActivationCode},
	} {
		v, err := field.get()
		if err != nil {
			return s, err
		}
		*field.dst = string(v)
	}
	return s, nil
}

func snapshotEngine(d *CarDecoder) (EngineSnapshot, error) {
	var (
		s   EngineSnapshot
		err error
	)
	eng, err := d.Engine()
	if err != nil {
		return s, err
	}
	if s.Capacity, err = eng.Capacity(); err != nil {
		return s, err
	}
	if s.NumCylinders, err = eng.NumCylinders(); err != nil {
		return s, err
	}
	s.MaxRpm = eng.MaxRpm()
	if s.ManufacturerCode, err = eng.ManufacturerCodeString(); err != nil {
		return s, err
	}
	s.Fuel = eng.Fuel()
	if s.Efficiency, err = eng.Efficiency(); err != nil {
		return s, err
	}
	if s.BoosterEnabled, err = eng.BoosterEnabled(); err != nil {
		return s, err
	}
	booster, err := eng.Booster()
	if err != nil {
		return s, err
	}
	if s.BoostType, err = booster.BoostType(); err != nil {
		return s, err
	}
	if s.HorsePower, err = booster.HorsePower(); err != nil {
		return s, err
	}
	if _, err := booster.Parent(); err != nil {
		return s, err
	}
	_, err = eng.Parent()
	return s, err
}

// Encode writes the snapshot as a Car message, header included, at offset
// and returns the offset where the next message may start.
func (s *CarSnapshot) Encode(buf sbewire.WriteBuf, offset int) (int, error) {
	var car CarEncoder
	if err := car.WrapAndApplyHeader(buf, offset); err != nil {
		return 0, err
	}
	if err := errors.Join(
		car.SetSerialNumber(s.SerialNumber),
		car.SetModelYear(s.ModelYear),
		car.SetAvailable(s.Available),
		car.SetCode(s.Code),
		car.PutSomeNumbers(s.SomeNumbers),
		car.SetVehicleCode(s.VehicleCode),
		car.SetExtras(ParseOptionalExtras(s.Extras)),
	); err != nil {
		return 0, err
	}

	eng, err := car.Engine()
	if err != nil {
		return 0, err
	}
	if err := errors.Join(
		eng.SetCapacity(s.Engine.Capacity),
		eng.SetNumCylinders(s.Engine.NumCylinders),
		eng.SetManufacturerCode(s.Engine.ManufacturerCode),
		eng.SetEfficiency(s.Engine.Efficiency),
		eng.SetBoosterEnabled(s.Engine.BoosterEnabled),
	); err != nil {
		return 0, err
	}
	booster, err := eng.Booster()
	if err != nil {
		return 0, err
	}
	if err := errors.Join(
		booster.SetBoostType(s.Engine.BoostType),
		booster.SetHorsePower(s.Engine.HorsePower),
	); err != nil {
		return 0, err
	}
	if _, err := booster.Parent(); err != nil {
		return 0, err
	}
	if _, err := eng.Parent(); err != nil {
		return 0, err
	}

	ff, err := car.FuelFiguresCount(len(s.FuelFigures))
	if err != nil {
		return 0, err
	}
	for _, f := range s.FuelFigures {
		if err := ff.Advance(); err != nil {
			return 0, err
		}
		if err := errors.Join(
			ff.SetSpeed(f.Speed),
			ff.SetMpg(f.Mpg),
			ff.PutUsageDescription(f.UsageDescription),
		); err != nil {
			return 0, err
		}
	}
	if _, err := ff.Parent(); err != nil {
		return 0, err
	}

	pf, err := car.PerformanceFiguresCount(len(s.PerformanceFigures))
	if err != nil {
		return 0, err
	}
	for _, p := range s.PerformanceFigures {
		if err := pf.Advance(); err != nil {
			return 0, err
		}
		if err := pf.SetOctaneRating(p.OctaneRating); err != nil {
			return 0, err
		}
		acc, err := pf.AccelerationCount(len(p.Acceleration))
		if err != nil {
			return 0, err
		}
		for _, a := range p.Acceleration {
			if err := acc.Advance(); err != nil {
				return 0, err
			}
			if err := errors.Join(acc.SetMph(a.Mph), acc.SetSeconds(a.Seconds)); err != nil {
				return 0, err
			}
		}
		if _, err := acc.Parent(); err != nil {
			return 0, err
		}
	}
	if _, err := pf.Parent(); err != nil {
		return 0, err
	}

	if err := car.PutManufacturer(s.Manufacturer); err != nil {
		return 0, err
	}
	if err := car.PutModel(s.Model); err != nil {
		return 0, err
	}
	if err := car.PutActivationCode(s.ActivationCode); err != nil {
		return 0, err
	}
	return sbewire.NextMessageOffset(offset, car.EncodedLength()), nil
}

// Encode writes the snapshot as a Ping message, header included.
func (s *PingSnapshot) Encode(buf sbewire.WriteBuf, offset int) (int, error) {
	var ping PingEncoder
	if err := ping.WrapAndApplyHeader(buf, offset); err != nil {
		return 0, err
	}
	if err := errors.Join(ping.SetSeq(s.Seq), ping.SetFlags(s.Flags)); err != nil {
		return 0, err
	}
	return sbewire.NextMessageOffset(offset, ping.EncodedLength()), nil
}

// DecodeMessage decodes the message whose header starts at offset and
// returns it with the offset of the message after it.
func DecodeMessage(buf sbewire.ReadBuf, offset int) (Message, int, error) {
	var hdr sbewire.MessageHeaderDecoder
	if err := hdr.Wrap(buf, offset); err != nil {
		return Message{}, 0, err
	}
	msg := Message{Offset: offset, Header: hdr.Header()}
	switch msg.Header.TemplateID {
	case CarTemplateID:
		var d CarDecoder
		if err := d.WrapHeader(&hdr); err != nil {
			return msg, 0, err
		}
		car, err := Snapshot(&d)
		if err != nil {
			return msg, 0, err
		}
		msg.Car = &car
		return msg, sbewire.NextMessageOffset(offset, d.EncodedLength()), nil
	case PingTemplateID:
		var d PingDecoder
		if err := d.WrapHeader(&hdr); err != nil {
			return msg, 0, err
		}
		var (
			p   PingSnapshot
			err error
		)
		if p.Seq, err = d.Seq(); err != nil {
			return msg, 0, err
		}
		if p.Flags, err = d.Flags(); err != nil {
			return msg, 0, err
		}
		msg.Ping = &p
		return msg, sbewire.NextMessageOffset(offset, d.EncodedLength()), nil
	default:
		return msg, 0, fmt.Errorf("%w: %d", ErrUnknownTemplate, msg.Header.TemplateID)
	}
}

// DecodeAll decodes back-to-back messages until the buffer is used up.
func DecodeAll(buf sbewire.ReadBuf) ([]Message, error) {
	var out []Message
	for offset := 0; offset < buf.Capacity(); {
		msg, next, err := DecodeMessage(buf, offset)
		if err != nil {
			return out, fmt.Errorf("message at %d: %w", offset, err)
		}
		out = append(out, msg)
		offset = next
	}
	return out, nil
}

// SampleCar is the reference car used by the examples and the CLI.
func SampleCar() CarSnapshot {
	return CarSnapshot{
		SerialNumber:    1234,
		ModelYear:       2013,
		Available:       BooleanTypeT,
		Code:            ModelA,
		SomeNumbers:     [SomeNumbersLength]uint32{1, 2, 3, 4},
		VehicleCode:     "abcdef",
		Extras:          []string{"sportsPack", "cruiseControl"},
		DiscountedModel: ModelC,
		Engine: EngineSnapshot{
			Capacity:         2000,
			NumCylinders:     4,
			MaxRpm:           EngineMaxRpm,
			ManufacturerCode: "123",
			Fuel:             EngineFuel,
			Efficiency:       35,
			BoosterEnabled:   BooleanTypeT,
			BoostType:        BoostTypeNITROUS,
			HorsePower:       200,
		},
		FuelFigures: []FuelFigureSnapshot{
			{Speed: 30, Mpg: 35.9, UsageDescription: "Urban Cycle"},
			{Speed: 55, Mpg: 49.0, UsageDescription: "Combined Cycle"},
			{Speed: 75, Mpg: 40.0, UsageDescription: "Highway Cycle"},
		},
		PerformanceFigures: []PerformanceSnapshot{
			{OctaneRating: 95, Acceleration: []AccelerationSnapshot{
				{Mph: 30, Seconds: 4.0}, {Mph: 60, Seconds: 7.5}, {Mph: 100, Seconds: 12.2},
			}},
			{OctaneRating: 99, Acceleration: []AccelerationSnapshot{
				{Mph: 30, Seconds: 3.8}, {Mph: 60, Seconds: 7.1}, {Mph: 100, Seconds: 11.8},
			}},
		},
		Manufacturer:   "Honda",
		Model:          "Civic VTi",
		ActivationCode: "abcdef",
	}
}

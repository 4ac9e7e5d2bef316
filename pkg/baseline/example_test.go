package baseline_test

import (
	"fmt"

	"github.com/rawbytedev/sbewire"
	"github.com/rawbytedev/sbewire/pkg/baseline"
)

func Example() {
	data := make([]byte, 128)
	buf := sbewire.WriteBufOf(data)

	var car baseline.CarEncoder
	if err := car.WrapAndApplyHeader(buf, 0); err != nil {
		panic(err)
	}
	_ = car.SetSerialNumber(1234)
	_ = car.SetModelYear(2013)
	_ = car.SetCode(baseline.ModelB)

	eng, _ := car.Engine()
	_ = eng.SetCapacity(1800)
	_, _ = eng.Parent()

	ff, _ := car.FuelFiguresCount(1)
	_ = ff.Advance()
	_ = ff.SetSpeed(50)
	_ = ff.SetMpg(42.5)
	_ = ff.PutUsageDescription("Mixed")
	_, _ = ff.Parent()

	pf, _ := car.PerformanceFiguresCount(0)
	_, _ = pf.Parent()
	_ = car.PutManufacturer("Honda")
	_ = car.PutModel("Jazz")
	_ = car.PutActivationCode("")

	var d baseline.CarDecoder
	if err := d.WrapAndReadHeader(buf.ReadBuf(), 0); err != nil {
		panic(err)
	}
	snap, err := baseline.Snapshot(&d)
	if err != nil {
		panic(err)
	}
	fmt.Println(snap.SerialNumber, snap.Code, snap.Engine.Capacity, snap.Engine.Fuel)
	fmt.Println(snap.FuelFigures[0].UsageDescription, snap.Manufacturer, snap.Model)
	fmt.Println(d.EncodedLength() == car.EncodedLength())
	// Output:
	// 1234 B 1800 Petrol
	// Mixed Honda Jazz
	// true
}

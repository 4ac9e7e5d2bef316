package baseline

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rawbytedev/sbewire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPackedMessages(t *testing.T) {
	data := make([]byte, 1024)
	buf := sbewire.WriteBufOf(data)

	car := SampleCar()
	ping := PingSnapshot{Seq: 42, Flags: 0x0101}

	offset, err := car.Encode(buf, 0)
	require.NoError(t, err)
	pingAt := offset
	offset, err = ping.Encode(buf, offset)
	require.NoError(t, err)
	assert.Equal(t, pingAt+sbewire.MessageHeaderLength+int(PingBlockLength), offset)

	second := SampleCar()
	second.SerialNumber = 1235
	second.Manufacturer = "Toyota"
	end, err := second.Encode(buf, offset)
	require.NoError(t, err)

	rbuf, err := sbewire.NewReadBuf(data, end)
	require.NoError(t, err)
	msgs, err := DecodeAll(rbuf)
	require.NoError(t, err)
	require.Len(t, msgs, 3)

	assert.Equal(t, 0, msgs[0].Offset)
	assert.Equal(t, car, *msgs[0].Car)
	assert.Equal(t, pingAt, msgs[1].Offset)
	assert.Equal(t, ping, *msgs[1].Ping)
	assert.Equal(t, PingTemplateID, msgs[1].Header.TemplateID)
	assert.Equal(t, offset, msgs[2].Offset)
	assert.Equal(t, second, *msgs[2].Car)
}

func TestDecodeUnknownTemplate(t *testing.T) {
	data := make([]byte, 16)
	var hdr sbewire.MessageHeaderEncoder
	require.NoError(t, hdr.Wrap(sbewire.WriteBufOf(data), 0))
	require.NoError(t, hdr.Apply(sbewire.MessageHeader{BlockLength: 8, TemplateID: 77, SchemaID: SchemaID}))

	_, _, err := DecodeMessage(sbewire.ReadBufOf(data), 0)
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	msgs, err := DecodeAll(sbewire.ReadBufOf(data))
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Empty(t, msgs)
}

func TestDecodeTruncated(t *testing.T) {
	_, _, err := DecodeMessage(sbewire.ReadBufOf(canonicalCar[:len(canonicalCar)-3]), 0)
	assert.True(t, sbewire.IsBounds(err))
}

func TestSnapshotJSON(t *testing.T) {
	car := SampleCar()
	out, err := json.Marshal(car)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"available":"T"`)
	assert.Contains(t, string(out), `"boostType":"NITROUS"`)
	assert.Contains(t, string(out), `"extras":["sportsPack","cruiseControl"]`)

	var back CarSnapshot
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, car, back)
}

func TestSnapshotYAML(t *testing.T) {
	car := SampleCar()
	out, err := yaml.Marshal(car)
	require.NoError(t, err)
	assert.Contains(t, string(out), "boostType: NITROUS")
	assert.Contains(t, string(out), "usageDescription: Urban Cycle")

	var back CarSnapshot
	require.NoError(t, yaml.NewDecoder(bytes.NewReader(out)).Decode(&back))
	assert.Equal(t, car, back)
}

package rosz

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz/cdr"
)

func TestCodecRoundTrip(t *testing.T) {
	in := &testPoint{Label: "cup", X: 12.5}

	data, err := SerializeMessage("rosz_test/msg/Point", in)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x00}, data[:4])
	assert.Len(t, data, cdr.EncapsulationHeaderSize+in.GetSerializedSize(0))

	out, err := DeserializeMessage("rosz_test::msg::dds_::Point_", data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestCodecErrors(t *testing.T) {
	c := NewCodec()

	_, err := c.Serialize("rosz_test/msg/Point", nil)
	assert.True(t, errors.Is(err, ErrSerializationFailed))

	_, err = c.Serialize("rosz_test/msg/Missing", &testPoint{})
	assert.True(t, errors.Is(err, ErrTypeSupportNotFound))

	_, err = c.Serialize("rosz_test/msg/Point", otherMessage{})
	assert.True(t, errors.Is(err, ErrSerializationFailed))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	_, err = c.Deserialize("rosz_test/msg/Point", nil)
	assert.True(t, errors.Is(err, ErrDeserializationFailed))

	_, err = c.Deserialize("rosz_test/msg/Point", []byte{0x00, 0x01, 0x00, 0x00, 0x09, 0x00})
	assert.True(t, errors.Is(err, ErrDeserializationFailed))
	assert.True(t, errors.Is(err, cdr.ErrNotEnoughData))

	_, err = c.Deserialize("rosz_test/msg/Point", []byte{0x00, 0x0A, 0x00, 0x00})
	assert.True(t, errors.Is(err, cdr.ErrBadEncapsulation))
}

func TestCodecRecoversCallbackPanic(t *testing.T) {
	c := NewCodec()
	_, err := c.Serialize("rosz_test/msg/Point", (*testPoint)(nil))
	assert.True(t, errors.Is(err, ErrSerializationFailed), "got %v", err)
}

func TestCodecCustomRegistry(t *testing.T) {
	r := NewRegistry()
	c := NewCodec(WithRegistry(r), WithIdentifier("custom"))

	_, err := c.Serialize("rosz_test/msg/Point", &testPoint{})
	assert.True(t, errors.Is(err, ErrTypeSupportNotFound))

	ts := newTestPointTypeSupport()
	ts.Identifier = "custom"
	require.NoError(t, r.Register(ts))

	_, err = c.Serialize("rosz_test/msg/Point", &testPoint{})
	assert.NoError(t, err)
}

func TestCodecMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCodecMetrics(reg)
	c := NewCodec(WithMetrics(m))

	data, err := c.Serialize("rosz_test/msg/Point", &testPoint{Label: "a", X: 1})
	require.NoError(t, err)
	_, err = c.Deserialize("rosz_test/msg/Point", data)
	require.NoError(t, err)
	_, err = c.Deserialize("rosz_test/msg/Point", data[:6])
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.messages.WithLabelValues(testPoint_DataType, DirectionSerialize)))
	assert.Equal(t, float64(len(data)), testutil.ToFloat64(m.bytes.WithLabelValues(testPoint_DataType, DirectionDeserialize)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues(testPoint_DataType, DirectionDeserialize)))

	expected := `
# HELP rosz_codec_failures_total Codec calls that returned an error
# TYPE rosz_codec_failures_total counter
rosz_codec_failures_total{direction="deserialize",type="rosz_test::msg::Point"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "rosz_codec_failures_total"))
}

func TestCodecMetricsLabelPerType(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCodecMetrics(reg)
	c := NewCodec(WithMetrics(m))

	for _, name := range []string{"rosz_test::msg::Point", "rosz_test/msg/Point", "rosz_test::msg::dds_::Point_"} {
		_, err := c.Serialize(name, &testPoint{Label: "a"})
		require.NoError(t, err, name)
	}
	for _, name := range []string{"a/msg/A", "b/msg/B", "c/msg/C", "d/msg/D", "e/msg/E"} {
		_, err := c.Deserialize(name, []byte{0x00, 0x01, 0x00, 0x00})
		require.Error(t, err, name)
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.messages))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.messages.WithLabelValues(testPoint_DataType, DirectionSerialize)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.failures))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.failures.WithLabelValues(UnknownTypeLabel, DirectionDeserialize)))
}

func TestNilCodecMetrics(t *testing.T) {
	var m *CodecMetrics
	assert.NotPanics(t, func() { m.observe("x", DirectionSerialize, 1, nil) })
}

func BenchmarkCodecSerialize(b *testing.B) {
	c := NewCodec()
	msg := &testPoint{Label: "person", X: 3.25}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Serialize(testPoint_DataType, msg); err != nil {
			b.Fatal(err)
		}
	}
}

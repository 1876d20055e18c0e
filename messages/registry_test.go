package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aozyumenko/go-mesh/access"
)

func TestNewRegistryCoversFamilies(t *testing.T) {
	r := NewRegistry()

	ops := []access.Opcode{
		GenericOnOffGet, GenericOnOffStatus,
		GenericLevelSet, GenericMoveSetUnacknowledged,
		GenericDTTStatus,
		GenericPowerOnOffSet,
		GenericBatteryStatus,
		LightLightnessSetupRangeSet,
		LightCTLTemperatureStatus,
		LightHSLSaturationSet,
		SensorSettingStatus,
		TimeStatus, TAIUTCDeltaStatus,
		SceneRegisterStatus,
		HealthAttentionSet,
		ConfigCompositionDataStatus,
		Thermostat,
	}
	for _, op := range ops {
		_, ok := r.Schema(op)
		assert.True(t, ok, "no schema for opcode %v", op)
	}
}

func TestGenericOnOffRoundTrip(t *testing.T) {
	r := NewRegistry()

	t.Run("set with transition tail", func(t *testing.T) {
		data, err := r.Encode(GenericOnOffSet, access.Params{
			"onoff":           1,
			"tid":             42,
			"transition_time": 0.5,
			"delay":           0.25,
		})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x82, 0x02, 0x01, 0x2A, 0x05, 0x32}, data)

		msg, err := r.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, "generic_onoff_set", msg.Name)
		assert.True(t, msg.Params.Matches(access.Params{"onoff": 1, "tid": 42}))
		assert.InDelta(t, 0.5, msg.Params["transition_time"], 1e-9)
		assert.InDelta(t, 0.25, msg.Params["delay"], 1e-9)
	})

	t.Run("status without target", func(t *testing.T) {
		msg, err := r.Decode([]byte{0x82, 0x04, 0x01})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), msg.Params["present_onoff"])
		assert.NotContains(t, msg.Params, "target_onoff")
	})

	t.Run("status with target and remaining time", func(t *testing.T) {
		msg, err := r.Decode([]byte{0x82, 0x04, 0x00, 0x01, 0x54})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), msg.Params["present_onoff"])
		assert.Equal(t, uint64(1), msg.Params["target_onoff"])
		assert.InDelta(t, 20, msg.Params["remaining_time"], 1e-9)
	})

	t.Run("bad onoff value", func(t *testing.T) {
		_, err := r.Decode([]byte{0x82, 0x04, 0x02})
		require.ErrorIs(t, err, access.ErrUnknownEnum)
	})
}

func TestGenericLevelRoundTrip(t *testing.T) {
	r := NewRegistry()

	data, err := r.Encode(GenericLevelSet, access.Params{"level": -1, "tid": 0})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x82, 0x06, 0xFF, 0xFF, 0x00}, data)

	msg, err := r.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), msg.Params["level"])

	data, err = r.Encode(GenericDeltaSet, access.Params{"delta_level": -100000, "tid": 1})
	require.NoError(t, err)
	msg, err = r.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, int64(-100000), msg.Params["delta_level"])
}

func TestGenericBatteryStatus(t *testing.T) {
	r := NewRegistry()

	t.Run("known values", func(t *testing.T) {
		// level 100, discharge 0x000102 minutes, charge 0x000304 minutes,
		// flags: serviceability=1, charging=2, indicator=2, presence=1.
		msg, err := r.Decode([]byte{
			0x82, 0x24,
			0x64,
			0x02, 0x01, 0x00,
			0x04, 0x03, 0x00,
			0x69,
		})
		require.NoError(t, err)
		assert.InDelta(t, 100, msg.Params["battery_level"], 1e-9)
		assert.Equal(t, uint64(0x0102), msg.Params["time_to_discharge"])
		assert.Equal(t, uint64(0x0304), msg.Params["time_to_charge"])
		assert.Equal(t, uint64(1), msg.Params["battery_serviceability"])
		assert.Equal(t, uint64(2), msg.Params["battery_charging"])
		assert.Equal(t, uint64(2), msg.Params["battery_indicator"])
		assert.Equal(t, uint64(1), msg.Params["battery_presence"])
	})

	t.Run("unknown sentinels", func(t *testing.T) {
		msg, err := r.Decode([]byte{
			0x82, 0x24,
			0xFF,
			0xFF, 0xFF, 0xFF,
			0xFF, 0xFF, 0xFF,
			0xFF,
		})
		require.NoError(t, err)
		assert.Equal(t, access.Unknown, msg.Params["battery_level"])
		assert.Equal(t, access.Unknown, msg.Params["time_to_discharge"])
		assert.Equal(t, access.Unknown, msg.Params["time_to_charge"])
		assert.Equal(t, uint64(3), msg.Params["battery_presence"])
	})
}

func TestTimeStatusOptionalTail(t *testing.T) {
	r := NewRegistry()

	t.Run("unknown time is the sentinel alone", func(t *testing.T) {
		data, err := r.Encode(TimeStatus, access.Params{"tai_seconds": access.Unknown})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x5D, 0x00, 0x00, 0x00, 0x00, 0x00}, data)

		msg, err := r.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, access.Unknown, msg.Params["tai_seconds"])
		assert.NotContains(t, msg.Params, "subsecond")
	})

	t.Run("full status", func(t *testing.T) {
		data, err := r.Encode(TimeStatus, access.Params{
			"tai_seconds":      uint64(0x0102030405),
			"subsecond":        0.5,
			"uncertainty":      0.1,
			"tai_utc_delta":    37,
			"time_authority":   true,
			"time_zone_offset": 0x44,
		})
		require.NoError(t, err)

		msg, err := r.Decode(data)
		require.NoError(t, err)
		assert.Equal(t, uint64(0x0102030405), msg.Params["tai_seconds"])
		assert.InDelta(t, 0.5, msg.Params["subsecond"], 1e-4)
		assert.InDelta(t, 0.1, msg.Params["uncertainty"], 1e-9)
		assert.Equal(t, uint64(37), msg.Params["tai_utc_delta"])
		assert.Equal(t, true, msg.Params["time_authority"])
		assert.Equal(t, uint64(0x44), msg.Params["time_zone_offset"])
	})
}

func TestSceneRegisterStatus(t *testing.T) {
	r := NewRegistry()

	msg, err := r.Decode([]byte{
		0x82, 0x45,
		0x00,       // success
		0x01, 0x00, // current scene 1
		0x01, 0x00, 0x02, 0x00, 0x03, 0x00, // register
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), msg.Params["status_code"])
	assert.Equal(t, uint64(1), msg.Params["current_scene"])
	assert.Equal(t, []uint64{1, 2, 3}, msg.Params["scenes"])
}

func TestSensorStatusRawTail(t *testing.T) {
	r := NewRegistry()

	msg, err := r.Decode([]byte{0x52, 0xAA, 0xBB, 0xCC})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, msg.Params["marshalled_sensor_data"])
}

func TestConfigRelayRoundTrip(t *testing.T) {
	r := NewRegistry()

	data, err := r.Encode(ConfigRelaySet, access.Params{
		"relay":                     1,
		"retransmit_interval_steps": 5,
		"retransmit_count":          3,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x27, 0x01, 0x2B}, data)

	msg, err := r.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), msg.Params["retransmit_interval_steps"])
	assert.Equal(t, uint64(3), msg.Params["retransmit_count"])
}

func TestThermostatVendorMessages(t *testing.T) {
	r := NewRegistry()

	t.Run("set wire vector", func(t *testing.T) {
		// C0 05 00 | 01 | 00 | 5A 0A: vendor opcode, set sub-opcode,
		// mode=manual, temperature 26.50C.
		msg, err := r.Decode([]byte{0xC0, 0x05, 0x00, 0x01, 0x00, 0x5A, 0x0A})
		require.NoError(t, err)
		assert.Equal(t, Thermostat, msg.Opcode)
		assert.Equal(t, ThermostatSet, msg.Params["subopcode"])

		payload, ok := msg.Params.Nested("payload")
		require.True(t, ok)
		assert.Equal(t, uint64(0), payload["mode"])
		assert.InDelta(t, 26.5, payload["temperature"], 1e-9)
	})

	t.Run("set round trip", func(t *testing.T) {
		data, err := r.Encode(Thermostat, access.Params{
			"subopcode": ThermostatSet,
			"payload":   access.Params{"mode": 0, "temperature": 26.5},
		})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xC0, 0x05, 0x00, 0x01, 0x00, 0x5A, 0x0A}, data)
	})

	t.Run("status", func(t *testing.T) {
		// status_code=good, flags: heater on, mode auto, onoff on, target
		// 21.00C, present 19.50C.
		msg, err := r.Decode([]byte{
			0xC0, 0x05, 0x00,
			0x02,
			0x00,
			0x0B,
			0x34, 0x08,
			0x9E, 0x07,
		})
		require.NoError(t, err)
		payload, ok := msg.Params.Nested("payload")
		require.True(t, ok)
		assert.Equal(t, uint64(0), payload["status_code"])
		assert.Equal(t, true, payload["heater_status"])
		assert.Equal(t, uint64(1), payload["mode"])
		assert.Equal(t, true, payload["onoff_status"])
		assert.InDelta(t, 21.0, payload["target_temperature"], 1e-9)
		assert.InDelta(t, 19.5, payload["present_temperature"], 1e-9)
	})

	t.Run("unknown sub-opcode", func(t *testing.T) {
		_, err := r.Decode([]byte{0xC0, 0x05, 0x00, 0x07})
		require.ErrorIs(t, err, access.ErrUnknownEnum)
	})

	t.Run("get is empty", func(t *testing.T) {
		data, err := r.Encode(Thermostat, access.Params{
			"subopcode": ThermostatGet,
			"payload":   access.Params{},
		})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xC0, 0x05, 0x00, 0x00}, data)
	})
}

func TestUnmodeledOpcodePassthrough(t *testing.T) {
	r := NewRegistry()

	// A vendor opcode nobody registered decodes to a raw envelope and can be
	// re-encoded verbatim.
	msg, err := r.Decode([]byte{0xC1, 0x23, 0x45, 0x01, 0x02})
	require.NoError(t, err)
	assert.False(t, msg.Known())
	assert.Equal(t, []byte{0x01, 0x02}, msg.Raw)

	data, err := r.Encode(msg.Opcode, access.Params{access.RawParams: msg.Raw})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC1, 0x23, 0x45, 0x01, 0x02}, data)
}

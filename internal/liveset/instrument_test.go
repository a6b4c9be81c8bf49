package liveset

import (
	"testing"
)

func trackFixture(t *testing.T, inner string) Track {
	t.Helper()
	root := parseDoc(t, "<AudioTrack>"+inner+"</AudioTrack>")
	return Track{Kind: KindAudio, Name: "Audio 1", Index: 1, Node: root}
}

func TestMainInstrumentDirectDevice(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <OriginalSimpler>
      <FileRef><RelativePath Value="Presets/Bass.adv"/></FileRef>
    </OriginalSimpler>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil {
		t.Fatal("MainInstrument = nil")
	}
	if inst.DeviceType != "OriginalSimpler" {
		t.Errorf("DeviceType = %q", inst.DeviceType)
	}
	if inst.SourcePath != "Presets/Bass.adv" {
		t.Errorf("SourcePath = %q", inst.SourcePath)
	}
	if inst.Preset != "Bass.adv" {
		t.Errorf("Preset = %q, want Bass.adv", inst.Preset)
	}
	if inst.Name != "Bass" {
		t.Errorf("Name = %q, want Bass (basename, extension stripped)", inst.Name)
	}
}

func TestMainInstrumentFirstDeviceWins(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <Operator><PresetName Value="First"/></Operator>
    <OriginalSimpler><PresetName Value="Second"/></OriginalSimpler>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.DeviceType != "Operator" {
		t.Fatalf("instrument = %+v, want first device Operator", inst)
	}
}

func TestMainInstrumentDirectBeatsGroup(t *testing.T) {
	// Direct devices are tried before instrument group wrappers even when
	// the group appears earlier in document order.
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <InstrumentGroupDevice>
      <Devices><Operator><PresetName Value="Inside Rack"/></Operator></Devices>
    </InstrumentGroupDevice>
    <UltraAnalog><PresetName Value="Direct"/></UltraAnalog>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.DeviceType != "UltraAnalog" {
		t.Fatalf("instrument = %+v, want direct UltraAnalog", inst)
	}
}

func TestMainInstrumentGroupWrapper(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <InstrumentGroupDevice>
      <Devices><Operator><PresetName Value="Rack Lead"/></Operator></Devices>
    </InstrumentGroupDevice>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.DeviceType != "Operator" || inst.Preset != "Rack Lead" {
		t.Fatalf("instrument = %+v, want inner Operator", inst)
	}
}

func TestMainInstrumentGroupPointeeIndirection(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <InstrumentGroupDevice>
      <Pointee>
        <Devices><Collision><PresetName Value="Mallets"/></Collision></Devices>
      </Pointee>
    </InstrumentGroupDevice>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.DeviceType != "Collision" {
		t.Fatalf("instrument = %+v, want pointee Collision", inst)
	}
}

func TestMainInstrumentEmptyGroupIsStillADevice(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <InstrumentGroupDevice><UserName Value="My Rack"/></InstrumentGroupDevice>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.DeviceType != "InstrumentGroupDevice" {
		t.Fatalf("instrument = %+v, want the group itself", inst)
	}
	if inst.Name != "My Rack" {
		t.Errorf("Name = %q, want My Rack", inst.Name)
	}
}

func TestMainInstrumentSubtreeFallback(t *testing.T) {
	// No chain/devices wrapper shape at all; the deep scan must still find
	// the group, then a bare device.
	group := trackFixture(t, `
<Oddball><Nested><InstrumentGroupDevice>
  <Devices><Operator><PresetName Value="Buried"/></Operator></Devices>
</InstrumentGroupDevice></Nested></Oddball>`)
	if inst := MainInstrument(group); inst == nil || inst.Preset != "Buried" {
		t.Fatalf("instrument = %+v, want buried Operator", inst)
	}

	bare := trackFixture(t, `<Oddball><PluginDevice><PresetName Value="VST"/></PluginDevice></Oddball>`)
	if inst := MainInstrument(bare); inst == nil || inst.DeviceType != "PluginDevice" {
		t.Fatalf("instrument = %+v, want bare PluginDevice", inst)
	}
}

func TestMainInstrumentNone(t *testing.T) {
	tests := []struct {
		name  string
		inner string
	}{
		{"no chain at all", `<Name><EffectiveName Value="Silent"/></Name>`},
		{"empty chain", `<DeviceChain/>`},
		{"empty devices", `<DeviceChain><Devices/></DeviceChain>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if inst := MainInstrument(trackFixture(t, tt.inner)); inst != nil {
				t.Fatalf("instrument = %+v, want nil", inst)
			}
		})
	}
}

func TestInstrumentPresetFallbackMonotonicity(t *testing.T) {
	// An explicit preset name must win over the last-preset reference and
	// the file path.
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <Operator>
      <PresetName Value="Explicit"/>
      <LastPresetRef><V><FileRef><RelativePath Value="Presets/Old.adv"/></FileRef></V></LastPresetRef>
      <FileRef><RelativePath Value="Presets/Newer.adv"/></FileRef>
    </Operator>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.Preset != "Explicit" {
		t.Fatalf("Preset = %+v, want Explicit", inst)
	}
}

func TestInstrumentLastPresetRef(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <Operator>
      <LastPresetRef><V><FilePresetRef><FileRef><RelativePath Value="Presets/Warm.adv"/></FileRef></FilePresetRef></V></LastPresetRef>
    </Operator>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.Preset != "Warm.adv" {
		t.Fatalf("instrument = %+v, want preset Warm.adv via last preset ref", inst)
	}
	if inst.Name != "Warm" {
		t.Errorf("Name = %q, want Warm", inst.Name)
	}
}

func TestInstrumentUserNameWinsDisplay(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <Operator>
      <UserName Value="Growl Bass"/>
      <FileRef><RelativePath Value="Presets/Bass.adv"/></FileRef>
    </Operator>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil || inst.Name != "Growl Bass" {
		t.Fatalf("Name = %+v, want user-assigned Growl Bass", inst)
	}
}

func TestInstrumentAbsolutePathFallback(t *testing.T) {
	track := trackFixture(t, `
<DeviceChain>
  <Devices>
    <Operator>
      <FileRef><Path Value="C:\Presets\Pluck.adg"/></FileRef>
    </Operator>
  </Devices>
</DeviceChain>`)

	inst := MainInstrument(track)
	if inst == nil {
		t.Fatal("MainInstrument = nil")
	}
	if inst.SourcePath != `C:\Presets\Pluck.adg` {
		t.Errorf("SourcePath = %q", inst.SourcePath)
	}
	if inst.Name != "Pluck" {
		t.Errorf("Name = %q, want Pluck", inst.Name)
	}
}

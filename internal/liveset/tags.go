package liveset

// Element and attribute names from the project document schema. The schema
// itself is unversioned and observed, not published; these names cover every
// revision SoundHaus has seen in the wild.
const (
	TagRoot = "Ableton"

	tagLiveSet     = "LiveSet"
	tagTracks      = "Tracks"
	tagAudioTrack  = "AudioTrack"
	tagMidiTrack   = "MidiTrack"
	tagReturnTrack = "ReturnTrack"

	tagName          = "Name"
	tagEffectiveName = "EffectiveName"
	tagUserName      = "UserName"

	tagDeviceChain           = "DeviceChain"
	tagDevices               = "Devices"
	tagInstrumentGroupDevice = "InstrumentGroupDevice"
	tagPointee               = "Pointee"

	tagFileRef       = "FileRef"
	tagRelativePath  = "RelativePath"
	tagPath          = "Path"
	tagPresetName    = "PresetName"
	tagLastPresetRef = "LastPresetRef"

	attrValue        = "Value"
	attrID           = "Id"
	attrMajorVersion = "MajorVersion"
	attrMinorVersion = "MinorVersion"
	attrCreator      = "Creator"
)

// presetExtensions are the device preset file suffixes stripped when deriving
// a friendly instrument name from a file path.
var presetExtensions = []string{".adv", ".adg", ".alp"}

// instrumentTags lists device element names known to be instruments. Devices
// not in this set are still recognized by the "Device" tag suffix the format
// uses for rack and plugin wrappers.
var instrumentTags = map[string]struct{}{
	"Operator":         {},
	"OriginalSimpler":  {},
	"MultiSampler":     {},
	"InstrumentVector": {},
	"UltraAnalog":      {},
	"StringStudio":     {},
	"Collision":        {},
	"LoungeLizard":     {},
	"InstrumentImpulse": {},
}

package liveset

import (
	"strings"

	"soundhaus/internal/textutil"
	"soundhaus/internal/xmltree"
)

// MainInstrument locates and describes the track's main instrument: the
// first device found on any of the track's device chains, or failing that,
// anywhere in the track subtree. Returns nil when no device exists at all.
func MainInstrument(track Track) *Instrument {
	device := findChainDevice(track.Node)
	if device == nil {
		device = findSubtreeDevice(track.Node)
	}
	if device == nil {
		return nil
	}
	return describeDevice(device)
}

// findChainDevice walks the track's device chain containers in document
// order and returns the first device found. The search stops at the first
// hit; later chains are never consulted.
func findChainDevice(trackNode *xmltree.Node) *xmltree.Node {
	for _, chain := range trackNode.Children(tagDeviceChain) {
		for _, devices := range chain.Children(tagDevices) {
			if device := firstDeviceIn(devices); device != nil {
				return device
			}
		}
	}
	return nil
}

// firstDeviceIn scans a devices container: direct device nodes win, then
// instrument group wrappers, which may hide the real device behind a further
// pointee indirection layer. A group with nothing resolvable inside still
// counts as the device itself.
func firstDeviceIn(devices *xmltree.Node) *xmltree.Node {
	for _, child := range devices.AllChildren() {
		if child.Tag != tagInstrumentGroupDevice {
			return child
		}
	}
	for _, group := range devices.Children(tagInstrumentGroupDevice) {
		if inner := groupInnerDevice(group); inner != nil {
			return inner
		}
		return group
	}
	return nil
}

func groupInnerDevice(group *xmltree.Node) *xmltree.Node {
	for _, devices := range group.Children(tagDevices) {
		if device := firstDeviceIn(devices); device != nil {
			return device
		}
	}
	for _, pointee := range group.Children(tagPointee) {
		for _, devices := range pointee.Children(tagDevices) {
			if device := firstDeviceIn(devices); device != nil {
				return device
			}
		}
		for _, child := range pointee.AllChildren() {
			if isDeviceTag(child.Tag) {
				return child
			}
		}
	}
	return nil
}

// findSubtreeDevice is the unbounded-depth fallback for tracks whose chain
// layout matches none of the known wrapper shapes: first any instrument
// group anywhere in the subtree, then any bare device node.
func findSubtreeDevice(trackNode *xmltree.Node) *xmltree.Node {
	group := trackNode.Find(func(n *xmltree.Node) bool {
		return n.Tag == tagInstrumentGroupDevice
	})
	if group != nil {
		if inner := groupInnerDevice(group); inner != nil {
			return inner
		}
		return group
	}
	return trackNode.Find(func(n *xmltree.Node) bool {
		return n != trackNode && isDeviceTag(n.Tag)
	})
}

func isDeviceTag(tag string) bool {
	if _, ok := instrumentTags[tag]; ok {
		return true
	}
	return strings.HasSuffix(tag, "Device")
}

// devicePresetChain orders the preset identity sources for a located device.
var devicePresetChain = []resolver{
	func(n *xmltree.Node) string { return valueAt(n, tagPresetName) },
	lastPresetRefPath,
	func(n *xmltree.Node) string { return textutil.PathBase(fileRefPath(n)) },
}

// deviceNameChain orders the user-facing name sources on a device node.
var deviceNameChain = []resolver{
	func(n *xmltree.Node) string { return valueAt(n, tagUserName) },
	func(n *xmltree.Node) string { return valueAt(n, tagName, tagEffectiveName) },
	func(n *xmltree.Node) string { return valueAt(n, tagName) },
}

// describeDevice resolves the descriptive fields for a located device node.
// Any single source may be absent; the result only ever degrades, it never
// fails.
func describeDevice(device *xmltree.Node) *Instrument {
	instrument := &Instrument{
		DeviceType: device.Tag,
		SourcePath: fileRefPath(device),
		Preset:     resolveFirst(device, devicePresetChain...),
	}
	instrument.Name = displayName(device, instrument)
	return instrument
}

// displayName picks the friendliest available label: the user-assigned (or
// effective) name, then the source file basename with preset extensions
// stripped, then the preset string itself.
func displayName(device *xmltree.Node, instrument *Instrument) string {
	if name := resolveFirst(device, deviceNameChain...); name != "" {
		return name
	}
	if instrument.SourcePath != "" {
		return textutil.StripExtensions(textutil.PathBase(instrument.SourcePath), presetExtensions...)
	}
	if instrument.Preset != "" {
		return textutil.StripExtensions(textutil.PathBase(instrument.Preset), presetExtensions...)
	}
	return ""
}

// fileRefPath returns the device's file-reference path: the relative path
// when recorded, else the absolute path.
func fileRefPath(device *xmltree.Node) string {
	for _, ref := range device.Children(tagFileRef) {
		if path := valueAt(ref, tagRelativePath); path != "" {
			return path
		}
		if path := valueAt(ref, tagPath); path != "" {
			return path
		}
	}
	return ""
}

// lastPresetRefPath digs a preset path out of the last-preset-reference
// construct some device revisions carry instead of a preset name.
func lastPresetRefPath(device *xmltree.Node) string {
	ref := device.Find(func(n *xmltree.Node) bool {
		return n.Tag == tagLastPresetRef
	})
	if ref == nil {
		return ""
	}
	path := ref.Find(func(n *xmltree.Node) bool {
		if n.Tag != tagRelativePath && n.Tag != tagPath {
			return false
		}
		return strings.TrimSpace(n.Attr(attrValue)) != ""
	})
	return textutil.PathBase(path.Attr(attrValue))
}

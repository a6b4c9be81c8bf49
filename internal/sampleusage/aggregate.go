package sampleusage

import (
	"sort"
	"strings"

	"soundhaus/internal/textutil"
	"soundhaus/internal/xmltree"
)

const (
	tagLiveSet      = "LiveSet"
	tagSamples      = "Samples"
	tagSample       = "Sample"
	tagEvents       = "Events"
	tagAudioClip    = "AudioClip"
	tagSampleRef    = "SampleRef"
	tagFileRef      = "FileRef"
	tagRelativePath = "RelativePath"
	tagName         = "Name"

	attrValue     = "Value"
	attrID        = "Id"
	attrSampleRef = "SampleRef"
)

// rawIdentityCap bounds the serialized fallback identity so unknown clips
// stay distinguishable without ballooning report rows.
const rawIdentityCap = 60

var audioExtensions = []string{".wav", ".aif", ".aiff", ".flac", ".mp3", ".ogg", ".m4a"}

// Record is one sample's aggregated usage.
type Record struct {
	// Identity is the stable key occurrences were tallied under.
	Identity string `json:"identity"`
	// Name is the resolved friendly name; falls back to the identity itself.
	Name string `json:"name"`
	// Count is how many clip occurrences resolved to this identity.
	Count int `json:"count"`
}

// Usage is the aggregated result for one document.
type Usage struct {
	// Total is the number of clip occurrences found under events containers.
	// It always equals the sum of all record counts.
	Total int `json:"total"`
	// Records is sorted by descending count, ties in first-seen order.
	Records []Record `json:"records"`
}

// Aggregate scans every clip nested under any events container, resolves
// each occurrence's identity, and tallies counts. Identity resolution never
// fails; clips matching no known scheme fall back to a truncated raw sketch.
func Aggregate(root *xmltree.Node) Usage {
	names := definitionNames(root)

	counts := make(map[string]int)
	clipNames := make(map[string]string)
	var order []string

	forEachClip(root, func(clip *xmltree.Node) {
		identity := clipIdentity(clip)
		if counts[identity] == 0 {
			order = append(order, identity)
			clipNames[identity] = valueAt(clip, tagName)
		}
		counts[identity]++
	})

	usage := Usage{Records: make([]Record, 0, len(order))}
	for _, identity := range order {
		count := counts[identity]
		usage.Total += count
		usage.Records = append(usage.Records, Record{
			Identity: identity,
			Name:     recordName(identity, names, clipNames[identity]),
			Count:    count,
		})
	}

	sort.SliceStable(usage.Records, func(i, j int) bool {
		return usage.Records[i].Count > usage.Records[j].Count
	})
	return usage
}

// forEachClip visits every clip node that sits anywhere below an events
// container. Nested events containers do not double-count a clip.
func forEachClip(node *xmltree.Node, visit func(*xmltree.Node)) {
	var walk func(n *xmltree.Node, insideEvents bool)
	walk = func(n *xmltree.Node, insideEvents bool) {
		if insideEvents && n.Tag == tagAudioClip {
			visit(n)
		}
		for _, child := range n.AllChildren() {
			walk(child, insideEvents || n.Tag == tagEvents)
		}
	}
	if node != nil {
		walk(node, false)
	}
}

// clipIdentity applies the identity priority chain: relative sample path,
// internal reference id, sample-ref attribute, clip name, raw fallback.
// The first available source wins; the same ordering is used for sample
// definitions so the two passes agree.
func clipIdentity(clip *xmltree.Node) string {
	if path := valueAt(clip, tagSampleRef, tagFileRef, tagRelativePath); path != "" {
		return textutil.PathBase(path)
	}
	if id := strings.TrimSpace(clip.First(tagSampleRef).Attr(attrID)); id != "" {
		return id
	}
	if ref := strings.TrimSpace(clip.Attr(attrSampleRef)); ref != "" {
		return ref
	}
	if name := valueAt(clip, tagName); name != "" {
		return name
	}
	return textutil.Truncate(clip.Summary(), rawIdentityCap)
}

// definitionNames scans the document's sample definition entries and builds
// an identity-to-friendly-name lookup indexed simultaneously by internal
// reference id, sample-ref attribute, name, and path-derived identity.
func definitionNames(root *xmltree.Node) map[string]string {
	names := make(map[string]string)
	for _, container := range root.First(tagLiveSet).Children(tagSamples) {
		for _, entry := range container.AllChildren() {
			if entry.Tag != tagSample && entry.Tag != tagSampleRef {
				continue
			}
			friendly := definitionName(entry)
			if friendly == "" {
				continue
			}
			for _, key := range definitionKeys(entry) {
				if _, taken := names[key]; !taken {
					names[key] = friendly
				}
			}
		}
	}
	return names
}

func definitionKeys(entry *xmltree.Node) []string {
	var keys []string
	if path := definitionPath(entry); path != "" {
		keys = append(keys, textutil.PathBase(path))
	}
	if id := strings.TrimSpace(entry.Attr(attrID)); id != "" {
		keys = append(keys, id)
	}
	if ref := strings.TrimSpace(entry.Attr(attrSampleRef)); ref != "" {
		keys = append(keys, ref)
	}
	if name := valueAt(entry, tagName); name != "" {
		keys = append(keys, name)
	}
	return keys
}

func definitionPath(entry *xmltree.Node) string {
	if path := valueAt(entry, tagFileRef, tagRelativePath); path != "" {
		return path
	}
	return valueAt(entry, tagRelativePath)
}

func definitionName(entry *xmltree.Node) string {
	if name := valueAt(entry, tagName); name != "" {
		return name
	}
	if path := definitionPath(entry); path != "" {
		return textutil.StripExtensions(textutil.PathBase(path), audioExtensions...)
	}
	return ""
}

func recordName(identity string, names map[string]string, clipName string) string {
	if name, ok := names[identity]; ok {
		return name
	}
	if clipName != "" {
		return clipName
	}
	return identity
}

func valueAt(node *xmltree.Node, tags ...string) string {
	current := node
	for _, tag := range tags {
		current = current.First(tag)
	}
	return strings.TrimSpace(current.Attr(attrValue))
}

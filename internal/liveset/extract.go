package liveset

import (
	"fmt"
	"strings"

	"soundhaus/internal/xmltree"
)

// resolver produces a candidate value from a node, or "" when its source is
// absent. Fallback chains are ordered resolver slices tried until one yields
// a non-empty trimmed value, which keeps the heuristics declarative and
// independently testable.
type resolver func(*xmltree.Node) string

func resolveFirst(node *xmltree.Node, chain ...resolver) string {
	for _, resolve := range chain {
		if value := strings.TrimSpace(resolve(node)); value != "" {
			return value
		}
	}
	return ""
}

// valueAt follows First() through tags and returns the terminal node's Value
// attribute. Any missing hop yields "".
func valueAt(node *xmltree.Node, tags ...string) string {
	current := node
	for _, tag := range tags {
		current = current.First(tag)
	}
	return strings.TrimSpace(current.Attr(attrValue))
}

// Extract builds the entity model from a normalized document tree.
func Extract(root *xmltree.Node) (*Set, error) {
	if root == nil {
		return nil, xmltree.ErrMissingRoot
	}
	if root.Tag != TagRoot {
		return nil, fmt.Errorf("%w: expected <%s>, found <%s>", xmltree.ErrMissingRoot, TagRoot, root.Tag)
	}

	set := &Set{Info: extractInfo(root)}

	container := root.First(tagLiveSet).First(tagTracks)
	if container == nil {
		return nil, fmt.Errorf("%w: no <%s>/<%s> container under root", xmltree.ErrMalformed, tagLiveSet, tagTracks)
	}

	counts := map[TrackKind]int{}
	for _, node := range container.AllChildren() {
		var kind TrackKind
		switch node.Tag {
		case tagAudioTrack:
			kind = KindAudio
		case tagMidiTrack:
			kind = KindMidi
		case tagReturnTrack:
			set.ReturnTrackCount++
			continue
		default:
			continue
		}

		counts[kind]++
		index := counts[kind]
		set.Tracks = append(set.Tracks, Track{
			Kind:  kind,
			ID:    strings.TrimSpace(node.Attr(attrID)),
			Name:  resolveTrackName(node, kind, index),
			Index: index,
			Node:  node,
		})
	}

	return set, nil
}

func extractInfo(root *xmltree.Node) Info {
	return Info{
		MajorVersion: strings.TrimSpace(root.Attr(attrMajorVersion)),
		MinorVersion: strings.TrimSpace(root.Attr(attrMinorVersion)),
		Creator:      strings.TrimSpace(root.Attr(attrCreator)),
	}
}

// trackNameChain orders the name sources: the effective name wins, the
// user-assigned plain name is next, and the positional default is appended
// by resolveTrackName. Present-but-blank values fall through.
var trackNameChain = []resolver{
	func(n *xmltree.Node) string { return valueAt(n, tagName, tagEffectiveName) },
	func(n *xmltree.Node) string { return valueAt(n, tagName, tagUserName) },
}

func resolveTrackName(node *xmltree.Node, kind TrackKind, index int) string {
	if name := resolveFirst(node, trackNameChain...); name != "" {
		return name
	}
	return kind.DefaultName(index)
}

// TrackPresetName deep-scans a track subtree for any explicit preset-name
// value. Used by the comparator as a secondary label source when the main
// instrument resolution came up empty.
func TrackPresetName(node *xmltree.Node) string {
	found := node.Find(func(n *xmltree.Node) bool {
		return n.Tag == tagPresetName && strings.TrimSpace(n.Attr(attrValue)) != ""
	})
	return strings.TrimSpace(found.Attr(attrValue))
}

// TrackSourcePath deep-scans a track subtree for any file-reference path
// value, the last label source before giving up on instrument evidence.
func TrackSourcePath(node *xmltree.Node) string {
	found := node.Find(func(n *xmltree.Node) bool {
		if n.Tag != tagRelativePath && n.Tag != tagPath {
			return false
		}
		return strings.TrimSpace(n.Attr(attrValue)) != ""
	})
	return strings.TrimSpace(found.Attr(attrValue))
}

package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformed marks XML text that could not be parsed.
	ErrMalformed = errors.New("malformed document")

	// ErrMissingRoot marks documents with no root element at all.
	ErrMissingRoot = errors.New("document root missing")

	// ErrDepthLimit marks documents nested deeper than the configured bound.
	ErrDepthLimit = errors.New("tree depth limit exceeded")
)

// Parse builds a normalized tree from UTF-8 XML text. maxDepth bounds element
// nesting; zero or negative means unlimited.
func Parse(data []byte, maxDepth int) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var stack []*Node
	var root *Node
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %v", ErrMalformed, decoder.InputOffset(), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("%w: offset %d: element %s after document end", ErrMalformed, decoder.InputOffset(), t.Name.Local)
			}
			if maxDepth > 0 && len(stack) >= maxDepth {
				return nil, fmt.Errorf("%w: element %s exceeds depth %d", ErrDepthLimit, t.Name.Local, maxDepth)
			}
			node := newNode(t.Name.Local, convertAttrs(t.Attr))
			if len(stack) > 0 {
				stack[len(stack)-1].appendChild(node)
			} else {
				root = node
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrMissingRoot
	}

	return root, nil
}

func convertAttrs(attrs []xml.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	converted := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		converted[attr.Name.Local] = attr.Value
	}
	return converted
}

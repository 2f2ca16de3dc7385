// Package xmlio adapts domxml.Node to encoding/xml: Parse builds a tree by
// walking decoder tokens (the streaming style used elsewhere in the corpus
// for SVG ingestion), and Write re-emits a tree with the escaping and
// attribute-order rules in §4.10.
package xmlio

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/vectorflat/svgflatten/domxml"
)

// Parse decodes r into a domxml tree rooted at the document's single root
// element (typically <svg>). Namespaced attribute and element names are
// preserved verbatim as "prefix:local" (§6).
func Parse(r io.Reader) (*domxml.Node, error) {
	dec := xml.NewDecoder(r)
	var root *domxml.Node
	var stack []*domxml.Node

	// encoding/xml resolves a declared "xmlns:prefix" into the attribute's
	// URI, discarding the literal prefix text. Vendor namespaces (inkscape,
	// sodipodi, figma, adobe) must round-trip verbatim (§6), so this table
	// maps each URI back to the prefix it was declared under.
	uriToPrefix := map[string]string{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domxml.ErrMalformedDocument
		}

		switch t := tok.(type) {
		case xml.StartElement:
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					uriToPrefix[a.Value] = a.Name.Local
				} else if a.Name.Space == "" && a.Name.Local == "xmlns" {
					// Default "xmlns=..." declaration: every unprefixed
					// descendant element resolves to this URI, and must
					// map back to the bare local name, not a prefix.
					uriToPrefix[a.Value] = ""
				}
			}
			n := domxml.NewNode(qualifiedName(t.Name, uriToPrefix))
			for _, a := range t.Attr {
				n.SetAttr(qualifiedAttrName(a.Name, uriToPrefix), a.Value)
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(n)
			} else {
				root = n
			}
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				text := strings.TrimSpace(string(t))
				if text != "" {
					stack[len(stack)-1].Text += text
				}
			}
		}
	}

	if root == nil {
		return nil, domxml.ErrMalformedDocument
	}
	return root, nil
}

// qualifiedName reconstructs "prefix:local" for an element name.
func qualifiedName(name xml.Name, uriToPrefix map[string]string) string {
	if name.Space == "" {
		return name.Local
	}
	if prefix, ok := uriToPrefix[name.Space]; ok {
		if prefix == "" {
			return name.Local
		}
		return prefix + ":" + name.Local
	}
	return name.Space + ":" + name.Local
}

// qualifiedAttrName reconstructs "prefix:local" for an attribute name,
// preserving bare "xmlns" and "xmlns:prefix" declarations as-is.
func qualifiedAttrName(name xml.Name, uriToPrefix map[string]string) string {
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	if name.Space == "" && name.Local == "xmlns" {
		return "xmlns"
	}
	return qualifiedName(name, uriToPrefix)
}

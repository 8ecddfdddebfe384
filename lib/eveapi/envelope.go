package eveapi

import (
	"fmt"
	"strings"

	"evexml/lib/xmltree"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// supportedVersion is the only eveapi schema version whose field
// layouts this package understands.
const supportedVersion = "2"

// envelope is the outer document shared by every feed: a version
// marker, request and expiry times, and either a result payload or an
// error element. Exactly one of result/dom is set depending on the
// endpoint's decoder.
type envelope struct {
	version     string
	currentTime string
	cachedUntil string
	fault       *APIError
	result      *xmltree.Node
	dom         *etree.Element
}

func (e *envelope) meta() Meta {
	return Meta{CurrentTime: e.currentTime, CachedUntil: e.cachedUntil}
}

// rowset returns the named top level rowset of the result, or nil.
func (e *envelope) rowset(name string) *xmltree.Node {
	if e.result == nil {
		return nil
	}
	return e.result.Map("rowset")[name]
}

// gate enforces the version marker and surfaces the upstream error
// element before any normalizer runs.
func (e *envelope) gate() error {
	if e.version != "" && e.version != supportedVersion {
		return &SchemaError{Reason: fmt.Sprintf("unsupported api version %q", e.version)}
	}
	if e.fault != nil {
		return e.fault
	}
	if e.result == nil && e.dom == nil {
		return &SchemaError{Reason: "document has no result element"}
	}
	return nil
}

// decoder turns a feed's raw bytes into an envelope. Which
// implementation an endpoint uses is static configuration, see
// endpoint.go.
type decoder interface {
	decode(data []byte) (*envelope, error)
}

// foldDecoder runs the attribute folding parser with the feed's key
// attribute priority list.
type foldDecoder struct {
	opts xmltree.Options
}

// fold builds the decoder used by almost every feed. Row groups re-key
// by the first of keyAttrs present on them, rowset groups by their
// name attribute. The name attribute is deliberately last so rows
// that also carry one still key by their id.
func fold(keyAttrs ...string) foldDecoder {
	return foldDecoder{opts: xmltree.Options{
		ListTags: []string{"rowset", "row"},
		KeyAttrs: append(keyAttrs, "name"),
	}}
}

func (d foldDecoder) decode(data []byte) (*envelope, error) {
	doc, err := xmltree.Parse(data, d.opts)
	if err != nil {
		return nil, err
	}
	root := doc.Root
	if root.Tag != "eveapi" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	env := &envelope{
		version:     root.Attr("version"),
		currentTime: root.ChildText("currentTime"),
		cachedUntil: root.ChildText("cachedUntil"),
		result:      root.Child("result"),
	}
	if fault := root.Child("error"); fault != nil {
		env.fault = &APIError{Code: fault.Attr("code"), Message: fault.Text}
	}
	return env, nil
}

// domDecoder keeps the raw element tree. Used by the one feed whose
// nested row groups reuse key attributes across levels, which defeats
// global re-keying.
type domDecoder struct{}

func (domDecoder) decode(data []byte) (*envelope, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("decode xml: document has no root element")
	}
	if root.Tag != "eveapi" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	env := &envelope{
		version:     root.SelectAttrValue("version", ""),
		currentTime: elementText(root, "currentTime"),
		cachedUntil: elementText(root, "cachedUntil"),
		dom:         root.SelectElement("result"),
	}
	if fault := root.SelectElement("error"); fault != nil {
		env.fault = &APIError{
			Code:    fault.SelectAttrValue("code", ""),
			Message: strings.TrimSpace(fault.Text()),
		}
	}
	return env, nil
}

func elementText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

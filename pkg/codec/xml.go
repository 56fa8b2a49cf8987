package codec

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/beevik/etree"
)

// XML stores each pair as <entry key="...">value</entry> under a <store> root.
// Only string values are supported.
var XML Codec = xmlCodec{}

const (
	xmlRoot  = "store"
	xmlEntry = "entry"
	xmlKey   = "key"
)

type xmlCodec struct{}

func (xmlCodec) Name() string         { return "xml" }
func (xmlCodec) Extensions() []string { return []string{".xml"} }

func (xmlCodec) Marshal(v any) ([]byte, error) {
	var m map[string]string
	switch t := v.(type) {
	case map[string]string:
		m = t
	case *map[string]string:
		if t != nil {
			m = *t
		}
	default:
		return nil, errors.Newf(errors.ErrCodecUnsupported, "xml codec cannot encode %T", v)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := etree.NewDocument()
	// \r must be written as &#xD; or parsers fold it into \n.
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(xmlRoot)
	for _, k := range keys {
		if err := checkXMLChars(k); err != nil {
			return nil, err.WithDetail("key", k)
		}
		if err := checkXMLChars(m[k]); err != nil {
			return nil, err.WithDetail("key", k)
		}
		entry := root.CreateElement(xmlEntry)
		entry.CreateAttr(xmlKey, k)
		entry.SetText(m[k])
	}
	// Left unindented: Indent drops whitespace-only values.
	return doc.WriteToBytes()
}

func (xmlCodec) Unmarshal(data []byte, v any) error {
	out, ok := v.(*map[string]string)
	if !ok || out == nil {
		return errors.Newf(errors.ErrCodecUnsupported, "xml codec cannot decode into %T", v)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return err
	}
	root := doc.Root()
	if root == nil || root.Tag != xmlRoot {
		return fmt.Errorf("xml: expected <%s> root element", xmlRoot)
	}

	m := make(map[string]string)
	for _, entry := range root.SelectElements(xmlEntry) {
		attr := entry.SelectAttr(xmlKey)
		if attr == nil {
			return fmt.Errorf("xml: <%s> without %q attribute", xmlEntry, xmlKey)
		}
		m[attr.Value] = entry.Text()
	}
	*out = m
	return nil
}

// checkXMLChars rejects text XML 1.0 cannot carry, even as a character
// reference: invalid UTF-8 and characters outside the Char production.
func checkXMLChars(s string) *errors.DokvError {
	if !utf8.ValidString(s) {
		return errors.Newf(errors.ErrCodecUnsupported, "xml codec cannot encode invalid UTF-8 in %q", s)
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return errors.Newf(errors.ErrCodecUnsupported, "xml codec cannot encode character %U in %q", r, s)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

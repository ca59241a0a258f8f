package drummap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"

	"golang.org/x/net/html/charset"
)

// xmlDocument mirrors the .drm markup: a DrumMap root element holding
// named <string> fields and named <list> fields of <item> elements.
type xmlDocument struct {
	XMLName xml.Name  `xml:"DrumMap"`
	Strings []xmlAttr `xml:"string"`
	Lists   []xmlList `xml:"list"`
}

type xmlAttr struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlList struct {
	Name  string    `xml:"name,attr"`
	Items []xmlItem `xml:"item"`
}

type xmlItem struct {
	Value   string    `xml:"value,attr"`
	Strings []xmlAttr `xml:"string"`
	Ints    []xmlAttr `xml:"int"`
}

func (d *xmlDocument) stringField(name string) string {
	for _, s := range d.Strings {
		if s.Name == name {
			return s.Value
		}
	}
	return ""
}

func (d *xmlDocument) list(name string) []xmlItem {
	for _, l := range d.Lists {
		if l.Name == name {
			return l.Items
		}
	}
	return nil
}

func attrValue(attrs []xmlAttr, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// ParseFile reads a .drm file and returns the extracted DrumMap
func ParseFile(filename string) (*DrumMap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read drum map file: %w", err)
	}
	return Parse(data)
}

// Parse extracts the map name, the note entries and the optional explicit
// order list from .drm data. Items with a missing or empty Name or INote
// are skipped; a missing header or Order list is not an error. Note
// identifiers are kept as strings exactly as they appear in the source.
func Parse(data []byte) (*DrumMap, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse drum map: %w", err)
	}

	m := &DrumMap{Name: doc.stringField("Name")}

	for _, item := range doc.list("Map") {
		name := attrValue(item.Strings, "Name")
		note := attrValue(item.Ints, "INote")
		if name == "" || note == "" {
			continue
		}
		m.Entries = append(m.Entries, NoteEntry{Note: note, Name: name})
	}

	for _, item := range doc.list("Order") {
		m.Order = append(m.Order, item.Value)
	}

	return m, nil
}

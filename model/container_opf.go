package model

import "encoding/xml"

// DublinCoreMetadata is the <metadata> block of content.opf.
type DublinCoreMetadata struct {
	XMLName  xml.Name `xml:"metadata"`
	XmlnsDC  string   `xml:"xmlns:dc,attr,omitempty"`
	XmlnsOPF string   `xml:"xmlns:opf,attr,omitempty"`

	Titles      []DCTitle      `xml:"dc:title"`
	Identifiers []DCIdentifier `xml:"dc:identifier"`
	Languages   []DCLanguage   `xml:"dc:language"`

	Creators     []DCCreator     `xml:"dc:creator"`
	Descriptions []DCDescription `xml:"dc:description"`
	Publishers   []DCPublisher   `xml:"dc:publisher"`
	Subjects     []DCSubject     `xml:"dc:subject"`

	// EPUB3 <meta> extensions.
	Metas []DublinCoreMeta `xml:"meta"`
}

func (d *DublinCoreMetadata) Marshal() (string, error) {
	xmlBytes, err := xml.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(xmlBytes), nil
}

type DCTitle struct {
	Value string `xml:",chardata"`
	ID    string `xml:"id,attr,omitempty"`
	Lang  string `xml:"xml:lang,attr,omitempty"`
}

type DCIdentifier struct {
	Value  string `xml:",chardata"`
	ID     string `xml:"id,attr,omitempty"`
	Scheme string `xml:"opf:scheme,attr,omitempty"`
}

type DCLanguage struct {
	Value string `xml:",chardata"`
}

type DCCreator struct {
	Value  string `xml:",chardata"`
	ID     string `xml:"id,attr,omitempty"`
	Role   string `xml:"opf:role,attr,omitempty"`
	FileAs string `xml:"opf:file-as,attr,omitempty"`
	Lang   string `xml:"xml:lang,attr,omitempty"`
}

type DCDescription struct {
	Value string `xml:",chardata"`
	Lang  string `xml:"xml:lang,attr,omitempty"`
}

type DCPublisher struct {
	Value string `xml:",chardata"`
	Lang  string `xml:"xml:lang,attr,omitempty"`
}

type DCSubject struct {
	Value string `xml:",chardata"`
	Lang  string `xml:"xml:lang,attr,omitempty"`
}

type DublinCoreMeta struct {
	Name     string `xml:"name,attr,omitempty"`
	Content  string `xml:"content,attr,omitempty"`
	Value    string `xml:",chardata"`
	Property string `xml:"property,attr,omitempty"`
}

type Manifest struct {
	XMLName xml.Name       `xml:"manifest"`
	Items   []ManifestItem `xml:"item"`
}

func (m *Manifest) Marshal() (string, error) {
	xmlBytes, err := xml.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(xmlBytes), nil
}

type ManifestItem struct {
	ID         string `xml:"id,attr"`
	Link       string `xml:"href,attr"`
	Media      string `xml:"media-type,attr,omitempty"`
	Properties string `xml:"properties,attr,omitempty"`
}

type Spine struct {
	XMLName xml.Name    `xml:"spine"`
	Toc     string      `xml:"toc,attr,omitempty"`
	Items   []SpineItem `xml:"itemref"`
}

func (s *Spine) Marshal() (string, error) {
	xmlBytes, err := xml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(xmlBytes), nil
}

type SpineItem struct {
	IDref string `xml:"idref,attr"`
}

type Guide struct {
	XMLName xml.Name    `xml:"guide"`
	Items   []GuideItem `xml:"reference"`
}

func (g *Guide) Marshal() (string, error) {
	xmlBytes, err := xml.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(xmlBytes), nil
}

type GuideItem struct {
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
	Link  string `xml:"href,attr"`
}

package report

import (
	"encoding/xml"
	"fmt"
)

// XML is the reporter for CI tools that consume xml.
type XML struct{}

func (XML) Format() string { return "xml" }

type xmlReport struct {
	XMLName xml.Name  `xml:"report"`
	Files   xmlFiles  `xml:"files"`
	Errors  *xmlFiles `xml:"errors,omitempty"`
	Cached  *xmlFiles `xml:"cached,omitempty"`
	Time    xmlTime   `xml:"time"`
	Memory  xmlValue  `xml:"memory"`
}

type xmlFiles struct {
	File []xmlFile `xml:"file"`
}

type xmlFile struct {
	ID            int         `xml:"id,attr"`
	Name          string      `xml:"name,attr"`
	Error         string      `xml:"error,attr,omitempty"`
	AppliedFixers *xmlApplied `xml:"applied_fixers,omitempty"`
	Diff          *xmlCDATA   `xml:"diff,omitempty"`
}

type xmlApplied struct {
	Fixer []xmlNamed `xml:"applied_fixer"`
}

type xmlNamed struct {
	Name string `xml:"name,attr"`
}

type xmlCDATA struct {
	Text string `xml:",cdata"`
}

type xmlTime struct {
	Unit  string   `xml:"unit,attr"`
	Total xmlValue `xml:"total"`
}

type xmlValue struct {
	Value string `xml:"value,attr"`
	Unit  string `xml:"unit,attr,omitempty"`
}

func (XML) Generate(s Summary) (string, error) {
	out := xmlReport{
		Time:   xmlTime{Unit: "s", Total: xmlValue{Value: number(s.Duration.Seconds())}},
		Memory: xmlValue{Value: number(s.MemoryMB), Unit: "MB"},
	}
	for i, res := range s.Changed {
		f := xmlFile{ID: i + 1, Name: res.Name}
		if s.ShowAppliedFixers {
			f.AppliedFixers = &xmlApplied{}
			for _, name := range res.Applied {
				f.AppliedFixers.Fixer = append(f.AppliedFixers.Fixer, xmlNamed{Name: name})
			}
		}
		if s.ShowDiff {
			f.Diff = &xmlCDATA{Text: res.Diff}
		}
		out.Files.File = append(out.Files.File, f)
	}
	if len(s.Errors) > 0 {
		out.Errors = &xmlFiles{}
		for i, res := range s.Errors {
			out.Errors.File = append(out.Errors.File, xmlFile{ID: i + 1, Name: res.Name, Error: fmt.Sprint(res.Err)})
		}
	}
	if len(s.Cached) > 0 {
		out.Cached = &xmlFiles{}
		for i, res := range s.Cached {
			out.Cached.File = append(out.Cached.File, xmlFile{ID: i + 1, Name: res.Name})
		}
	}
	data, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: xml: %w", err)
	}
	return xml.Header + string(data) + "\n", nil
}

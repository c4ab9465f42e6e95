package report

import (
	"encoding/json"
	"fmt"
)

// JSON is the machine-readable reporter.
type JSON struct{}

func (JSON) Format() string { return "json" }

type jsonFile struct {
	Name          string   `json:"name"`
	AppliedFixers []string `json:"appliedFixers,omitempty"`
	Diff          *string  `json:"diff,omitempty"`
}

type jsonError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type jsonTime struct {
	Total json.Number `json:"total"`
}

type jsonReport struct {
	Files  []jsonFile  `json:"files"`
	Errors []jsonError `json:"errors,omitempty"`
	Cached []string    `json:"cached,omitempty"`
	Memory json.Number `json:"memory"`
	Time   jsonTime    `json:"time"`
}

func (JSON) Generate(s Summary) (string, error) {
	out := jsonReport{
		Files:  make([]jsonFile, 0, len(s.Changed)),
		Memory: json.Number(number(s.MemoryMB)),
		Time:   jsonTime{Total: json.Number(number(s.Duration.Seconds()))},
	}
	for _, res := range s.Changed {
		f := jsonFile{Name: res.Name}
		if s.ShowAppliedFixers {
			f.AppliedFixers = append([]string{}, res.Applied...)
		}
		if s.ShowDiff {
			diff := res.Diff
			f.Diff = &diff
		}
		out.Files = append(out.Files, f)
	}
	for _, res := range s.Errors {
		out.Errors = append(out.Errors, jsonError{Name: res.Name, Error: fmt.Sprint(res.Err)})
	}
	for _, res := range s.Cached {
		out.Cached = append(out.Cached, res.Name)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("report: json: %w", err)
	}
	return string(data), nil
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretchord/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return errors.Errorf("unknown format %q, want text, json or yaml", format)
}

// encode writes v as JSON or YAML. Text output is left to the caller.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	return checkFormat(format)
}

func printRecognition(w io.Writer, format string, res model.RecognitionResponse) error {
	if format != formatText {
		return encode(w, format, res)
	}

	fmt.Fprintf(w, "Notes: %s\n", strings.Join(res.UniqueNotes, " "))
	if len(res.RecognizedChords) == 0 {
		fmt.Fprintln(w, "No chords recognized")
		return nil
	}
	for _, c := range res.RecognizedChords {
		exact := ""
		if c.IsExactMatch {
			exact = "  exact"
		}
		fmt.Fprintf(w, "%-8s %-16s %3d%%  %d/%d  %s%s\n",
			c.Name, c.Type, c.Confidence, c.MatchingNotes, c.TotalNotes, strings.Join(c.Notes, "-"), exact)
	}
	return nil
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// runDocument mirrors [Run] for YAML decoding. Duration-typed fields use the
// [Duration] wrapper so values like "30s" parse from strings; everything
// else shares the canonical structs via their yaml tags.
type runDocument struct {
	Name        string      `yaml:"name"`
	Source      Source      `yaml:"source"`
	Destination Destination `yaml:"destination"`
	Pipeline    struct {
		RequestTimeout  Duration `yaml:"request_timeout"`
		RetryAttempts   int      `yaml:"retry_attempts"`
		PushConcurrency int      `yaml:"push_concurrency"`
		ReportFile      string   `yaml:"report_file"`
		ErrorsFile      string   `yaml:"errors_file"`
	} `yaml:"pipeline"`
}

// parseRunFile reads a multi-document YAML run file and returns one [Run]
// per document. Before decoding, ${VAR} references are substituted from the
// process environment; unknown variables are left as-is so secrets missing
// from the environment fail validation visibly instead of becoming empty
// strings.
func parseRunFile(path string) ([]Run, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading run file: %w", err)
	}

	expanded := expandEnv(string(raw))

	var runs []Run
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	for {
		var doc runDocument
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error decoding run file: %w", err)
		}

		runs = append(runs, Run{
			Name:        doc.Name,
			Source:      doc.Source,
			Destination: doc.Destination,
			Pipeline: Pipeline{
				RequestTimeout:  time.Duration(doc.Pipeline.RequestTimeout),
				RetryAttempts:   doc.Pipeline.RetryAttempts,
				PushConcurrency: doc.Pipeline.PushConcurrency,
				ReportFile:      doc.Pipeline.ReportFile,
				ErrorsFile:      doc.Pipeline.ErrorsFile,
			},
		})
	}

	if len(runs) == 0 {
		return nil, fmt.Errorf("run file %s contains no documents", path)
	}

	return runs, nil
}

// expandEnv substitutes $VAR and ${VAR} from the environment, keeping the
// reference text for variables that are not set.
func expandEnv(s string) string {
	return os.Expand(s, func(name string) string {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return "${" + name + "}"
	})
}

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond integers.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var v any
	if err := value.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case int:
		*d = Duration(time.Duration(value))
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("cannot parse %v as duration", v)
	}
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

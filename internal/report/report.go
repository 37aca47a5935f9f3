// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders run reports to disk: a YAML result file with one
// document per run, and a CSV file listing every failed resource.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dashmover/dashmover/models"
	"gopkg.in/yaml.v3"
)

// runDocument is the YAML document written per run.
type runDocument struct {
	Run    string         `yaml:"run"`
	Report *models.Report `yaml:"report"`
}

// Cleanup removes previous report artifacts so a fresh invocation never
// mixes documents from different invocations. Missing files are not an
// error.
func Cleanup(paths ...string) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}

// WriteRunReport appends the report for the named run to path as a separate
// YAML document. Multiple runs of one invocation accumulate in the same
// file.
func WriteRunReport(path, run string, report *models.Report) error {
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open report file: %w", err)
	}
	defer f.Close()

	if _, err = f.WriteString("---\n"); err != nil {
		return fmt.Errorf("write report file: %w", err)
	}

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err = enc.Encode(runDocument{Run: run, Report: report}); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// errorsHeader is the first row of the errors CSV file.
var errorsHeader = []string{"run", "kind", "uid", "title", "status", "reason"}

// AppendErrors appends one CSV row per failed resource. The header row is
// written only when the file is empty. A report without failures appends
// nothing.
func AppendErrors(path, run string, report *models.Report) error {
	if path == "" || !report.HasFailures() {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open errors file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat errors file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err = w.Write(errorsHeader); err != nil {
			return fmt.Errorf("write errors header: %w", err)
		}
	}

	for _, res := range report.Failed {
		row := []string{run, string(res.Kind), res.UID, res.Title, string(res.Status), res.Reason}
		if err = w.Write(row); err != nil {
			return fmt.Errorf("write errors row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// Summary returns a one-line human summary of the report, suitable for a
// final log record.
func Summary(report *models.Report) string {
	return "pushed=" + strconv.Itoa(len(report.Pushed)) +
		" dropped=" + strconv.Itoa(len(report.Dropped)) +
		" failed=" + strconv.Itoa(len(report.Failed)) +
		" unmatched=" + strconv.Itoa(len(report.UnmatchedFilter)) +
		" duration=" + time.Duration(report.Duration).Round(time.Millisecond).String()
}

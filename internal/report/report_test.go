// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dashmover/dashmover/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testReport() *models.Report {
	return &models.Report{
		Pushed: []models.ResourceResult{
			{Kind: models.KindFolder, UID: "f1", Title: "Ops", Status: models.StatusPushed},
			{Kind: models.KindDashboard, UID: "d1", Title: "CPU", Status: models.StatusPushed},
		},
		Failed: []models.ResourceResult{
			{Kind: models.KindDashboard, UID: "d2", Title: "Mem", Status: models.StatusFailed, Reason: "push: boom"},
		},
		UnmatchedFilter: []string{"ghost"},
		Duration:        models.Duration(1500 * time.Millisecond),
	}
}

// ── WriteRunReport ───────────────────────────────────────────────────────────

func TestWriteRunReport_AccumulatesOneDocumentPerRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result_report.yml")

	require.NoError(t, WriteRunReport(path, "prod-to-staging", testReport()))
	require.NoError(t, WriteRunReport(path, "prod-to-dr", testReport()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := yaml.NewDecoder(f)
	var runs []string
	for {
		var doc struct {
			Run    string         `yaml:"run"`
			Report *models.Report `yaml:"report"`
		}
		err = dec.Decode(&doc)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.NotNil(t, doc.Report)
		assert.Len(t, doc.Report.Pushed, 2)
		assert.Equal(t, []string{"ghost"}, doc.Report.UnmatchedFilter)
		runs = append(runs, doc.Run)
	}

	assert.Equal(t, []string{"prod-to-staging", "prod-to-dr"}, runs)
}

func TestWriteRunReport_DurationIsHumanReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result_report.yml")
	require.NoError(t, WriteRunReport(path, "run", testReport()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "duration: 1.5s")

	var doc struct {
		Report *models.Report `yaml:"report"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	assert.Equal(t, models.Duration(1500*time.Millisecond), doc.Report.Duration)
}

func TestWriteRunReport_EmptyPathIsNoop(t *testing.T) {
	require.NoError(t, WriteRunReport("", "run", testReport()))
}

// ── AppendErrors ─────────────────────────────────────────────────────────────

func TestAppendErrors_WritesHeaderOnceAndRowsPerFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")

	require.NoError(t, AppendErrors(path, "run-1", testReport()))
	require.NoError(t, AppendErrors(path, "run-2", testReport()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + one failure per run

	assert.Equal(t, errorsHeader, rows[0])
	assert.Equal(t, []string{"run-1", "dashboard", "d2", "Mem", "failed", "push: boom"}, rows[1])
	assert.Equal(t, "run-2", rows[2][0])
}

func TestAppendErrors_NoFailuresWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")

	require.NoError(t, AppendErrors(path, "run", &models.Report{}))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// ── Cleanup ──────────────────────────────────────────────────────────────────

func TestCleanup_RemovesExistingAndIgnoresMissing(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "result_report.yml")
	require.NoError(t, os.WriteFile(existing, []byte("---\n"), 0o644))

	require.NoError(t, Cleanup(existing, filepath.Join(dir, "missing.csv"), ""))

	_, err := os.Stat(existing)
	assert.True(t, os.IsNotExist(err))
}

// ── Summary ──────────────────────────────────────────────────────────────────

func TestSummary(t *testing.T) {
	s := Summary(testReport())

	assert.True(t, strings.Contains(s, "pushed=2"))
	assert.True(t, strings.Contains(s, "failed=1"))
	assert.True(t, strings.Contains(s, "unmatched=1"))
	assert.True(t, strings.Contains(s, "duration=1.5s"))
}

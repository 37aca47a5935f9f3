// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"gopkg.in/yaml.v3"
)

// ResourceStatus tracks a resource through the migration pipeline.
// Pushed, Failed and Dropped are terminal.
type ResourceStatus string

const (
	StatusPending     ResourceStatus = "pending"
	StatusFetched     ResourceStatus = "fetched"
	StatusDropped     ResourceStatus = "dropped"
	StatusTransformed ResourceStatus = "transformed"
	StatusPushed      ResourceStatus = "pushed"
	StatusFailed      ResourceStatus = "failed"
)

// ResourceKind distinguishes folders from dashboards in run reports.
type ResourceKind string

const (
	KindDashboard ResourceKind = "dashboard"
	KindFolder    ResourceKind = "folder"
)

// ResourceResult is the terminal outcome of one resource within a run.
type ResourceResult struct {
	Kind   ResourceKind   `json:"kind" yaml:"kind"`
	UID    string         `json:"uid" yaml:"uid"`
	Title  string         `json:"title" yaml:"title"`
	Status ResourceStatus `json:"status" yaml:"status"`

	// Reason holds the failure cause for StatusFailed entries.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Report summarizes a single migration run. Per-resource errors never abort
// the run; they accumulate here and are presented once the run completes.
type Report struct {
	Pushed  []ResourceResult `json:"pushed" yaml:"pushed"`
	Dropped []ResourceResult `json:"dropped" yaml:"dropped"`
	Failed  []ResourceResult `json:"failed" yaml:"failed"`

	// UnmatchedFilter lists allow-list uids that matched no source
	// resource. They are reported as warnings, never as errors.
	UnmatchedFilter []string `json:"unmatched_filter,omitempty" yaml:"unmatched_filter,omitempty"`

	// Datasources lists the datasources visible at the source during the
	// run, for post-migration datasource remapping.
	Datasources []Datasource `json:"datasources,omitempty" yaml:"datasources,omitempty"`

	Duration Duration `json:"duration" yaml:"duration"`
}

// Duration renders as a human-readable string ("1.5s") in YAML reports while
// staying a plain duration for arithmetic. JSON keeps nanoseconds.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, parseErr := time.ParseDuration(s)
		if parseErr != nil {
			return parseErr
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

// HasFailures reports whether any resource ended in StatusFailed.
func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0
}

package aisync

import (
	"github.com/bianoble/ai-config-sync/internal/config"
	"github.com/bianoble/ai-config-sync/internal/mapping"
	"github.com/bianoble/ai-config-sync/internal/plan"
	"github.com/bianoble/ai-config-sync/internal/reconcile"
	"github.com/bianoble/ai-config-sync/internal/report"
)

// Type aliases re-export the internal types as the public API. Users import
// "github.com/bianoble/ai-config-sync/pkg/aisync" and use aisync.Directive,
// aisync.RunReport, etc.

type ConfigEntry = mapping.ConfigEntry
type RuntimeConfig = config.RuntimeConfig
type Side = config.Side
type Operation = plan.Operation
type Directive = plan.Directive
type Outcome = report.Outcome
type Status = report.Status
type RunReport = report.RunReport
type ConsolidationResult = reconcile.ConsolidationResult

const (
	SideLinux   = config.SideLinux
	SideWindows = config.SideWindows

	Push = plan.Push
	Pull = plan.Pull

	StatusSucceeded            = report.StatusSucceeded
	StatusSkippedMissingSource = report.StatusSkippedMissingSource
	StatusFailed               = report.StatusFailed
)

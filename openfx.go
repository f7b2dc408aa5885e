// Package openfx provides flat re-exports of all submodules: the parameter
// and message suite dispatch layer plus the stores that back it.
package openfx

import (
	"github.com/nweston/openfx-runner/handle"
	"github.com/nweston/openfx-runner/message"
	"github.com/nweston/openfx-runner/param"
	"github.com/nweston/openfx-runner/prop"
	"github.com/nweston/openfx-runner/state"
	"github.com/nweston/openfx-runner/suite"
)

// Suite types and functions
type Status = suite.Status
type ParamBackend = suite.ParamBackend
type ParamSuite = suite.ParamSuite

var NewParamSuite = suite.NewParamSuite
var SetLogger = suite.SetLogger

const (
	StatusOK     = suite.StatusOK
	StatusFailed = suite.StatusFailed
)

const MaxComponents = suite.MaxComponents

// Handle types and functions
type Handle = handle.Handle
type Registry = handle.Registry

var NewRegistry = handle.NewRegistry

// Parameter store types and functions
type Param = param.Param
type ParamSet = param.Set
type ParamValue = param.Value
type ParamKind = param.Kind
type Manifest = param.Manifest

var NewParamSet = param.NewSet
var LoadManifest = param.LoadManifest
var BuildParamSet = param.BuildSet

// Property set types and functions
type PropertySet = prop.Set
type PropertyValue = prop.Value

var NewPropertySet = prop.NewSet

// Message types and functions
type Sink = message.Sink
type Composer = message.Composer
type LogSink = message.LogSink

var NewComposer = message.NewComposer
var NewComposerWithAllocator = message.NewComposerWithAllocator
var NewLogSink = message.NewLogSink

// State functions
var Snapshot = state.Snapshot
var Restore = state.Restore

package session

import (
	"airdrums-go/errcode"
	"airdrums-go/types"
)

// Offline is a Hub whose handshake always fails. It stands in wherever
// the real session layer is not linked (host builds, bench rigs without a
// hub): the service loop degrades to manual-trigger-only, which is the
// documented behavior for an open failure.
type Offline struct{}

func (Offline) Open() error { return errcode.OpenFailed }
func (Offline) Service()    {}

func (Offline) SetSampleCallback(func(*types.SensorSample)) {}

func (Offline) EnableReport(types.SensorKind, uint32) error { return errcode.OpenFailed }

var _ Hub = Offline{}

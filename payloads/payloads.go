// Copyright (c) 2025 Visvasity LLC

// Package payloads defines the message element types exchanged through the
// fixed capacity containers. Every type here must pass typecheck: only
// booleans, explicitly sized numbers, and arrays and structs of them.
package payloads

import (
	"github.com/visvasity/storage/journal"
)

type SensorID uint32

type Quality uint8

const (
	QualityBad  Quality = 0
	QualityPoor Quality = 1
	QualityGood Quality = 2
)

// SensorSample is a single measurement carried inside a bounded vector in
// the telemetry message payloads.
type SensorSample struct {
	Sensor       SensorID
	Microseconds int64
	Value        float64
	Quality      Quality
}

// Checksum is an inline digest carried next to bulk payload regions.
type Checksum [32]byte

// Region describes one contiguous payload region inside a larger segment.
type Region struct {
	Offset uint64
	Length uint64
	Digest Checksum
}

// JournalMark ties a payload batch to the storage journal position it was
// synced at.
type JournalMark struct {
	SyncedLSN journal.LSN
	BatchID   uint64
}

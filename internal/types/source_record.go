// Package types provides type definitions for structured data used throughout the content-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// SourceKind identifies where a raw record came from
type SourceKind string

// Source kinds recognized by the ingestor
const (
	KindMeetingTranscript SourceKind = "meeting_transcript"
	KindVoiceNote         SourceKind = "voice_note"
	KindDailyThought      SourceKind = "daily_thought"
)

// SourceRecord is a normalized unit of raw material. Immutable once ingested.
type SourceRecord struct {
	ID         string     `json:"id"`
	OriginName string     `json:"origin_name"`
	RawText    string     `json:"raw_text"`
	CapturedAt time.Time  `json:"captured_at"`
	Kind       SourceKind `json:"kind"`
}

// RawInput is a source record before ingestion: free-form text plus capture metadata.
type RawInput struct {
	OriginName string     `json:"origin_name"`
	Text       string     `json:"text"`
	CapturedAt time.Time  `json:"captured_at"`
	Kind       SourceKind `json:"kind"`
}

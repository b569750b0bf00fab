// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-offline-keeper/models"
)

// recordPayloadSize is the plaintext size of a usage record: five 64-bit tick
// values and one boolean byte.
const recordPayloadSize = 5*8 + 1

const (
	ticksPerSecond = int64(time.Second / models.RecordResolution)

	// secondsToUnixEpoch is the number of seconds from 0001-01-01 to
	// 1970-01-01 UTC.
	secondsToUnixEpoch int64 = 62_135_596_800

	// maxTimeTicks is the tick value of [models.MaxRecordTime].
	maxTimeTicks int64 = 3_155_378_975_999_999_999

	maxDurationTicks = math.MaxInt64 / int64(models.RecordResolution)
	minDurationTicks = math.MinInt64 / int64(models.RecordResolution)
)

// encodeRecord serializes r in the fixed little-endian layout
//
//	FirstLogin | LastLogin | LastOnlineLogin | TotalOfflineTime | IsOnline | SessionStartTime
//
// Timestamps are 100ns ticks since 0001-01-01 UTC, the duration is a count of
// 100ns ticks. The zero time is tick 0. Anything finer than 100ns is
// truncated.
func encodeRecord(r models.UsageRecord) ([]byte, error) {
	stamps := make([]int64, 0, 4)
	for _, t := range []time.Time{r.FirstLogin, r.LastLogin, r.LastOnlineLogin, r.SessionStartTime} {
		ticks, err := timeToTicks(t)
		if err != nil {
			return nil, err
		}
		stamps = append(stamps, ticks)
	}

	buf := make([]byte, 0, recordPayloadSize)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(stamps[0]))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(stamps[1]))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(stamps[2]))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(r.TotalOfflineTime/models.RecordResolution)))
	if r.IsOnline {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(stamps[3]))

	return buf, nil
}

// decodeRecord is the inverse of encodeRecord. It returns [ErrInvalidPayload]
// when b is not exactly one record, the boolean byte is not 0 or 1, or a
// value is out of range.
func decodeRecord(b []byte) (models.UsageRecord, error) {
	if len(b) != recordPayloadSize {
		return models.UsageRecord{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidPayload, len(b), recordPayloadSize)
	}

	online := b[32]
	if online > 1 {
		return models.UsageRecord{}, fmt.Errorf("%w: online flag byte %#x", ErrInvalidPayload, online)
	}

	var stamps [4]time.Time
	for i, off := range []int{0, 8, 16, 33} {
		t, err := ticksToTime(readInt64(b[off:]))
		if err != nil {
			return models.UsageRecord{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		stamps[i] = t
	}

	total := readInt64(b[24:])
	if total > maxDurationTicks || total < minDurationTicks {
		return models.UsageRecord{}, fmt.Errorf("%w: offline time of %d ticks", ErrInvalidPayload, total)
	}

	return models.UsageRecord{
		FirstLogin:       stamps[0],
		LastLogin:        stamps[1],
		LastOnlineLogin:  stamps[2],
		TotalOfflineTime: time.Duration(total) * models.RecordResolution,
		IsOnline:         online == 1,
		SessionStartTime: stamps[3],
	}, nil
}

func readInt64(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b[:8]))
}

func timeToTicks(t time.Time) (int64, error) {
	if t.IsZero() {
		return 0, nil
	}

	secs := t.Unix() + secondsToUnixEpoch
	if secs < 0 || t.After(models.MaxRecordTime) {
		return 0, fmt.Errorf("%w: %s", ErrTimestampOutOfRange, t.UTC().Format(time.RFC3339Nano))
	}
	return secs*ticksPerSecond + int64(t.Nanosecond())/int64(models.RecordResolution), nil
}

func ticksToTime(ticks int64) (time.Time, error) {
	if ticks == 0 {
		return time.Time{}, nil
	}
	if ticks < 0 || ticks > maxTimeTicks {
		return time.Time{}, fmt.Errorf("%w: %d ticks", ErrTimestampOutOfRange, ticks)
	}

	secs := ticks/ticksPerSecond - secondsToUnixEpoch
	nsec := (ticks % ticksPerSecond) * int64(models.RecordResolution)
	return time.Unix(secs, nsec).UTC(), nil
}

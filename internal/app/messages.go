// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// session service and the terminal client.
//
// All Msg* constants are human-readable message strings returned in
// operation results or shown to the user. Keeping them in one place ensures
// consistent wording. Constants ending in "Fmt" are fmt format strings.
package app

const (
	// MsgFirstLoginFmt is returned by the first-ever online login.
	// Argument: offline budget in hours.
	MsgFirstLoginFmt = "First login successful. You have %g hour(s) of offline usage."

	// MsgOnlineLoginFmt is returned by every later online login.
	// Argument: offline budget in hours.
	MsgOnlineLoginFmt = "Online login successful. Your %g hour(s) of offline usage has been reset."

	// MsgOfflineLoginFmt is returned by a successful offline login.
	// Argument: remaining offline hours.
	MsgOfflineLoginFmt = "Offline login successful. %.1f hours remaining."

	// MsgFirstLoginMustBeOnline is returned by an offline login without any
	// stored record.
	MsgFirstLoginMustBeOnline = "First login must be online. Please connect to the internet."

	// MsgDataTamperedOffline is returned by an offline login over an
	// unreadable record.
	MsgDataTamperedOffline = "Data file has been tampered with. Please connect to the internet to continue."

	// MsgDataTamperedHeartbeat is returned by a heartbeat over an unreadable
	// record.
	MsgDataTamperedHeartbeat = "Data file has been tampered with. Application will now exit."

	// MsgClockRetrogression is returned by an offline login when the clock is
	// earlier than the last recorded touch.
	MsgClockRetrogression = "Clock manipulation detected. System time is earlier than last recorded session. " +
		"Please connect to the internet to continue."

	// MsgClockManipulation is returned by a heartbeat when the clock went
	// backwards during an offline session.
	MsgClockManipulation = "Clock manipulation detected during offline session. Application will now exit."

	// MsgOfflineLimitExceededFmt is returned when the offline budget is used
	// up. Argument: consumed offline hours.
	MsgOfflineLimitExceededFmt = "Offline usage limit exceeded (%.1f hours used). Please connect to the internet to continue."

	// MsgNoUserData is returned by a heartbeat without a stored record.
	MsgNoUserData = "No user data found."

	// MsgHeartbeatUpdated is returned by a successful heartbeat.
	MsgHeartbeatUpdated = "Heartbeat updated successfully."
)

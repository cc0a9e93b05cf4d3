// Package meeting synthesizes video-call room links for accepted swaps.
//
// Rooms are hosted on the public Jitsi instance: any room name is valid and
// the room is created lazily when the first participant opens the link, so
// generation needs no network call and no credential.
package meeting

import (
	"fmt"
	"math/rand"
	"net/url"
	"time"

	"skillswap/internal/models"
)

const (
	baseURL = "https://meet.jit.si"

	// DefaultDuration is applied when the accept payload omits a duration.
	DefaultDuration = 60

	randomSuffixLen = 6
	base36Chars     = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Generate builds the room details for a meeting. The room id combines the
// current unix-millisecond timestamp with a random base36 suffix; the main
// link carries the meeting title as a URL-fragment display hint, and the
// join link pre-configures audio muted / video on.
func Generate(title string, scheduledDate time.Time, duration int) models.MeetingDetails {
	if duration <= 0 {
		duration = DefaultDuration
	}

	meetingID := fmt.Sprintf("skillswap-%d-%s", time.Now().UnixMilli(), randomSuffix(randomSuffixLen))
	roomURL := fmt.Sprintf("%s/%s", baseURL, meetingID)

	return models.MeetingDetails{
		MeetingID:     meetingID,
		// PathEscape keeps spaces as %20, which Jitsi renders correctly in
		// the subject hint; QueryEscape would turn them into '+'.
		MeetingLink:   fmt.Sprintf("%s#config.roomPassword=&config.subject=%s", roomURL, url.PathEscape(title)),
		JoinLink:      roomURL + "#config.startWithAudioMuted=true&config.startWithVideoMuted=false",
		ScheduledDate: scheduledDate,
		Duration:      duration,
		// Jitsi rooms carry no password by default.
	}
}

// Title formats the display name for a swap meeting.
func Title(skillOffered, skillRequested string) string {
	return fmt.Sprintf("Skill Swap: %s <-> %s", skillOffered, skillRequested)
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Chars[rand.Intn(len(base36Chars))]
	}
	return string(b)
}

package meeting

import (
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var meetingIDPattern = regexp.MustCompile(`^skillswap-\d+-[a-z0-9]{6}$`)

func TestGenerate(t *testing.T) {
	scheduled := time.Now().Add(24 * time.Hour)

	t.Run("generates well-formed room details", func(t *testing.T) {
		details := Generate("Skill Swap: react <-> python", scheduled, 60)

		assert.Regexp(t, meetingIDPattern, details.MeetingID)
		assert.True(t, strings.HasPrefix(details.MeetingLink, "https://meet.jit.si/"+details.MeetingID))
		assert.Contains(t, details.MeetingLink, "#config.roomPassword=&config.subject=")
		assert.Equal(t, "https://meet.jit.si/"+details.MeetingID+"#config.startWithAudioMuted=true&config.startWithVideoMuted=false", details.JoinLink)
		assert.Equal(t, scheduled, details.ScheduledDate)
		assert.Equal(t, 60, details.Duration)
		assert.Empty(t, details.Password)
	})

	t.Run("url-encodes the title", func(t *testing.T) {
		title := "Skill Swap: guitar & singing <-> go"
		details := Generate(title, scheduled, 30)

		idx := strings.Index(details.MeetingLink, "config.subject=")
		require.Greater(t, idx, 0)
		encoded := details.MeetingLink[idx+len("config.subject="):]

		decoded, err := url.PathUnescape(encoded)
		require.NoError(t, err)
		assert.Equal(t, title, decoded)
		assert.Contains(t, encoded, "%20", "spaces encode as %20, not '+'")
		assert.NotContains(t, encoded, "+")
		assert.NotContains(t, encoded, " ")
		assert.NotContains(t, encoded, "&config", "title must not bleed into the fragment options")
	})

	t.Run("applies the default duration when omitted", func(t *testing.T) {
		details := Generate("x", scheduled, 0)
		assert.Equal(t, DefaultDuration, details.Duration)
	})

	t.Run("generates distinct room ids", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			details := Generate("x", scheduled, 15)
			assert.False(t, seen[details.MeetingID], "duplicate meeting id %s", details.MeetingID)
			seen[details.MeetingID] = true
		}
	})
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Skill Swap: react <-> python", Title("react", "python"))
}

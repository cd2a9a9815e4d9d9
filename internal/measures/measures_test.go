package measures

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eivindstn/helsegrad/internal/catalog"
)

func ids(measures []catalog.Measure) []string {
	out := make([]string, len(measures))
	for i, m := range measures {
		out[i] = m.ID
	}
	return out
}

func TestForLevelBaseline(t *testing.T) {
	set := ForLevel(1, catalog.ExposureInternal)

	assert.Equal(t, []string{"tls", "firewall", "patching", "backup", "logging_basic"}, ids(set.Technical))
	assert.Equal(t, []string{"system_owner", "change_mgmt"}, ids(set.Organizational))
}

func TestForLevelCumulative(t *testing.T) {
	prevTech := 0
	prevOrg := 0
	for level := 1; level <= 4; level++ {
		set := ForLevel(level, catalog.ExposureInternal)

		assert.Greater(t, len(set.Technical), prevTech, "level %d technical", level)
		assert.Greater(t, len(set.Organizational), prevOrg, "level %d organizational", level)

		// Everything required at the previous level is still required.
		if level > 1 {
			lower := ForLevel(level-1, catalog.ExposureInternal)
			for _, m := range lower.Technical {
				assert.Contains(t, ids(set.Technical), m.ID, "level %d", level)
			}
			for _, m := range lower.Organizational {
				assert.Contains(t, ids(set.Organizational), m.ID, "level %d", level)
			}
		}

		prevTech = len(set.Technical)
		prevOrg = len(set.Organizational)
	}
}

func TestForLevelInternetAddsWAF(t *testing.T) {
	helsenett := ForLevel(2, catalog.ExposureHelsenett)
	assert.NotContains(t, ids(helsenett.Technical), "waf")

	internet := ForLevel(2, catalog.ExposureInternet)
	assert.Contains(t, ids(internet.Technical), "waf")

	// Level 1 keeps the minimal baseline even on the internet.
	minimal := ForLevel(1, catalog.ExposureInternet)
	assert.NotContains(t, ids(minimal.Technical), "waf")

	// Level 3 already requires WAF; internet must not duplicate it.
	level3 := ForLevel(3, catalog.ExposureInternet)
	count := 0
	for _, id := range ids(level3.Technical) {
		if id == "waf" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNotificationsForLevel(t *testing.T) {
	assert.Empty(t, NotificationsForLevel(1))
	assert.Len(t, NotificationsForLevel(2), 3)
	assert.Len(t, NotificationsForLevel(3), 5)
	assert.Len(t, NotificationsForLevel(4), 6)
}

func TestNotesForLevel(t *testing.T) {
	assert.Len(t, NotesForLevel(1), 2)
	assert.Len(t, NotesForLevel(2), 3)
	assert.Len(t, NotesForLevel(3), 4)
}

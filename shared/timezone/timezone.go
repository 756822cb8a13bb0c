// Package timezone keeps every timestamp the service produces in the zone
// configured by APP_TIMEZONE. Unknown or empty names fall back to UTC.
package timezone

import (
	"sync"
	"time"
	"todolist/config"

	"github.com/rs/zerolog/log"
)

var location = sync.OnceValue(func() *time.Location {
	return load(config.Get().App.Timezone)
})

func load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("Failed to load timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

// Now is time.Now in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

func Location() *time.Location {
	return location()
}

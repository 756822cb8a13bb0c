// Package permissions lists the routes that are served without credentials.
// Routes are chi patterns, so "/todos/{id}" rather than a concrete path.
package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`

	public map[string]struct{}
}

func routeKey(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

// IsPublic reports whether the route pattern may be served without
// credentials. A nil table has no public routes.
func (p *PermissionData) IsPublic(path, method string) bool {
	if p == nil || path == "" {
		return false
	}

	_, ok := p.public[routeKey(path, method)]

	return ok
}

// Get parses the embedded table. It returns nil when the table is broken,
// which leaves every route behind authentication.
func Get() *PermissionData {
	return parse(permissionsData)
}

func parse(data []byte) *PermissionData {
	permissions := &PermissionData{}

	if err := json.Unmarshal(data, permissions); err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.public = make(map[string]struct{}, len(permissions.Endpoints))
	for _, endpoint := range permissions.Endpoints {
		if endpoint.Skip {
			permissions.public[routeKey(endpoint.Path, endpoint.Method)] = struct{}{}
		}
	}

	log.Info().Int("public", len(permissions.public)).Msg("Loaded embedded permissions")

	return permissions
}

package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		path   string
		method string
		public bool
	}{
		{path: "/healthz", method: http.MethodGet, public: true},
		{path: "/swagger/*", method: http.MethodGet, public: true},
		{path: "/auth/token", method: http.MethodPost, public: true},
		{path: "/auth/refresh-token", method: http.MethodPost, public: true},
		{path: "/todos", method: http.MethodGet},
		{path: "/todos/{id}", method: http.MethodDelete},
		{path: "/auth/token", method: http.MethodGet},
		{path: "", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.public, data.IsPublic(tt.path, tt.method))
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	data := parse([]byte("{"))
	assert.Nil(t, data)
	assert.False(t, data.IsPublic("/healthz", http.MethodGet))
}

func TestParse_OnlySkippedRoutesArePublic(t *testing.T) {
	data := parse([]byte(`{"endpoints":[
		{"path":"/todos","method":"get","skip":true},
		{"path":"/todos/{id}","method":"GET","skip":false}
	]}`))
	require.NotNil(t, data)

	assert.True(t, data.IsPublic("/todos", http.MethodGet))
	assert.False(t, data.IsPublic("/todos/{id}", http.MethodGet))
	assert.False(t, data.IsPublic("/todos", http.MethodPost))
}

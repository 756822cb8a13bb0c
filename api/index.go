package handler

import (
	"net/http"
	"sync"
	"todolist/config"
	"todolist/di"
	"todolist/shared/logger"
	transport "todolist/transport/http"
)

var (
	service *transport.HTTP
	once    sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()
		logger.Configure(config.Get())

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}

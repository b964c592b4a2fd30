package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, hCmd *CommandHandler) {

	// liveness
	r.Get("/", hCmd.Index)

	// voice command
	r.Post("/process-command", hCmd.ProcessCommand)

	// active vocabulary
	r.Get("/commands", hCmd.ListCommands)
}

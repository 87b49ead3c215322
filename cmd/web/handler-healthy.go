package main

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
	// LLM names the configured language model provider. Translation and chat degrade when it's "none".
	LLM    string `json:"llm"`
	Fields int    `json:"fields"`
}

// healthy reports that the server is up together with the configuration the drafting pipeline runs with.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, healthResponse{
		Status: "ok",
		LLM:    app.cfg.LLMProvider,
		Fields: app.registry.Len(),
	})
}

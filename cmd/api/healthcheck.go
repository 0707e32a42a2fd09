package main

import "net/http"

// healthcheckHandler reports the build and, when Redis is configured, the
// summary of the last import run. A Redis failure does not fail the check.
func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.env,
			"version":     version,
		},
	}

	if app.imports != nil {
		summary, err := app.imports.GetImportSummary(r.Context())
		if err != nil {
			app.logger.Error("failed to read import summary", "error", err)
		} else if summary != nil {
			env["last_import"] = summary
		}
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(js); err != nil {
		return err
	}

	return nil
}

// readIntParam parses a numeric path parameter. Range checks are left to the
// service, which treats impossible numbers as not found.
func (app *application) readIntParam(r *http.Request, name string) (int, error) {
	params := httprouter.ParamsFromContext(r.Context())

	n, err := strconv.Atoi(params.ByName(name))
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return n, nil
}

func (app *application) readStringParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

package middleware

import (
	"net/http"
	"strings"
)

const methodOverrideField = "_method"

// MethodOverride lets HTML forms, which can only POST, reach DELETE, PUT and PATCH routes
// through a _method query parameter or form field.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			override := r.URL.Query().Get(methodOverrideField)
			if override == "" {
				override = r.PostFormValue(methodOverrideField)
			}

			switch m := strings.ToUpper(override); m {
			case http.MethodDelete, http.MethodPut, http.MethodPatch:
				r.Method = m
			}
		}

		next.ServeHTTP(w, r)
	})
}

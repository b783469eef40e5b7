package handler

import "net/http"

// Page routes exist for the auth gate's redirect semantics; the actual
// pages are served by the frontend. These placeholders answer plain text.

// LoginPage handles GET /login.
func LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("login"))
}

// AdminPage handles GET /admin and everything under it.
func AdminPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("admin"))
}

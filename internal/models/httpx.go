package models

import (
	"encoding/json"
	"net/http"
)

// Envelope — единый формат ответа API: {ok, data} либо {ok, message}.
// Его же ждёт JS SDK на стороне сайта.
type Envelope struct {
	OK      bool   `json:"ok"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteOK пишет успешный ответ. data может быть nil — тогда просто {ok:true}.
func WriteOK(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{OK: true, Data: data})
}

// WriteFail пишет ошибку с человекочитаемым сообщением.
func WriteFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{OK: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

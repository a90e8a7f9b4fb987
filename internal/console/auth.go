package console

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/argon2"

	"pushka/internal/models"
)

const loginSalt = "pushka-login"

// Authenticator — статическая учётка консоли (как в исходном деплое:
// одна пара логин/пароль из конфига). Пароль держим как argon2-хэш,
// сверка — константное время.
type Authenticator struct {
	username string
	hash     []byte
}

func NewAuthenticator(username, password string) *Authenticator {
	return &Authenticator{username: username, hash: hashPassword(password)}
}

func hashPassword(p string) []byte {
	return argon2.IDKey([]byte(p), []byte(loginSalt), 1, 64*1024, 1, 32)
}

func (a *Authenticator) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(a.username), []byte(username)) == 1
	passOK := subtle.ConstantTimeCompare(a.hash, hashPassword(password)) == 1
	return userOK && passOK
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /login
func NewLoginHandler(a *Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			models.WriteFail(w, http.StatusBadRequest, "cannot parse request body")
			return
		}
		if !a.Verify(req.Username, req.Password) {
			models.WriteFail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		models.WriteOK(w, http.StatusOK, nil)
	}
}

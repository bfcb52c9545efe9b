package httpapi

import (
	"errors"
	"net/http"

	"github.com/mkravets/bookshelf/internal/common"
	"github.com/mkravets/bookshelf/internal/server/models"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userView is the public projection of a user record. The password hash has
// no representation here at all.
type userView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

func toUserView(u *models.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var in signupRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	s.logger.Info(r.Context(), "Signup request", "username", in.Username)

	user, err := s.users.Register(r.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.Username)
	writeJSON(w, http.StatusCreated, toUserView(user))
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, user, err := s.users.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		// Unknown username and wrong password intentionally share one
		// response to avoid an account-enumeration oracle. Anything else
		// is an infrastructure failure, not a credential failure.
		if errors.Is(err, common.ErrUserNotFound) || errors.Is(err, common.ErrBadCredentials) {
			errorJSON(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    user.Username,
		Email:       user.Email,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		errorJSON(w, http.StatusUnauthorized, "invalid or missing token")
		return
	}
	writeJSON(w, http.StatusOK, toUserView(user))
}

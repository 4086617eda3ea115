package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/jwt"

	"portfolio-server/src/models"
	"portfolio-server/src/schemas"
	"portfolio-server/src/utils"
)

// issueToken signs a JWT for the user with a unique jti so the token can be
// revoked individually on logout.
func (h *Handler) issueToken(user *models.User) (string, error) {
	claims := map[string]interface{}{
		"user_id": user.ID,
		"jti":     uuid.NewString(),
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, h.ExpiresIn)

	_, tokenString, err := h.TokenAuth.Encode(claims)
	return tokenString, err
}

func userResponse(user *models.User) *schemas.UserResponse {
	return &schemas.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// callerID extracts the authenticated user ID from the verified token claims.
func (h *Handler) callerID(r *http.Request) (uint, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, utils.Unauthorized("Invalid token")
	}
	switch id := claims["user_id"].(type) {
	case float64:
		return uint(id), nil
	case uint:
		return id, nil
	case int:
		return uint(id), nil
	}
	return 0, utils.Unauthorized("Invalid token claims")
}

// callerToken returns the verified token for revocation checks.
func (h *Handler) callerToken(r *http.Request) (jwt.Token, error) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return nil, utils.Unauthorized("Invalid token")
	}
	return token, nil
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req schemas.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}

	user, err := h.Controller.Signup(r.Context(), &req)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, &schemas.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    userResponse(user),
	}, http.StatusCreated)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req schemas.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, r, utils.BadRequest("invalid request body"))
		return
	}

	user, err := h.Controller.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, &schemas.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    userResponse(user),
	}, http.StatusOK)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	user, err := h.Controller.GetUser(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, map[string]interface{}{
		"success": true,
		"user":    userResponse(user),
	}, http.StatusOK)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	user, err := h.Controller.GetUser(r.Context(), userID)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, &schemas.AuthResponse{
		Success: true,
		Message: "Token refreshed successfully",
		Token:   token,
	}, http.StatusOK)
}

// Logout revokes the presented token until its natural expiry. Without a
// session store the endpoint still succeeds and cleanup is client-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token, err := h.callerToken(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	if h.Sessions != nil && token.JwtID() != "" {
		if err := h.Sessions.Revoke(r.Context(), token.JwtID(), token.Expiration()); err != nil {
			h.HandleErrors(w, r, err)
			return
		}
	}

	h.respond(w, r, map[string]interface{}{
		"success": true,
		"message": "Logout successful",
	}, http.StatusOK)
}

func (h *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	userID, err := h.callerID(r)
	if err != nil {
		h.HandleErrors(w, r, err)
		return
	}

	h.respond(w, r, map[string]interface{}{
		"success": true,
		"message": "Token is valid",
		"userId":  userID,
	}, http.StatusOK)
}

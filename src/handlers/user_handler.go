package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"fintrack-server/src/util"

	"golang.org/x/crypto/bcrypt"
)

func GetMe(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		user, err := s.GetUserByID(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get user - user_id: %d: %v", userID, err)
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

func UpdateMe(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		var req struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update profile request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if !util.ValidateName(req.Name) {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during profile update - Email: %s, User: %d", req.Email, userID)
			writeError(w, http.StatusBadRequest, "invalid email format")
			return
		}

		user, err := s.UpdateUserProfile(r.Context(), userID, req.Name, req.Email)
		if err != nil {
			log.Printf("ERROR: Failed to update user profile - user_id: %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: User profile updated - User: %d", userID)
		writeJSON(w, http.StatusOK, user)
	}
}

func ChangePassword(s Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := requestUserID(r)
		var req struct {
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode change password request body: %v", err)
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}

		user, err := s.GetUserByID(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get user for password change - user_id: %d: %v", userID, err)
			writeError(w, http.StatusNotFound, "user not found")
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.CurrentPassword)); err != nil {
			log.Printf("ERROR: Invalid current password attempt for user %d", userID)
			writeError(w, http.StatusUnauthorized, "current password is incorrect")
			return
		}

		if !util.ValidatePassword(req.NewPassword) {
			log.Printf("ERROR: Password validation failed during change password - User: %d", userID)
			writeError(w, http.StatusBadRequest, "password must be at least 8 characters with uppercase, lowercase, digit, and special character")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash new password for user %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := s.UpdateUserPassword(r.Context(), userID, hashedPassword); err != nil {
			log.Printf("ERROR: Failed to update user password - user_id: %d: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: User password changed - User: %d", userID)
		writeJSON(w, http.StatusOK, map[string]string{"message": "password changed successfully"})
	}
}

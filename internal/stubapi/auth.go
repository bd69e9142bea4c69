package stubapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"printduka-admin/internal/model"
)

// demoUser is a seeded staff account. Hashes are computed at startup so
// fixtures never carry plaintext-adjacent material.
type demoUser struct {
	user         model.StaffUser
	passwordHash []byte
}

var demoPasswords = map[string]string{
	"admin": "admin-dev-password",
	"mercy": "mercy-dev-password",
	"brian": "brian-dev-password",
}

func seedUsers() map[string]demoUser {
	meta := []model.StaffUser{
		{ID: "staff-1", Username: "admin", FullName: strPtr("Dev Admin"), Role: "admin", IsActive: true, CreatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "staff-2", Username: "mercy", FullName: strPtr("Mercy Njeri"), Role: "operations", IsActive: true, CreatedAt: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
		{ID: "staff-3", Username: "brian", FullName: strPtr("Brian Otieno"), Role: "sales", IsActive: true, CreatedAt: time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)},
	}

	users := make(map[string]demoUser, len(meta))
	for _, u := range meta {
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPasswords[u.Username]), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		users[u.Username] = demoUser{user: u, passwordHash: hash}
	}
	return users
}

func strPtr(s string) *string { return &s }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// handleLogin validates credentials and issues the session cookie.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFieldErrors(c, map[string][]string{
			"non_field_errors": {"Invalid request body."},
		})
		return
	}
	if req.Username == "" || req.Password == "" {
		fields := map[string][]string{}
		if req.Username == "" {
			fields["username"] = []string{"This field is required."}
		}
		if req.Password == "" {
			fields["password"] = []string{"This field is required."}
		}
		respondFieldErrors(c, fields)
		return
	}

	account, ok := s.users[req.Username]
	if !ok || bcrypt.CompareHashAndPassword(account.passwordHash, []byte(req.Password)) != nil {
		respondDetail(c, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	maxAge := s.cookie.MaxAge
	if req.Remember {
		maxAge = s.cookie.MaxAgeRemember
	}
	token, err := s.sessions.Issue(account.user.ID, account.user.Username, account.user.Role, time.Duration(maxAge)*time.Second)
	if err != nil {
		respondDetail(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	c.SetCookie(s.cookie.Name, token, maxAge, "/", s.cookie.Domain, s.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": account.user})
}

// handleLogout clears the session cookie.
func (s *Server) handleLogout(c *gin.Context) {
	c.SetCookie(s.cookie.Name, "", -1, "/", s.cookie.Domain, s.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// handleSessionCheck reports whether the caller holds a valid session.
// It always answers 200 so the admin client can probe without tripping
// error handling; it also primes the CSRF cookie via middleware.
func (s *Server) handleSessionCheck(c *gin.Context) {
	token, err := c.Cookie(s.cookie.Name)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	claims, err := s.sessions.Verify(token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	account, ok := s.users[claims.Username]
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": account.user})
}

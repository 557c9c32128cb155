package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/pkg/jwt"
	"gorm.io/gorm"
)

// stubUserRepo serves a fixed set of users keyed by ID.
type stubUserRepo struct {
	users map[int64]*domain.User
}

func (s *stubUserRepo) FindByID(id int64, includeDeleted bool) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) FindByEmail(email string) (*domain.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) ExistsByEmail(email string) (bool, error) { return false, nil }

func (s *stubUserRepo) Search(term string, page, limit int) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

func (s *stubUserRepo) Create(u *domain.User) error  { return nil }
func (s *stubUserRepo) Save(u *domain.User) error    { return nil }
func (s *stubUserRepo) SoftDelete(id int64) error    { return nil }
func (s *stubUserRepo) HardDelete(id int64) error    { return nil }
func (s *stubUserRepo) Restore(id int64) error       { return nil }

func authTestRouter(t *testing.T, manager *jwt.Manager, repo *stubUserRepo, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if optional {
		r.Use(OptionalJWTAuth(manager, repo))
	} else {
		r.Use(JWTAuth(manager, repo))
	}
	r.GET("/me", func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			c.JSON(http.StatusOK, gin.H{"anonymous": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": actor.ID})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Role: domain.RoleUser, IsActive: true},
	}}
	r := authTestRouter(t, manager, repo, false)

	token, err := manager.GenerateAccessToken(42, string(domain.RoleUser))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	r := authTestRouter(t, manager, &stubUserRepo{}, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_BadToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	r := authTestRouter(t, manager, &stubUserRepo{}, false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestJWTAuth_RejectsRefreshToken(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{
		42: {ID: 42, Role: domain.RoleUser, IsActive: true},
	}}
	r := authTestRouter(t, manager, repo, false)

	token, err := manager.GenerateRefreshToken(42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for refresh token on bearer auth, got %d", w.Code)
	}
}

func TestJWTAuth_DeletedUser(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{}}
	r := authTestRouter(t, manager, repo, false)

	token, _ := manager.GenerateAccessToken(7, string(domain.RoleUser))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for deleted account, got %d", w.Code)
	}
}

func TestJWTAuth_DeactivatedUser(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{
		9: {ID: 9, Role: domain.RoleUser, IsActive: false},
	}}
	r := authTestRouter(t, manager, repo, false)

	token, _ := manager.GenerateAccessToken(9, string(domain.RoleUser))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for deactivated account, got %d", w.Code)
	}
}

func TestOptionalJWTAuth_AnonymousContinues(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	r := authTestRouter(t, manager, &stubUserRepo{}, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for anonymous request, got %d", w.Code)
	}
}

func TestOptionalJWTAuth_BadTokenContinuesAnonymously(t *testing.T) {
	manager := jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
	r := authTestRouter(t, manager, &stubUserRepo{}, true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

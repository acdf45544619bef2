package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecopack/ecopack-api/internal/application/auth"
	"github.com/ecopack/ecopack-api/internal/application/dto"
	"github.com/ecopack/ecopack-api/internal/domain"
	"github.com/ecopack/ecopack-api/internal/domain/entity"
	"github.com/ecopack/ecopack-api/internal/domain/repository"
	pkgjwt "github.com/ecopack/ecopack-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "ecopack-api-test"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type authStore struct {
	users    map[string]*entity.User    // por username
	profiles map[string]*entity.Profile // por userID

	failProfileCreate bool // fuerza el fallo de la segunda inserción del registro
}

func newAuthStore() *authStore {
	return &authStore{
		users:    make(map[string]*entity.User),
		profiles: make(map[string]*entity.Profile),
	}
}

func (s *authStore) snapshot() *authStore {
	cp := newAuthStore()
	cp.failProfileCreate = s.failProfileCreate
	for k, u := range s.users {
		uu := *u
		cp.users[k] = &uu
	}
	for k, p := range s.profiles {
		pp := *p
		cp.profiles[k] = &pp
	}
	return cp
}

type fakeUserRepo struct{ store *authStore }

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, exists := r.store.users[u.Username]; exists {
		return domain.ErrUsernameTaken
	}
	r.store.users[u.Username] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.store.users {
		if u.ID == id {
			uu := *u
			return &uu, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.store.users[username]
	if !ok {
		return nil, nil
	}
	uu := *u
	return &uu, nil
}
func (r *fakeUserRepo) List(limit, offset int) ([]*repository.UserWithRole, error) { return nil, nil }

type fakeProfileRepo struct{ store *authStore }

func (r *fakeProfileRepo) Create(p *entity.Profile) error {
	if r.store.failProfileCreate {
		return errors.New("insert profile: fallo simulado")
	}
	if _, exists := r.store.profiles[p.UserID]; exists {
		return domain.ErrDuplicate
	}
	r.store.profiles[p.UserID] = p
	return nil
}
func (r *fakeProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	p, ok := r.store.profiles[userID]
	if !ok {
		return nil, nil
	}
	pp := *p
	return &pp, nil
}

// fakeAuthTxRunner restaura el snapshot si fn falla: usuario y profile se
// insertan juntos o no se inserta ninguno.
type fakeAuthTxRunner struct{ store *authStore }

func (tr *fakeAuthTxRunner) RunAuth(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
) error) error {
	snap := tr.store.snapshot()
	if err := fn(&fakeUserRepo{store: tr.store}, &fakeProfileRepo{store: tr.store}); err != nil {
		tr.store.users = snap.users
		tr.store.profiles = snap.profiles
		return err
	}
	return nil
}

func newAuthFixture() (*auth.AuthUseCase, *authStore) {
	store := newAuthStore()
	uc := auth.NewAuthUseCase(
		&fakeAuthTxRunner{store: store},
		&fakeUserRepo{store: store},
		&fakeProfileRepo{store: store},
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
	)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

// El registro crea el usuario, su Profile con rol staff, y deja la sesión iniciada.
func TestRegister_CreaUsuarioYProfileStaff(t *testing.T) {
	uc, store := newAuthFixture()

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "wanjiru",
		Email:    "wanjiru@ecopack.co.ke",
		Password: "secreta123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	user := store.users["wanjiru"]
	require.NotNil(t, user, "el usuario debe quedar persistido")
	assert.NotEqual(t, "secreta123", user.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreta123")))

	profile := store.profiles[user.ID]
	require.NotNil(t, profile, "todo usuario registrado debe tener Profile")
	assert.Equal(t, entity.RoleStaff, profile.Role, "el rol por defecto es staff")

	// Auto-login: el token devuelto es válido y lleva el rol staff.
	assert.NotEmpty(t, resp.Token)
	userID, role, superuser, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, entity.RoleStaff, role)
	assert.False(t, superuser)
	assert.Equal(t, "wanjiru", resp.User.Username)
}

// Username repetido → ErrUsernameTaken, sin crear nada adicional.
func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, store := newAuthFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "kamau", Password: "abc12345"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "kamau", Password: "otra5678"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, store.users, 1)
	assert.Len(t, store.profiles, 1)
}

// Si falla la inserción del Profile, tampoco queda el usuario: las dos
// escrituras comparten transacción.
func TestRegister_FalloEnProfile_NoDejaUsuarioHuerfano(t *testing.T) {
	uc, store := newAuthFixture()
	store.failProfileCreate = true

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "otieno", Password: "abc12345"})
	require.Error(t, err)

	assert.Empty(t, store.users, "el usuario no debe quedar sin Profile")
	assert.Empty(t, store.profiles)
}

// Username o password vacíos se rechazan.
func TestRegister_EntradaInvalida(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "njeri", Password: "clave999"})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "njeri", Password: "clave999"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "njeri", resp.User.Username)
	assert.Equal(t, entity.RoleStaff, resp.User.Role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "njeri", Password: "clave999"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "njeri", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture()

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// El token de login refleja el rol del Profile, incluido un ascenso posterior.
func TestLogin_TokenLlevaRolDelProfile(t *testing.T) {
	uc, store := newAuthFixture()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "admin1", Password: "clave999"})
	require.NoError(t, err)

	// Ascenso a admin directamente en el store (simula UPDATE del Profile).
	user := store.users["admin1"]
	store.profiles[user.ID].Role = entity.RoleAdmin

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin1", Password: "clave999"})
	require.NoError(t, err)

	_, role, _, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
}

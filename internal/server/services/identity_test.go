package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/clientportal/internal/common"
	"github.com/dmitrijs2005/clientportal/internal/dbx"
	"github.com/dmitrijs2005/clientportal/internal/server/auth"
	"github.com/dmitrijs2005/clientportal/internal/server/config"
	"github.com/dmitrijs2005/clientportal/internal/server/models"
	companiesrepo "github.com/dmitrijs2005/clientportal/internal/server/repositories/companies"
	filesrepo "github.com/dmitrijs2005/clientportal/internal/server/repositories/files"
	identitiesrepo "github.com/dmitrijs2005/clientportal/internal/server/repositories/identities"
	messagesrepo "github.com/dmitrijs2005/clientportal/internal/server/repositories/messages"
	refreshtokensrepo "github.com/dmitrijs2005/clientportal/internal/server/repositories/refreshtokens"
)

// --- helpers ---

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeIdentitiesRepo struct {
	createOut *models.Identity
	createErr error

	getOut *models.Identity
	getErr error
}

func (f *fakeIdentitiesRepo) Create(ctx context.Context, i *models.Identity) (*models.Identity, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	i.ID = "id-1"
	return i, nil
}

func (f *fakeIdentitiesRepo) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeIdentitiesRepo) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr    error
	createErr error
}

func (f *fakeRefreshRepo) Create(ctx context.Context, identityID string, token string, validity time.Duration) error {
	return f.createErr
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	return f.delErr
}

type fakeCompaniesRepo struct {
	createOut *models.Company
	createErr error

	getOut *models.Company
	getErr error
}

func (f *fakeCompaniesRepo) Create(ctx context.Context, c *models.Company) (*models.Company, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	c.ID = "c-1"
	return c, nil
}

func (f *fakeCompaniesRepo) GetByIdentityID(ctx context.Context, identityID string) (*models.Company, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeMessagesRepo struct {
	createErr error
	listOut   []*models.Message
	listErr   error
	created   []*models.Message
}

func (f *fakeMessagesRepo) Create(ctx context.Context, m *models.Message) (*models.Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	m.ID = "m-1"
	m.CreatedAt = time.Now()
	f.created = append(f.created, m)
	return m, nil
}

func (f *fakeMessagesRepo) ListByParticipant(ctx context.Context, participantID string) ([]*models.Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeFilesRepo struct {
	createErr error
	listOut   []*models.File
	listErr   error
	created   []*models.File
}

func (f *fakeFilesRepo) Create(ctx context.Context, file *models.File) (*models.File, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	file.ID = "f-1"
	file.CreatedAt = time.Now()
	f.created = append(f.created, file)
	return file, nil
}

func (f *fakeFilesRepo) ListByParticipant(ctx context.Context, participantID string) ([]*models.File, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

type fakeRepoManager struct {
	i *fakeIdentitiesRepo
	r *fakeRefreshRepo
	c *fakeCompaniesRepo
	m *fakeMessagesRepo
	f *fakeFilesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Identities(db dbx.DBTX) identitiesrepo.Repository {
	return m.i
}
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository {
	return m.r
}
func (m *fakeRepoManager) Companies(db dbx.DBTX) companiesrepo.Repository {
	return m.c
}
func (m *fakeRepoManager) Messages(db dbx.DBTX) messagesrepo.Repository {
	return m.m
}
func (m *fakeRepoManager) Files(db dbx.DBTX) filesrepo.Repository {
	return m.f
}

func newIdentityService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *IdentityService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewIdentityService(db, rm, cfg)
}

// --- tests ---

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{i: &fakeIdentitiesRepo{}}
	s := newIdentityService(t, db, rm)

	identity, err := s.Register(context.Background(), "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if identity.ID != "id-1" || identity.Email != "alice@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.PasswordHash == "" || identity.PasswordHash == "pw" {
		t.Fatalf("password not hashed: %q", identity.PasswordHash)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{i: &fakeIdentitiesRepo{createErr: common.ErrorAlreadyExists}}
	s := newIdentityService(t, db, rm)

	_, err := s.Register(context.Background(), "alice@example.com", "pw")
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := auth.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	rm := &fakeRepoManager{
		i: &fakeIdentitiesRepo{getOut: &models.Identity{ID: "id-1", Email: "alice@example.com", PasswordHash: hash}},
		r: &fakeRefreshRepo{},
	}
	s := newIdentityService(t, db, rm)

	pair, err := s.Login(context.Background(), "alice@example.com", "pw")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	hash, err := auth.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	rm := &fakeRepoManager{
		i: &fakeIdentitiesRepo{getOut: &models.Identity{ID: "id-1", PasswordHash: hash}},
		r: &fakeRefreshRepo{},
	}
	s := newIdentityService(t, db, rm)

	_, err = s.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{i: &fakeIdentitiesRepo{getErr: common.ErrorNotFound}}
	s := newIdentityService(t, db, rm)

	_, err := s.Login(context.Background(), "nobody@example.com", "pw")
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("want ErrorUnauthorized, got %v", err)
	}
}

func TestRefreshToken_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{IdentityID: "id-1", Expires: time.Now().Add(10 * time.Minute)},
		},
	}
	s := newIdentityService(t, db, rm)

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("empty tokens: %+v", pair)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		r: &fakeRefreshRepo{
			findOut: &models.RefreshToken{IdentityID: "id-1", Expires: time.Now().Add(-1 * time.Minute)},
		},
	}
	s := newIdentityService(t, db, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if !errors.Is(err, common.ErrRefreshTokenExpired) {
		t.Fatalf("want ErrRefreshTokenExpired, got %v", err)
	}
}

func TestRefreshToken_FindErr(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{r: &fakeRefreshRepo{findErr: errBoom{}}}
	s := newIdentityService(t, db, rm)

	if _, err := s.RefreshToken(context.Background(), "r"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFetch_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		i: &fakeIdentitiesRepo{getOut: &models.Identity{ID: "id-1", Email: "alice@example.com"}},
	}
	s := newIdentityService(t, db, rm)

	identity, err := s.Fetch(context.Background(), "id-1")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if identity.Email != "alice@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestFetch_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{i: &fakeIdentitiesRepo{getErr: common.ErrorNotFound}}
	s := newIdentityService(t, db, rm)

	_, err := s.Fetch(context.Background(), "id-1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

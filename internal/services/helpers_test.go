package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"streaming-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var errStore = errors.New("connection refused")

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestHasher() PasswordHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

type fakeAccountRepo struct {
	accounts map[string]*models.Cuenta
	findErr  error
	regErr   error

	registered []*models.Usuario
	hashes     []string
}

func (f *fakeAccountRepo) FindByUsername(_ context.Context, username string) (*models.Cuenta, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.accounts[username], nil
}

func (f *fakeAccountRepo) Register(_ context.Context, usuario *models.Usuario, username, passwordHash string) (uint, error) {
	if f.regErr != nil {
		return 0, f.regErr
	}
	usuario.ID = uint(len(f.registered) + 1)
	f.registered = append(f.registered, usuario)
	f.hashes = append(f.hashes, passwordHash)
	return usuario.ID, nil
}

type fakeMovieRepo struct {
	movies map[uint]*models.Movie
	err    error
}

func (f *fakeMovieRepo) FindAll(context.Context) ([]models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Movie
	for _, m := range f.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id uint) (*models.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.movies[id], nil
}

type fakeVideoRepo struct {
	episodes map[uint]*models.Episode
	err      error
}

func (f *fakeVideoRepo) FindAll(context.Context) ([]models.Video, error) {
	return nil, f.err
}

func (f *fakeVideoRepo) FindByCategory(context.Context, uint) ([]models.Video, error) {
	return nil, f.err
}

func (f *fakeVideoRepo) FindEpisodeByID(_ context.Context, id uint) (*models.Episode, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.episodes[id], nil
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

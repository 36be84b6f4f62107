package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"auth-service/internal/models"
	"auth-service/internal/storage"
	"auth-service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	svc, err := New(st, testCfg())
	require.NoError(t, err)
	return svc, st, ctrl
}

// userWithPassword — запись пользователя с настоящей солью и хэшем.
func userWithPassword(t *testing.T, id int64, login, pw string) *models.User {
	t.Helper()
	salt, hash, err := hashPassword(pw)
	require.NoError(t, err)
	return &models.User{ID: id, Login: login, Salt: salt, Hash: hash, CreatedAt: time.Now().UTC()}
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	st.EXPECT().UserByLogin(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) (int64, error) {
			require.Equal(t, "alice", u.Login)
			require.NotEmpty(t, u.Salt)
			require.NotEmpty(t, u.Hash)
			// Открытый пароль в запись не попадает.
			require.True(t, verifyPassword("pw1", u.Salt, u.Hash))
			return 1, nil
		})

	id, err := svc.RegisterUser(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
}

func TestRegisterUser_EmptyCredentials(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.RegisterUser(context.Background(), "", "pw")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = svc.RegisterUser(context.Background(), "alice", "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestRegisterUser_LoginTaken_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Если UserByLogin вернул пользователя (err == nil) - логин занят.
	st.EXPECT().UserByLogin(gomock.Any(), "alice").
		Return(userWithPassword(t, 1, "alice", "pw1"), nil)

	_, err := svc.RegisterUser(context.Background(), "alice", "pw2")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLoginTaken)
}

func TestRegisterUser_SaveAlreadyExists_MapsToLoginTaken(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Гонка: предварительная проверка никого не нашла, но вставку
	// отклонил unique constraint.
	st.EXPECT().UserByLogin(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(int64(0), storage.ErrAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), "alice", "pw1")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrLoginTaken)
}

func TestRegisterUser_StorageErrors_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLogin(gomock.Any(), "alice").Return(nil, errors.New("db down"))
	_, err := svc.RegisterUser(context.Background(), "alice", "pw1")
	require.Error(t, err)

	st.EXPECT().UserByLogin(gomock.Any(), "alice").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("insert failed"))
	_, err = svc.RegisterUser(context.Background(), "alice", "pw1")
	require.Error(t, err)
}

func TestLoginUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := userWithPassword(t, 7, "alice", "pw1")

	st.EXPECT().UserByLogin(gomock.Any(), "alice").Return(user, nil)

	pair, err := svc.LoginUser(ctx, "alice", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.WithinDuration(t, time.Now().Add(svc.cfg.AccessTokenTTL), pair.AccessExpiresAt, 2*time.Second)

	// Оба токена несут id пользователя и корректный typ.
	uid, err := svc.VerifyToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(7), uid)
}

func TestLoginUser_UnknownLogin(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLogin(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)

	_, err := svc.LoginUser(context.Background(), "ghost", "pw")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnknownLogin)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByLogin(gomock.Any(), "alice").
		Return(userWithPassword(t, 7, "alice", "pw1"), nil)

	_, err := svc.LoginUser(context.Background(), "alice", "wrong")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginUser_EmptyCredentials_OrStorageError(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.LoginUser(context.Background(), "alice", "")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyCredentials)

	st.EXPECT().UserByLogin(gomock.Any(), "alice").Return(nil, errors.New("db problem"))
	_, err = svc.LoginUser(context.Background(), "alice", "pw")
	require.Error(t, err)
}

func TestRefreshTokens_OK(t *testing.T) {
	t.Parallel()

	svc, st, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	st.EXPECT().UserByLogin(gomock.Any(), "alice").
		Return(userWithPassword(t, 7, "alice", "pw1"), nil)

	pair, err := svc.LoginUser(ctx, "alice", "pw1")
	require.NoError(t, err)

	fresh, err := svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, fresh.AccessToken)
	require.NotEmpty(t, fresh.RefreshToken)

	// Новая пара привязана к тому же пользователю.
	uid, err := svc.VerifyToken(ctx, fresh.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(7), uid)

	// Старый refresh не отозван и остаётся валиден до своего exp.
	_, err = svc.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshTokens_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	pair, err := svc.issueTokenPair(7)
	require.NoError(t, err)

	// Access-токен нельзя переиграть как refresh.
	_, err = svc.RefreshTokens(ctx, pair.AccessToken)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshTokens_ExpiredOrTampered(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	expired, _, err := svc.issueToken(7, TokenTypeRefresh, time.Now().UTC().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = svc.RefreshTokens(ctx, expired)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)

	valid, _, err := svc.issueToken(7, TokenTypeRefresh, time.Now().UTC(), time.Hour)
	require.NoError(t, err)
	tampered := valid[:len(valid)-2] + "xx"
	_, err = svc.RefreshTokens(ctx, tampered)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_OK_And_Failures(t *testing.T) {
	t.Parallel()

	svc, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	pair, err := svc.issueTokenPair(7)
	require.NoError(t, err)

	uid, err := svc.VerifyToken(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(7), uid)

	// Refresh-токен не проходит как access.
	_, err = svc.VerifyToken(ctx, pair.RefreshToken)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Мусор.
	_, err = svc.VerifyToken(ctx, "not-a-jwt")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Просроченный access.
	expired, _, err := svc.issueToken(7, TokenTypeAccess, time.Now().UTC().Add(-2*time.Minute), time.Minute)
	require.NoError(t, err)
	_, err = svc.VerifyToken(ctx, expired)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidToken)
}

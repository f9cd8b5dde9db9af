package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/models"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/service"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-contacts-api/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contacts-api/internal/shared/utils"
)

func newContactsService(t *testing.T) (*service.ContactsService, *mocks.MockContactsRepo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContactsRepo(ctrl)

	return service.NewContactsService(repo), repo
}

func TestContactsService_List_ScopedToCaller(t *testing.T) {
	svc, repo := newContactsService(t)

	alice := uuid.New()
	want := []models.Contact{{ID: uuid.New(), UserID: alice, Name: "Bob"}}

	repo.EXPECT().ListByUser(gomock.Any(), alice).Return(want, nil)

	got, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestContactsService_List_NoUser(t *testing.T) {
	svc, _ := newContactsService(t)

	_, err := svc.List(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, serr.ErrUserIDEmpty)
}

// Владельцем становится вызывающий
func TestContactsService_Create_OK(t *testing.T) {
	svc, repo := newContactsService(t)

	alice := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), models.Contact{UserID: alice, Name: "Bob", Email: "b@x.com", Phone: "1"}).
		DoAndReturn(func(_ context.Context, c models.Contact) (models.Contact, error) {
			c.ID = uuid.New()
			return c, nil
		})

	got, err := svc.Create(context.Background(), alice, "Bob", "b@x.com", "1")
	require.NoError(t, err)
	require.Equal(t, alice, got.UserID)
	require.NotEqual(t, uuid.Nil, got.ID)
}

func TestContactsService_Create_InvalidInput(t *testing.T) {
	svc, _ := newContactsService(t)

	_, err := svc.Create(context.Background(), uuid.New(), "Bob", "", "1")
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestContactsService_Get_NotFound(t *testing.T) {
	svc, repo := newContactsService(t)

	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{}, serr.ErrContactNotFound)

	_, err := svc.Get(context.Background(), uuid.New(), id)
	require.ErrorIs(t, err, serr.ErrContactNotFound)
}

func TestContactsService_Get_Forbidden(t *testing.T) {
	svc, repo := newContactsService(t)

	alice, bob := uuid.New(), uuid.New()
	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{ID: id, UserID: bob}, nil)

	_, err := svc.Get(context.Background(), alice, id)
	require.ErrorIs(t, err, serr.ErrForbidden)
}

// Частичное обновление: не переданные поля остаются прежними
func TestContactsService_Update_Partial(t *testing.T) {
	svc, repo := newContactsService(t)

	alice := uuid.New()
	id := uuid.New()
	stored := models.Contact{ID: id, UserID: alice, Name: "Bob", Email: "b@x.com", Phone: "1"}

	repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().
		Update(gomock.Any(), models.Contact{ID: id, UserID: alice, Name: "Bob", Email: "b@x.com", Phone: "2"}).
		DoAndReturn(func(_ context.Context, c models.Contact) (models.Contact, error) {
			return c, nil
		})

	got, err := svc.Update(context.Background(), alice, id, models.ContactPatch{Phone: utils.Ptr("2")})
	require.NoError(t, err)
	require.Equal(t, "2", got.Phone)
	require.Equal(t, "Bob", got.Name)
}

// PUT хранит значения так же, как POST: без пробелов по краям
func TestContactsService_Update_TrimsValues(t *testing.T) {
	svc, repo := newContactsService(t)

	alice := uuid.New()
	id := uuid.New()
	stored := models.Contact{ID: id, UserID: alice, Name: "Bob", Email: "b@x.com", Phone: "1"}

	repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().
		Update(gomock.Any(), models.Contact{ID: id, UserID: alice, Name: "Robert", Email: "b@x.com", Phone: "1"}).
		DoAndReturn(func(_ context.Context, c models.Contact) (models.Contact, error) {
			return c, nil
		})

	got, err := svc.Update(context.Background(), alice, id, models.ContactPatch{Name: utils.Ptr(" Robert ")})
	require.NoError(t, err)
	require.Equal(t, "Robert", got.Name)
}

// Чужой контакт не обновляется: Update в репозитории не вызывается
func TestContactsService_Update_Forbidden(t *testing.T) {
	svc, repo := newContactsService(t)

	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{ID: id, UserID: uuid.New()}, nil)

	_, err := svc.Update(context.Background(), uuid.New(), id, models.ContactPatch{Name: utils.Ptr("X")})
	require.ErrorIs(t, err, serr.ErrForbidden)
}

func TestContactsService_Update_BlankField(t *testing.T) {
	svc, repo := newContactsService(t)

	alice := uuid.New()
	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).
		Return(models.Contact{ID: id, UserID: alice, Name: "Bob", Email: "b@x.com", Phone: "1"}, nil)

	_, err := svc.Update(context.Background(), alice, id, models.ContactPatch{Email: utils.Ptr(" ")})
	require.ErrorIs(t, err, serr.ErrInvalidInput)
}

func TestContactsService_Delete_OK(t *testing.T) {
	svc, repo := newContactsService(t)

	alice := uuid.New()
	id := uuid.New()
	stored := models.Contact{ID: id, UserID: alice, Name: "Bob"}

	repo.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().Delete(gomock.Any(), id, alice).Return(stored, nil)

	got, err := svc.Delete(context.Background(), alice, id)
	require.NoError(t, err)
	require.Equal(t, stored, got)
}

// Чужой контакт не удаляется: Delete в репозитории не вызывается
func TestContactsService_Delete_Forbidden(t *testing.T) {
	svc, repo := newContactsService(t)

	id := uuid.New()
	repo.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{ID: id, UserID: uuid.New()}, nil)

	_, err := svc.Delete(context.Background(), uuid.New(), id)
	require.ErrorIs(t, err, serr.ErrForbidden)
}

func TestHealthService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHealthRepo(ctrl)

	repo.EXPECT().Ping(gomock.Any()).Return(serr.ErrExpectedError)

	err := service.NewHealthService(repo).Check(context.Background())
	require.ErrorIs(t, err, serr.ErrExpectedError)
}

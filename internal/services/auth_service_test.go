package services

import (
	"testing"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users     map[uint]*models.User
	addresses map[uint]*models.Address
	nextID    uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     map[uint]*models.User{},
		addresses: map[uint]*models.Address{},
		nextID:    1,
	}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CreateAddress(address *models.Address) error {
	address.ID = r.nextID
	r.nextID++
	r.addresses[address.ID] = address
	return nil
}

func (r *fakeUserRepo) GetAddressByID(id uint) (*models.Address, error) {
	address, ok := r.addresses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return address, nil
}

func (r *fakeUserRepo) GetAddressesByUserID(userID uint) ([]models.Address, error) {
	var out []models.Address
	for _, a := range r.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateAddress(address *models.Address) error {
	r.addresses[address.ID] = address
	return nil
}

func (r *fakeUserRepo) DeleteAddress(id uint) error {
	delete(r.addresses, id)
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "jwt-secret")

	user, err := svc.Register(&RegisterRequest{
		Email:     "jo@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Jo",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleCustomer), user.Role)
	assert.NotEqual(t, "hunter2hunter2", user.PasswordHash)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(&RegisterRequest{Email: "jo@example.com", Password: "hunter2hunter2"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("login returns a verifiable token", func(t *testing.T) {
		token, loggedIn, err := svc.Login("jo@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)

		claims, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "jo@example.com", claims.Email)
		assert.Equal(t, string(models.RoleCustomer), claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("jo@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login("nobody@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewAuthService(newFakeUserRepo(), "other-secret")
		token, _, err := svc.Login("jo@example.com", "hunter2hunter2")
		require.NoError(t, err)

		_, err = other.VerifyToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.VerifyToken("not.a.jwt")
		assert.Error(t, err)
	})
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, "jwt-secret")

	user, err := svc.Register(&RegisterRequest{Email: "ex@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	user.IsActive = false

	_, _, err = svc.Login("ex@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
